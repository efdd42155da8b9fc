package calendar

import (
	"strings"
	"time"
)

var icsEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// ICS renders a single-event VCALENDAR with CRLF line endings. stamp is
// written as DTSTAMP.
func ICS(ev Event, stamp time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//BarberShop//Appointment//EN",
		"BEGIN:VEVENT",
		"UID:" + ev.UID,
		"DTSTAMP:" + formatUTC(stamp),
		"DTSTART:" + formatUTC(ev.Start),
		"DTEND:" + formatUTC(ev.End),
		"SUMMARY:" + icsEscaper.Replace(ev.Title),
		"DESCRIPTION:" + icsEscaper.Replace(ev.Details),
		"LOCATION:" + icsEscaper.Replace(ev.Location),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}
