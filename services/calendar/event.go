// Package calendar turns a confirmed appointment into things the customer can
// keep: a Google Calendar link, an .ics file, a QR code and a PDF receipt.
package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"barberia/models"
	"barberia/services/catalog"
)

const (
	DefaultLocation = "Felipe IV 4 Bajo/Amara, San Sebastián"
	ICSFilename     = "cita-barberia.ics"
	Duration        = time.Hour

	googleRenderURL = "https://calendar.google.com/calendar/render"
	utcBasicLayout  = "20060102T150405Z"
)

// Event is a one-hour appointment slot ready for export.
type Event struct {
	UID      string
	Title    string
	Details  string
	Location string
	Start    time.Time
	End      time.Time
}

// FromAppointment builds the event in the shop's zone. An empty location
// falls back to DefaultLocation.
func FromAppointment(appt models.Appointment, loc *time.Location, location string) (Event, error) {
	if loc == nil {
		loc = time.UTC
	}
	start, err := appt.StartsAt(loc)
	if err != nil {
		return Event{}, err
	}
	if location == "" {
		location = DefaultLocation
	}

	barber := appt.BarberID
	if b, ok := catalog.Barber(appt.BarberID); ok {
		barber = b.DisplayName()
	}

	return Event{
		UID:      appt.ID + "@barbershop.com",
		Title:    "Cita en Barbería - " + appt.ServiceName,
		Details:  fmt.Sprintf("Servicio: %s\nBarbero: %s\nCliente: %s", appt.ServiceName, barber, appt.CustomerName),
		Location: location,
		Start:    start,
		End:      start.Add(Duration),
	}, nil
}

// GoogleURL returns a prefilled "add event" link.
func GoogleURL(ev Event) string {
	return googleRenderURL +
		"?action=TEMPLATE" +
		"&text=" + escapeComponent(ev.Title) +
		"&dates=" + formatUTC(ev.Start) + "/" + formatUTC(ev.End) +
		"&details=" + escapeComponent(ev.Details) +
		"&location=" + escapeComponent(ev.Location)
}

func formatUTC(t time.Time) string {
	return t.UTC().Format(utcBasicLayout)
}

// escapeComponent percent-encodes like a URI component, spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
