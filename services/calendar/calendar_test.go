package calendar

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"time"

	"barberia/models"
)

var madrid = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		panic(err)
	}
	return loc
}()

func confirmed() models.Appointment {
	return models.Appointment{
		ID:            "abc123",
		BarberID:      "silla-1",
		ServiceID:     "corte-clasico",
		ServiceName:   "CORTE CLÁSICO",
		Date:          time.Date(2025, 6, 10, 0, 0, 0, 0, madrid),
		DateString:    "2025-06-10",
		TimeSlot:      "11:00",
		CustomerName:  "Ana",
		CustomerPhone: "600000000",
		CustomerEmail: "ana@example.com",
	}
}

func TestFromAppointment(t *testing.T) {
	ev, err := FromAppointment(confirmed(), madrid, "")
	if err != nil {
		t.Fatalf("FromAppointment: %v", err)
	}
	// 11:00 CEST is 09:00 UTC.
	if got := formatUTC(ev.Start); got != "20250610T090000Z" {
		t.Fatalf("unexpected start %s", got)
	}
	if got := formatUTC(ev.End); got != "20250610T100000Z" {
		t.Fatalf("unexpected end %s", got)
	}
	if ev.Title != "Cita en Barbería - CORTE CLÁSICO" {
		t.Fatalf("unexpected title %q", ev.Title)
	}
	if ev.Details != "Servicio: CORTE CLÁSICO\nBarbero: Silla 1 (Juan)\nCliente: Ana" {
		t.Fatalf("unexpected details %q", ev.Details)
	}
	if ev.Location != DefaultLocation {
		t.Fatalf("expected default location, got %q", ev.Location)
	}
}

func TestFromAppointmentRejectsBadSlot(t *testing.T) {
	appt := confirmed()
	appt.TimeSlot = "eleven"
	if _, err := FromAppointment(appt, madrid, ""); err == nil {
		t.Fatalf("expected error for malformed time slot")
	}
}

func TestGoogleURL(t *testing.T) {
	ev, _ := FromAppointment(confirmed(), madrid, "")
	link := GoogleURL(ev)

	if !strings.HasPrefix(link, "https://calendar.google.com/calendar/render?action=TEMPLATE&text=") {
		t.Fatalf("unexpected link %s", link)
	}
	if strings.Contains(link, "+") {
		t.Fatalf("spaces must be encoded as %%20: %s", link)
	}
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	if q.Get("text") != ev.Title || q.Get("details") != ev.Details || q.Get("location") != ev.Location {
		t.Fatalf("query does not round-trip: %v", q)
	}
	if q.Get("dates") != "20250610T090000Z/20250610T100000Z" {
		t.Fatalf("unexpected dates %q", q.Get("dates"))
	}
}

func TestICS(t *testing.T) {
	ev, _ := FromAppointment(confirmed(), madrid, "")
	stamp := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	out := ICS(ev, stamp)

	if !strings.HasSuffix(out, "END:VCALENDAR\r\n") {
		t.Fatalf("expected CRLF terminated calendar")
	}
	if strings.Count(out, "\r\n") != 13 || strings.Count(out, "\n") != 13 {
		t.Fatalf("expected 13 CRLF lines and no bare LF:\n%q", out)
	}
	for _, want := range []string{
		"BEGIN:VEVENT",
		"UID:abc123@barbershop.com",
		"DTSTAMP:20250601T080000Z",
		"DTSTART:20250610T090000Z",
		"DTEND:20250610T100000Z",
		"SUMMARY:Cita en Barbería - CORTE CLÁSICO",
		`DESCRIPTION:Servicio: CORTE CLÁSICO\nBarbero: Silla 1 (Juan)\nCliente: Ana`,
		`LOCATION:Felipe IV 4 Bajo/Amara\, San Sebastián`,
	} {
		if !strings.Contains(out, want+"\r\n") {
			t.Fatalf("missing line %q in\n%s", want, out)
		}
	}
}

func TestQRCode(t *testing.T) {
	png, err := QRCode("https://calendar.google.com")
	if err != nil {
		t.Fatalf("QRCode: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatalf("expected PNG output")
	}
}

func TestReceipt(t *testing.T) {
	appt := confirmed()
	ev, _ := FromAppointment(appt, madrid, "")
	pdf, err := Receipt(appt, ev, "CORTE CLÁSICO / Silla 1 / 2025-06-10 — 11:00")
	if err != nil {
		t.Fatalf("Receipt: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatalf("expected PDF output")
	}
}
