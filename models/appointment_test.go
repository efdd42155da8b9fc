package models

import (
	"testing"
	"time"
)

func TestDateStringUsesShopZone(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	late := time.Date(2025, 6, 9, 22, 30, 0, 0, time.UTC)
	if got := DateString(late, madrid); got != "2025-06-10" {
		t.Fatalf("expected 2025-06-10, got %s", got)
	}
	if got := DateString(late, time.UTC); got != "2025-06-09" {
		t.Fatalf("expected 2025-06-09, got %s", got)
	}
}

func TestStartsAt(t *testing.T) {
	madrid, _ := time.LoadLocation("Europe/Madrid")
	day, err := ParseDate("2025-01-15", madrid)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	start, err := Appointment{Date: day, TimeSlot: "18:00"}.StartsAt(madrid)
	if err != nil {
		t.Fatalf("StartsAt: %v", err)
	}
	// CET is UTC+1 in January.
	if got := start.UTC().Format(time.RFC3339); got != "2025-01-15T17:00:00Z" {
		t.Fatalf("unexpected start %s", got)
	}

	if _, err := ParseDate("15/01/2025", madrid); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}

func TestWizardStepString(t *testing.T) {
	if StepDateTime.String() != "datetime" || WizardStep(42).String() != "unknown" {
		t.Fatalf("unexpected step names")
	}
}

func TestBarberDisplayName(t *testing.T) {
	if got := (Barber{Name: "Silla 1", Stylist: "Juan"}).DisplayName(); got != "Silla 1 (Juan)" {
		t.Fatalf("unexpected display name %q", got)
	}
	if got := (Barber{Name: "Silla 5"}).DisplayName(); got != "Silla 5" {
		t.Fatalf("unexpected display name %q", got)
	}
}
