package appointmentRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"barberia/models"
)

func TestMemoryAppointmentRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepo()

	older := models.Appointment{BarberID: "silla-1", DateString: "2025-06-10", TimeSlot: "10:00", Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)}
	newer := models.Appointment{BarberID: "silla-1", DateString: "2025-06-11", TimeSlot: "10:00", Date: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)}
	for _, a := range []*models.Appointment{&older, &newer} {
		if err := repo.Insert(ctx, a); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if a.ID == "" {
			t.Fatalf("expected generated id")
		}
	}

	found, err := repo.FindBySlot(ctx, "silla-1", "2025-06-10", "10:00")
	if err != nil || len(found) != 1 || found[0].ID != older.ID {
		t.Fatalf("FindBySlot: %v %+v", err, found)
	}
	found, _ = repo.FindBySlot(ctx, "silla-2", "2025-06-10", "10:00")
	if len(found) != 0 {
		t.Fatalf("expected no match for another barber")
	}

	all, err := repo.ListAllByDateDesc(ctx)
	if err != nil || len(all) != 2 || all[0].ID != newer.ID {
		t.Fatalf("ListAllByDateDesc: %v %+v", err, all)
	}

	if err := repo.Insert(ctx, nil); !errors.Is(err, ErrNilAppointment) {
		t.Fatalf("expected ErrNilAppointment, got %v", err)
	}
}

func TestMemoryAppointmentRepoHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewMemoryAppointmentRepo()

	if _, err := repo.FindByBarberAndDate(ctx, "silla-1", "2025-06-10"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := repo.Insert(ctx, &models.Appointment{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if repo.Len() != 0 {
		t.Fatalf("cancelled insert must not store")
	}
}
