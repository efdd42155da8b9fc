package sessionRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"barberia/models"
)

func TestMemorySessionRepoUpdateOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepo(30 * time.Minute)
	s := &models.WizardSession{ID: "s1", TakenSlots: []string{"10:00"}}

	if err := repo.Update(ctx, s); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("update must not create, got %v", err)
	}
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got.TakenSlots[0] = "mutated"
	again, _ := repo.Get(ctx, "s1")
	if again.TakenSlots[0] != "10:00" {
		t.Fatalf("stored session must not alias returned copies")
	}

	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Update(ctx, s); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("deleted session must not be recreated, got %v", err)
	}
}

func TestMemorySessionRepoCreateDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepo(30 * time.Minute)
	if err := repo.Create(ctx, &models.WizardSession{ID: "s1", BarberID: "silla-1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, &models.WizardSession{ID: "s1", BarberID: "silla-2"}); !errors.Is(err, ErrSessionExists) {
		t.Fatalf("expected ErrSessionExists, got %v", err)
	}
	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.BarberID != "silla-1" {
		t.Fatalf("existing session was overwritten: %+v", got)
	}
}

func TestMemorySessionRepoExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	repo := NewMemorySessionRepo(30 * time.Minute)
	repo.Now = func() time.Time { return now }

	if err := repo.Create(ctx, &models.WizardSession{ID: "s1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// An update refreshes the TTL.
	now = now.Add(20 * time.Minute)
	if err := repo.Update(ctx, &models.WizardSession{ID: "s1"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	now = now.Add(20 * time.Minute)
	if _, err := repo.Get(ctx, "s1"); err != nil {
		t.Fatalf("expected session alive after refresh, got %v", err)
	}

	now = now.Add(11 * time.Minute)
	if _, err := repo.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
	if err := repo.Update(ctx, &models.WizardSession{ID: "s1"}); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expired session must not be revived, got %v", err)
	}
}

func TestMemorySessionRepoSweepsAbandoned(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	repo := NewMemorySessionRepo(time.Minute)
	repo.Now = func() time.Time { return now }

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, &models.WizardSession{ID: id}); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}
	now = now.Add(2 * time.Minute)
	if err := repo.Create(ctx, &models.WizardSession{ID: "d"}); err != nil {
		t.Fatalf("Create d: %v", err)
	}
	if n := repo.Len(); n != 1 {
		t.Fatalf("expected abandoned sessions swept, %d left", n)
	}
}
