package sessionRepo

import (
	"context"
	"sync"
	"time"

	"barberia/models"
)

type memoryEntry struct {
	session   models.WizardSession
	expiresAt time.Time
}

// MemorySessionRepo keeps sessions in a map. Like the Redis store, every
// write resets the TTL; a zero TTL disables expiry.
type MemorySessionRepo struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	Now      func() time.Time
}

func NewMemorySessionRepo(ttl time.Duration) *MemorySessionRepo {
	return &MemorySessionRepo{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
		Now:      time.Now,
	}
}

func (r *MemorySessionRepo) Create(_ context.Context, s *models.WizardSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.Now()
	r.sweep(now)
	if _, ok := r.sessions[s.ID]; ok {
		return ErrSessionExists
	}
	r.sessions[s.ID] = r.entry(*s, now)
	return nil
}

func (r *MemorySessionRepo) Get(_ context.Context, id string) (*models.WizardSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.live(id, r.Now())
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := clone(e.session)
	return &out, nil
}

func (r *MemorySessionRepo) Update(_ context.Context, s *models.WizardSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.Now()
	if _, ok := r.live(s.ID, now); !ok {
		return ErrSessionNotFound
	}
	r.sessions[s.ID] = r.entry(*s, now)
	return nil
}

func (r *MemorySessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// Len reports the stored sessions, expired ones included until swept.
func (r *MemorySessionRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *MemorySessionRepo) entry(s models.WizardSession, now time.Time) memoryEntry {
	e := memoryEntry{session: clone(s)}
	if r.ttl > 0 {
		e.expiresAt = now.Add(r.ttl)
	}
	return e
}

// live returns the entry for id, dropping it when expired. Callers hold mu.
func (r *MemorySessionRepo) live(id string, now time.Time) (memoryEntry, bool) {
	e, ok := r.sessions[id]
	if !ok {
		return memoryEntry{}, false
	}
	if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
		delete(r.sessions, id)
		return memoryEntry{}, false
	}
	return e, true
}

// sweep drops every expired entry. Callers hold mu.
func (r *MemorySessionRepo) sweep(now time.Time) {
	for id := range r.sessions {
		r.live(id, now)
	}
}

func clone(s models.WizardSession) models.WizardSession {
	s.TakenSlots = append([]string(nil), s.TakenSlots...)
	if s.Confirmed != nil {
		c := *s.Confirmed
		s.Confirmed = &c
	}
	return s
}
