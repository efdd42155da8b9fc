package sessionRepo

import (
	"context"
	"errors"

	"barberia/models"
)

var (
	// ErrSessionNotFound is returned for unknown, expired or closed sessions.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrSessionExists is returned when Create hits an id already in use.
	ErrSessionExists = errors.New("booking session already exists")
)

// SessionRepository stores wizard sessions under a TTL.
type SessionRepository interface {
	// Create never overwrites an existing session.
	Create(ctx context.Context, s *models.WizardSession) error
	Get(ctx context.Context, id string) (*models.WizardSession, error)
	// Update only overwrites an existing session; it never recreates a closed one.
	Update(ctx context.Context, s *models.WizardSession) error
	Delete(ctx context.Context, id string) error
}
