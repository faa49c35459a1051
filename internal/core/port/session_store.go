package port

import (
	"context"

	"gads-manager/internal/core/domain"
)

// SessionStore keeps authenticated sessions keyed by their id.
type SessionStore interface {
	// Get returns ErrSessionNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}
