// Package storage defines the client-side persistence interfaces.
package storage

import (
	"context"

	"github.com/LucasAlmeida-cmd/vitalog/internal/models"
)

// SessionStorage persists the authenticated session between runs. It keeps
// exactly two entries under a fixed namespace: the serialized user profile and
// the raw bearer token.
type SessionStorage interface {
	// SaveSession stores the session, replacing any prior values.
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound if no (or a corrupt) session exists.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session. Idempotent.
	DeleteSession(ctx context.Context) error
}

// SessionData pairs the user profile with its bearer token.
type SessionData struct {
	User  models.User
	Token string
}
