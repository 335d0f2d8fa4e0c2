package storage

import (
	"context"
	"time"
)

// AuthData is the persisted session: the opaque bearer token plus
// enough identity to greet the user before the first synchronization.
// It is created at login/registration and destroyed only on explicit
// logout or a server-confirmed rejection; transient failures never
// touch it.
type AuthData struct {
	Token   string    `json:"token"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	SavedAt time.Time `json:"savedAt"`
}

// AuthStorage owns the session token's persistence across runs.
// No other component may reach the underlying store directly.
type AuthStorage interface {
	// SaveAuth persists the session.
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth returns the stored session or ErrAuthNotFound.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session.
	DeleteAuth(ctx context.Context) error
}
