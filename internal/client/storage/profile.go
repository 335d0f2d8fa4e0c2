package storage

import (
	"context"

	"github.com/jobwire/jobwire/internal/models"
)

// ProfileStorage caches the last synchronized user record. The cache is
// never a source of truth once a live synchronization has occurred; it
// only lets the UI render something while the first fetch is in flight.
type ProfileStorage interface {
	// SaveProfile stores the record, replacing any previous one.
	SaveProfile(ctx context.Context, user *models.UserRecord) error

	// GetProfile returns the cached record or ErrProfileNotFound.
	GetProfile(ctx context.Context) (*models.UserRecord, error)

	// DeleteProfile removes the cached record.
	DeleteProfile(ctx context.Context) error
}
