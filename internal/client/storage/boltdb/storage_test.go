package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobwire/jobwire/internal/client/storage"
	"github.com/jobwire/jobwire/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestStorage_AuthRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	auth := &storage.AuthData{
		Token:   "T1",
		Email:   "a@b.com",
		Role:    "CANDIDATE",
		SavedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.SaveAuth(ctx, auth))

	got, err := s.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.Token, got.Token)
	assert.Equal(t, auth.Email, got.Email)
	assert.Equal(t, auth.Role, got.Role)

	require.NoError(t, s.DeleteAuth(ctx))

	_, err = s.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestStorage_DeleteAuth_NotFound(t *testing.T) {
	s := newTestStorage(t)

	err := s.DeleteAuth(context.Background())

	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestStorage_SaveAuth_Overwrites(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAuth(ctx, &storage.AuthData{Token: "T1"}))
	require.NoError(t, s.SaveAuth(ctx, &storage.AuthData{Token: "T2"}))

	got, err := s.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Token)
}

func TestStorage_ProfileRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetProfile(ctx)
	assert.ErrorIs(t, err, storage.ErrProfileNotFound)

	user := &models.UserRecord{
		Email:     "r@x.com",
		Role:      models.RoleRecruiter,
		IsPremium: true,
	}
	require.NoError(t, s.SaveProfile(ctx, user))

	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, models.RoleRecruiter, got.Role)
	assert.True(t, got.IsPremium)

	require.NoError(t, s.DeleteProfile(ctx))

	_, err = s.GetProfile(ctx)
	assert.ErrorIs(t, err, storage.ErrProfileNotFound)
}

func TestStorage_DeleteProfile_Absent(t *testing.T) {
	s := newTestStorage(t)

	// A missing cached profile is not an error to delete.
	assert.NoError(t, s.DeleteProfile(context.Background()))
}
