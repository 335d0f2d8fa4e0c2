package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/jobwire/jobwire/internal/client/storage"
	"github.com/jobwire/jobwire/internal/models"
)

var profileKey = []byte("current")

// SaveProfile caches the last synchronized user record.
func (s *Storage) SaveProfile(ctx context.Context, user *models.UserRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfile)
		if bucket == nil {
			return fmt.Errorf("profile bucket not found")
		}

		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}

		if err := bucket.Put(profileKey, data); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		return nil
	})
}

// GetProfile returns the cached user record.
func (s *Storage) GetProfile(ctx context.Context) (*models.UserRecord, error) {
	var user *models.UserRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfile)
		if bucket == nil {
			return fmt.Errorf("profile bucket not found")
		}

		data := bucket.Get(profileKey)
		if data == nil {
			return storage.ErrProfileNotFound
		}

		user = &models.UserRecord{}
		if err := json.Unmarshal(data, user); err != nil {
			return fmt.Errorf("failed to unmarshal profile: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteProfile removes the cached user record.
func (s *Storage) DeleteProfile(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfile)
		if bucket == nil {
			return fmt.Errorf("profile bucket not found")
		}

		// Deleting an absent profile is fine; the cache is cosmetic.
		if err := bucket.Delete(profileKey); err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}

		return nil
	})
}
