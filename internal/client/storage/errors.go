package storage

import "errors"

var (
	// ErrAuthNotFound is returned when no session token is stored.
	ErrAuthNotFound = errors.New("auth data not found")

	// ErrProfileNotFound is returned when no cached profile is stored.
	ErrProfileNotFound = errors.New("cached profile not found")
)
