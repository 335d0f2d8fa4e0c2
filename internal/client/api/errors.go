package api

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnauthorized marks a confirmed 401/403 from the server. It is the
// only error class that may tear down session state; everything else is
// treated as degraded and preserves the token.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is a non-2xx response that is not an auth rejection
// (5xx, 404, validation failures). The session survives these.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err stems from a confirmed 401/403.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsTimeout reports whether err is a deadline expiry, e.g. a bounded
// list enumeration that ran over its budget.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
