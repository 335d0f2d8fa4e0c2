package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobwire/jobwire/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	token, err := c.session.Token(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'jobwire login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	c.io.Println("Status: Authenticated")

	if cached, err := c.session.CachedUser(ctx); err == nil {
		c.io.Printf("Account: %s (%s)\n", cached.Email, cached.Role)
	}

	// The token is opaque to the client; decoding the expiry claim is
	// display-only and must not be treated as verification.
	c.printTokenExpiry(token)

	return nil
}

func (c *Cli) printTokenExpiry(token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}

	c.io.Printf("Token expires: %s\n", exp.Format(time.RFC3339))
	remaining := time.Until(exp.Time)
	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}
}
