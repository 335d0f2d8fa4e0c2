package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobwire/jobwire/pkg/api"
)

// Login authenticates a user with email and password.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register creates a new account and returns the same shape as Login.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}
