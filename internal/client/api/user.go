package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobwire/jobwire/pkg/api"
)

// UserScope selects which user listing to enumerate.
type UserScope string

const (
	ScopeAll        UserScope = "all"
	ScopeCandidates UserScope = "candidates"
	ScopeRecruiters UserScope = "recruiters"
)

// GetProfile fetches the authenticated user's raw profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*api.UserProfile, error) {
	var profile api.UserProfile
	err := c.doRequest(ctx, http.MethodGet, "/api/user/profile", token, nil, &profile)
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &profile, nil
}

// GetProfileFresh fetches the profile with a cache-defeating query
// parameter. Used after profile-mutating operations so the response
// reflects the mutation rather than an intermediate cache.
func (c *Client) GetProfileFresh(ctx context.Context, token string) (*api.UserProfile, error) {
	var profile api.UserProfile
	err := c.doRequest(ctx, http.MethodGet, c.bustCache("/api/user/profile"), token, nil, &profile)
	if err != nil {
		return nil, fmt.Errorf("profile refresh failed: %w", err)
	}
	return &profile, nil
}

// ListUsers enumerates users in the given scope. The call is bounded by
// the client's list timeout; expiry is a degraded outcome, not a
// rejection.
func (c *Client) ListUsers(ctx context.Context, token string, scope UserScope) ([]api.UserProfile, error) {
	listCtx, cancel := c.listContext(ctx)
	defer cancel()

	var users []api.UserProfile
	err := c.doRequest(listCtx, http.MethodGet, "/api/user/"+string(scope), token, nil, &users)
	if err != nil {
		return nil, fmt.Errorf("user list request failed: %w", err)
	}
	return users, nil
}
