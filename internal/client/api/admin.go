package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jobwire/jobwire/pkg/api"
)

// AdminListUsers enumerates every account, admin only.
func (c *Client) AdminListUsers(ctx context.Context, token string) ([]api.UserProfile, error) {
	listCtx, cancel := c.listContext(ctx)
	defer cancel()

	var users []api.UserProfile
	err := c.doRequest(listCtx, http.MethodGet, "/api/auth/admin/users", token, nil, &users)
	if err != nil {
		return nil, fmt.Errorf("admin user list failed: %w", err)
	}
	return users, nil
}

// ListPremiumRequests fetches pending premium upgrade requests.
func (c *Client) ListPremiumRequests(ctx context.Context, token string) ([]api.PremiumRequest, error) {
	listCtx, cancel := c.listContext(ctx)
	defer cancel()

	var reqs []api.PremiumRequest
	err := c.doRequest(listCtx, http.MethodGet, "/api/auth/admin/premium-requests", token, nil, &reqs)
	if err != nil {
		return nil, fmt.Errorf("premium request list failed: %w", err)
	}
	return reqs, nil
}

// ApprovePremiumRequest grants the upgrade behind a pending request.
func (c *Client) ApprovePremiumRequest(ctx context.Context, token, requestID string) error {
	path := "/api/auth/admin/premium-requests/" + url.PathEscape(requestID) + "/approve"
	if err := c.doRequest(ctx, http.MethodPost, path, token, nil, nil); err != nil {
		return fmt.Errorf("premium approve failed: %w", err)
	}
	return nil
}

// RejectPremiumRequest declines a pending request.
func (c *Client) RejectPremiumRequest(ctx context.Context, token, requestID string) error {
	path := "/api/auth/admin/premium-requests/" + url.PathEscape(requestID) + "/reject"
	if err := c.doRequest(ctx, http.MethodPost, path, token, nil, nil); err != nil {
		return fmt.Errorf("premium reject failed: %w", err)
	}
	return nil
}

// ToggleUserLock flips the lock flag on an account.
func (c *Client) ToggleUserLock(ctx context.Context, token, email string) (*api.UserProfile, error) {
	path := "/api/auth/admin/users/" + url.PathEscape(email) + "/toggle-lock"
	var user api.UserProfile
	if err := c.doRequest(ctx, http.MethodPost, path, token, nil, &user); err != nil {
		return nil, fmt.Errorf("toggle lock failed: %w", err)
	}
	return &user, nil
}

// SetUserPremium grants or revokes premium on an account directly.
func (c *Client) SetUserPremium(ctx context.Context, token, email string, premium bool) error {
	path := "/api/auth/admin/users/" + url.PathEscape(email) + "/premium?isPremium=" + strconv.FormatBool(premium)
	if err := c.doRequest(ctx, http.MethodPost, path, token, nil, nil); err != nil {
		return fmt.Errorf("set premium failed: %w", err)
	}
	return nil
}
