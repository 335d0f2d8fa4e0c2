package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jobwire/jobwire/pkg/api"
)

// UpdateProfile sends the editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, token string, req api.UpdateProfileRequest) error {
	err := c.doRequest(ctx, http.MethodPut, "/api/auth/profile", token, req, nil)
	if err != nil {
		return fmt.Errorf("profile update failed: %w", err)
	}
	return nil
}

// UploadResume uploads a resume file as multipart form data.
func (c *Client) UploadResume(ctx context.Context, token, fileName string, file io.Reader) (*api.UploadResponse, error) {
	var resp api.UploadResponse
	err := c.doUpload(ctx, "/api/auth/profile/resume", token, "file", fileName, file, &resp)
	if err != nil {
		return nil, fmt.Errorf("resume upload failed: %w", err)
	}
	return &resp, nil
}

// DeleteResume removes the stored resume.
func (c *Client) DeleteResume(ctx context.Context, token string) error {
	err := c.doRequest(ctx, http.MethodDelete, "/api/auth/profile/resume", token, nil, nil)
	if err != nil {
		return fmt.Errorf("resume delete failed: %w", err)
	}
	return nil
}

// UploadPicture uploads a profile picture as multipart form data.
func (c *Client) UploadPicture(ctx context.Context, token, fileName string, file io.Reader) (*api.UploadResponse, error) {
	var resp api.UploadResponse
	err := c.doUpload(ctx, "/api/auth/profile/picture", token, "file", fileName, file, &resp)
	if err != nil {
		return nil, fmt.Errorf("picture upload failed: %w", err)
	}
	return &resp, nil
}

// PremiumRequestStatus reports whether the user already has a pending
// premium upgrade request.
func (c *Client) PremiumRequestStatus(ctx context.Context, token string) (*api.PremiumStatusResponse, error) {
	var resp api.PremiumStatusResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/auth/profile/premium-request-status", token, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("premium status request failed: %w", err)
	}
	return &resp, nil
}

// SubmitPremiumRequest files a premium upgrade request for admin review.
func (c *Client) SubmitPremiumRequest(ctx context.Context, token string) error {
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/profile/premium-request", token, nil, nil)
	if err != nil {
		return fmt.Errorf("premium request failed: %w", err)
	}
	return nil
}
