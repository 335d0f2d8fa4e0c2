package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jobwire/jobwire/internal/models"
	"github.com/jobwire/jobwire/pkg/api"
)

// AdminAPI is what the service needs from the HTTP client.
type AdminAPI interface {
	AdminListUsers(ctx context.Context, token string) ([]api.UserProfile, error)
	ListPremiumRequests(ctx context.Context, token string) ([]api.PremiumRequest, error)
	ApprovePremiumRequest(ctx context.Context, token, requestID string) error
	RejectPremiumRequest(ctx context.Context, token, requestID string) error
	ToggleUserLock(ctx context.Context, token, email string) (*api.UserProfile, error)
	SetUserPremium(ctx context.Context, token, email string, premium bool) error
}

// Overview partitions the user base the way the admin dashboard
// renders it: regular users per role, then premium and locked accounts
// in their own panels. Partitioning happens on normalized records so
// the wire spelling drift cannot split a user across panels.
type Overview struct {
	Candidates      []models.UserRecord // non-premium, non-locked
	Recruiters      []models.UserRecord // non-premium, non-locked
	PremiumUsers    []models.UserRecord
	LockedUsers     []models.UserRecord
	PendingRequests []api.PremiumRequest
}

// Service drives the admin panel flows.
type Service struct {
	api    AdminAPI
	logger *slog.Logger
}

// NewService creates an admin service.
func NewService(apiClient AdminAPI, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{api: apiClient, logger: logger}
}

// LoadOverview fetches and partitions every account plus the pending
// premium requests.
func (s *Service) LoadOverview(ctx context.Context, token string) (*Overview, error) {
	raw, err := s.api.AdminListUsers(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	overview := &Overview{}
	for _, p := range raw {
		user := models.NormalizeUser(p)
		switch {
		case user.IsLocked:
			overview.LockedUsers = append(overview.LockedUsers, user)
		case user.IsPremium:
			overview.PremiumUsers = append(overview.PremiumUsers, user)
		case user.Role == models.RoleRecruiter:
			overview.Recruiters = append(overview.Recruiters, user)
		case user.Role == models.RoleCandidate:
			overview.Candidates = append(overview.Candidates, user)
		}
	}

	// Request list failures degrade to an empty panel; the user
	// partitions are still worth rendering.
	requests, err := s.api.ListPremiumRequests(ctx, token)
	if err != nil {
		s.logger.Warn("failed to load premium requests", "error", err)
	} else {
		overview.PendingRequests = requests
	}

	return overview, nil
}

// ToggleLock flips the lock flag on an account and returns the
// normalized result.
func (s *Service) ToggleLock(ctx context.Context, token, email string) (*models.UserRecord, error) {
	raw, err := s.api.ToggleUserLock(ctx, token, email)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle lock: %w", err)
	}
	user := models.NormalizeUser(*raw)
	return &user, nil
}

// Approve grants the premium upgrade behind a pending request.
func (s *Service) Approve(ctx context.Context, token, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("request id cannot be empty")
	}
	return s.api.ApprovePremiumRequest(ctx, token, requestID)
}

// Reject declines a pending request.
func (s *Service) Reject(ctx context.Context, token, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("request id cannot be empty")
	}
	return s.api.RejectPremiumRequest(ctx, token, requestID)
}

// SetPremium grants or revokes premium directly, outside the request
// flow.
func (s *Service) SetPremium(ctx context.Context, token, email string, premium bool) error {
	return s.api.SetUserPremium(ctx, token, email, premium)
}
