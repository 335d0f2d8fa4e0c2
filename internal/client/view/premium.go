package view

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jobwire/jobwire/internal/models"
	"github.com/jobwire/jobwire/pkg/api"
)

// GateState is the three-state candidate-browsing gate for recruiters.
type GateState int

const (
	// GateGranted: open the candidate browser.
	GateGranted GateState = iota

	// GatePending: an upgrade request is awaiting admin review; show a
	// pending notice, never the upgrade prompt.
	GatePending

	// GateUpgrade: no request on file; show the upgrade prompt.
	GateUpgrade
)

// PremiumAPI is what the gate needs from the HTTP client.
type PremiumAPI interface {
	PremiumRequestStatus(ctx context.Context, token string) (*api.PremiumStatusResponse, error)
	SubmitPremiumRequest(ctx context.Context, token string) error
}

// Gate routes the "view candidates" action for non-premium recruiters
// through the premium-request flow.
type Gate struct {
	api    PremiumAPI
	logger *slog.Logger
}

// NewGate creates a premium gate.
func NewGate(apiClient PremiumAPI, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{api: apiClient, logger: logger}
}

// ResolveCandidateAccess decides how the "view candidates" action
// proceeds. Admins and premium recruiters pass straight through. For
// everyone else the pending-request status decides between the pending
// notice and the upgrade prompt; a failing status check falls back to
// the upgrade prompt rather than blocking the action.
func (g *Gate) ResolveCandidateAccess(ctx context.Context, token string, user models.UserRecord) GateState {
	if user.Role == models.RoleAdmin || user.IsPremium {
		return GateGranted
	}

	status, err := g.api.PremiumRequestStatus(ctx, token)
	if err != nil {
		g.logger.Warn("premium status check failed, offering upgrade", "error", err)
		return GateUpgrade
	}
	if status.HasPendingRequest {
		return GatePending
	}
	return GateUpgrade
}

// RequestUpgrade files a premium request for admin review.
func (g *Gate) RequestUpgrade(ctx context.Context, token string) error {
	if err := g.api.SubmitPremiumRequest(ctx, token); err != nil {
		return fmt.Errorf("failed to submit premium request: %w", err)
	}
	return nil
}
