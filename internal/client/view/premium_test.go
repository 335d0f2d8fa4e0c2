package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobwire/jobwire/internal/models"
	"github.com/jobwire/jobwire/pkg/api"
)

// mockPremiumAPI implements PremiumAPI for testing
type mockPremiumAPI struct {
	statusResp  *api.PremiumStatusResponse
	statusErr   error
	submitErr   error
	statusCalls int
	submitCalls int
}

func (m *mockPremiumAPI) PremiumRequestStatus(ctx context.Context, token string) (*api.PremiumStatusResponse, error) {
	m.statusCalls++
	return m.statusResp, m.statusErr
}

func (m *mockPremiumAPI) SubmitPremiumRequest(ctx context.Context, token string) error {
	m.submitCalls++
	return m.submitErr
}

func TestGate_PremiumRecruiterGranted(t *testing.T) {
	mock := &mockPremiumAPI{}
	gate := NewGate(mock, nil)

	state := gate.ResolveCandidateAccess(context.Background(), "T1",
		models.UserRecord{Role: models.RoleRecruiter, IsPremium: true})

	assert.Equal(t, GateGranted, state)
	assert.Zero(t, mock.statusCalls, "premium recruiters skip the status check")
}

func TestGate_AdminAlwaysGranted(t *testing.T) {
	mock := &mockPremiumAPI{}
	gate := NewGate(mock, nil)

	state := gate.ResolveCandidateAccess(context.Background(), "T1",
		models.UserRecord{Role: models.RoleAdmin})

	assert.Equal(t, GateGranted, state)
	assert.Zero(t, mock.statusCalls)
}

func TestGate_PendingRequestShowsNotice(t *testing.T) {
	mock := &mockPremiumAPI{statusResp: &api.PremiumStatusResponse{HasPendingRequest: true}}
	gate := NewGate(mock, nil)

	state := gate.ResolveCandidateAccess(context.Background(), "T1",
		models.UserRecord{Role: models.RoleRecruiter})

	assert.Equal(t, GatePending, state, "pending request must show the notice, not the upgrade prompt")
	assert.Equal(t, 1, mock.statusCalls)
}

func TestGate_NoRequestOffersUpgrade(t *testing.T) {
	mock := &mockPremiumAPI{statusResp: &api.PremiumStatusResponse{HasPendingRequest: false}}
	gate := NewGate(mock, nil)

	state := gate.ResolveCandidateAccess(context.Background(), "T1",
		models.UserRecord{Role: models.RoleRecruiter})

	assert.Equal(t, GateUpgrade, state)
}

func TestGate_StatusCheckFailureFallsBackToUpgrade(t *testing.T) {
	mock := &mockPremiumAPI{statusErr: errors.New("boom")}
	gate := NewGate(mock, nil)

	state := gate.ResolveCandidateAccess(context.Background(), "T1",
		models.UserRecord{Role: models.RoleRecruiter})

	assert.Equal(t, GateUpgrade, state)
}

func TestGate_RequestUpgrade(t *testing.T) {
	mock := &mockPremiumAPI{}
	gate := NewGate(mock, nil)

	require.NoError(t, gate.RequestUpgrade(context.Background(), "T1"))
	assert.Equal(t, 1, mock.submitCalls)

	mock.submitErr = errors.New("already requested")
	assert.Error(t, gate.RequestUpgrade(context.Background(), "T1"))
}
