package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobwire/jobwire/internal/models"
	"github.com/jobwire/jobwire/pkg/api"
)

// mockJobsAPI implements JobsAPI for testing and records call order.
type mockJobsAPI struct {
	createErr error
	applyErr  error
	listErr   error
	appsErr   error

	calls        []string
	lastApplyReq api.ApplyRequest
}

func (m *mockJobsAPI) CreateJob(ctx context.Context, token string, req api.CreateJobRequest) (*api.Job, error) {
	m.calls = append(m.calls, "create")
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &api.Job{ID: "j1", Title: req.Title}, nil
}

func (m *mockJobsAPI) ListAllJobs(ctx context.Context, token string) ([]api.Job, error) {
	m.calls = append(m.calls, "list-all")
	if m.listErr != nil {
		return nil, m.listErr
	}
	return []api.Job{{ID: "j1"}}, nil
}

func (m *mockJobsAPI) ListMyJobs(ctx context.Context, token string) ([]api.Job, error) {
	m.calls = append(m.calls, "list-mine")
	return []api.Job{{ID: "j1"}}, nil
}

func (m *mockJobsAPI) Apply(ctx context.Context, token, jobID string, req api.ApplyRequest) error {
	m.calls = append(m.calls, "apply")
	m.lastApplyReq = req
	return m.applyErr
}

func (m *mockJobsAPI) ListMyApplications(ctx context.Context, token string) ([]api.JobApplication, error) {
	m.calls = append(m.calls, "list-apps")
	if m.appsErr != nil {
		return nil, m.appsErr
	}
	return []api.JobApplication{{ID: "a1", JobID: "j1"}}, nil
}

func (m *mockJobsAPI) ListReceivedApplications(ctx context.Context, token string) ([]api.JobApplication, error) {
	m.calls = append(m.calls, "list-received")
	return nil, nil
}

func candidate(resumeURL string) models.UserRecord {
	return models.UserRecord{Role: models.RoleCandidate, ResumeURL: resumeURL}
}

func TestService_Apply_ProfileResume(t *testing.T) {
	mock := &mockJobsAPI{}
	svc := NewService(mock, nil)

	result, err := svc.Apply(context.Background(), "T1", candidate("cv.pdf"), "j1", ResumeSourceProfile)

	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", mock.lastApplyReq.ResumeURL)
	assert.Len(t, result.Jobs, 1)
	assert.Len(t, result.Applications, 1)
}

func TestService_Apply_ProfileResumeMissing(t *testing.T) {
	mock := &mockJobsAPI{}
	svc := NewService(mock, nil)

	_, err := svc.Apply(context.Background(), "T1", candidate(""), "j1", ResumeSourceProfile)

	require.Error(t, err)
	assert.Empty(t, mock.calls, "rejected client-side before any network call")
}

func TestService_Apply_UnknownResumeSource(t *testing.T) {
	mock := &mockJobsAPI{}
	svc := NewService(mock, nil)

	_, err := svc.Apply(context.Background(), "T1", candidate("cv.pdf"), "j1", "carrier-pigeon")

	require.Error(t, err)
	assert.Empty(t, mock.calls)
}

func TestService_Apply_RefreshesSequencedAfterMutation(t *testing.T) {
	mock := &mockJobsAPI{}
	svc := NewService(mock, nil)

	_, err := svc.Apply(context.Background(), "T1", candidate("cv.pdf"), "j1", ResumeSourceProfile)

	require.NoError(t, err)
	assert.Equal(t, []string{"apply", "list-all", "list-apps"}, mock.calls,
		"dependent fetches fire after the mutating response, in order")
}

func TestService_Apply_MutationFailureSkipsRefreshes(t *testing.T) {
	mock := &mockJobsAPI{applyErr: errors.New("closed")}
	svc := NewService(mock, nil)

	_, err := svc.Apply(context.Background(), "T1", candidate("cv.pdf"), "j1", ResumeSourceProfile)

	require.Error(t, err)
	assert.Equal(t, []string{"apply"}, mock.calls)
}

func TestService_Apply_DegradedRefreshIsNotFatal(t *testing.T) {
	mock := &mockJobsAPI{listErr: errors.New("timeout")}
	svc := NewService(mock, nil)

	result, err := svc.Apply(context.Background(), "T1", candidate("cv.pdf"), "j1", ResumeSourceProfile)

	require.NoError(t, err, "the application went through; stale lists are cosmetic")
	assert.Nil(t, result.Jobs)
	assert.Len(t, result.Applications, 1)
}

func TestService_Create_Validates(t *testing.T) {
	mock := &mockJobsAPI{}
	svc := NewService(mock, nil)

	_, _, err := svc.Create(context.Background(), "T1", NewJob{Title: "No company"})

	require.Error(t, err)
	assert.Empty(t, mock.calls)
}

func TestService_Create_RefreshSequenced(t *testing.T) {
	mock := &mockJobsAPI{}
	svc := NewService(mock, nil)

	created, mine, err := svc.Create(context.Background(), "T1", NewJob{
		Title:       "Go Engineer",
		CompanyName: "JobWire",
		Description: "Write Go",
		Salary:      120000,
	})

	require.NoError(t, err)
	assert.Equal(t, "j1", created.ID)
	assert.Len(t, mine, 1)
	assert.Equal(t, []string{"create", "list-mine"}, mock.calls)
}
