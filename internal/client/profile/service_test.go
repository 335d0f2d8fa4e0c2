package profile

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobwire/jobwire/internal/models"
	"github.com/jobwire/jobwire/pkg/api"
)

// mockProfileAPI implements ProfileAPI for testing
type mockProfileAPI struct {
	updateErr  error
	uploadErr  error
	deleteErr  error
	pictureErr error

	updateCalls  int
	uploadCalls  int
	lastUpdate   api.UpdateProfileRequest
	lastFileName string
}

func (m *mockProfileAPI) UpdateProfile(ctx context.Context, token string, req api.UpdateProfileRequest) error {
	m.updateCalls++
	m.lastUpdate = req
	return m.updateErr
}

func (m *mockProfileAPI) UploadResume(ctx context.Context, token, fileName string, file io.Reader) (*api.UploadResponse, error) {
	m.uploadCalls++
	m.lastFileName = fileName
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	return &api.UploadResponse{FileName: fileName}, nil
}

func (m *mockProfileAPI) DeleteResume(ctx context.Context, token string) error {
	return m.deleteErr
}

func (m *mockProfileAPI) UploadPicture(ctx context.Context, token, fileName string, file io.Reader) (*api.UploadResponse, error) {
	if m.pictureErr != nil {
		return nil, m.pictureErr
	}
	return &api.UploadResponse{FileName: fileName}, nil
}

// mockRefresher implements Refresher for testing
type mockRefresher struct {
	user  *models.UserRecord
	err   error
	calls int
}

func (m *mockRefresher) RefreshSilently(ctx context.Context) (*models.UserRecord, error) {
	m.calls++
	return m.user, m.err
}

func validEdit() Edit {
	return Edit{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		ExperienceYears: "12",
		Skills:          "Go",
	}
}

func TestEditor_Save_CandidateSendsAllFields(t *testing.T) {
	mock := &mockProfileAPI{}
	refresher := &mockRefresher{user: &models.UserRecord{Email: "a@b.com"}}
	editor := NewEditor(mock, refresher, nil)

	updated, err := editor.Save(context.Background(), "T1",
		models.UserRecord{Role: models.RoleCandidate}, validEdit(), nil)

	require.NoError(t, err)
	assert.Equal(t, "a@b.com", updated.Email)
	assert.Equal(t, 1, mock.updateCalls)
	require.NotNil(t, mock.lastUpdate.Skills)
	assert.Equal(t, "Go", *mock.lastUpdate.Skills)
	assert.Equal(t, 1, refresher.calls, "save must re-synchronize")
}

func TestEditor_Save_RecruiterOmitsCandidateFields(t *testing.T) {
	mock := &mockProfileAPI{}
	refresher := &mockRefresher{user: &models.UserRecord{}}
	editor := NewEditor(mock, refresher, nil)

	_, err := editor.Save(context.Background(), "T1",
		models.UserRecord{Role: models.RoleRecruiter}, validEdit(), nil)

	require.NoError(t, err)
	assert.Nil(t, mock.lastUpdate.Skills, "recruiter edits must not blank candidate fields")
	assert.Nil(t, mock.lastUpdate.Education)
	assert.Nil(t, mock.lastUpdate.ExperienceYears)
}

func TestEditor_Save_ValidationBeforeNetwork(t *testing.T) {
	mock := &mockProfileAPI{}
	editor := NewEditor(mock, &mockRefresher{}, nil)

	_, err := editor.Save(context.Background(), "T1",
		models.UserRecord{Role: models.RoleCandidate}, Edit{LastName: "NoFirst"}, nil)

	require.Error(t, err)
	assert.Zero(t, mock.updateCalls, "invalid edits must not reach the network")
}

func TestEditor_Save_UploadsResumeAfterFields(t *testing.T) {
	mock := &mockProfileAPI{}
	refresher := &mockRefresher{user: &models.UserRecord{ResumeURL: "cv.pdf"}}
	editor := NewEditor(mock, refresher, nil)

	updated, err := editor.Save(context.Background(), "T1",
		models.UserRecord{Role: models.RoleCandidate}, validEdit(),
		&ResumeUpload{FileName: "cv.pdf", File: strings.NewReader("%PDF-1.4")})

	require.NoError(t, err)
	assert.Equal(t, 1, mock.uploadCalls)
	assert.Equal(t, "cv.pdf", mock.lastFileName)
	assert.Equal(t, "cv.pdf", updated.ResumeURL)
}

func TestEditor_Save_PartialFailureResolves(t *testing.T) {
	mock := &mockProfileAPI{uploadErr: errors.New("disk full")}
	refresher := &mockRefresher{user: &models.UserRecord{}}
	editor := NewEditor(mock, refresher, nil)

	_, err := editor.Save(context.Background(), "T1",
		models.UserRecord{Role: models.RoleCandidate}, validEdit(),
		&ResumeUpload{FileName: "cv.pdf", File: strings.NewReader("x")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume upload failed")
	assert.Equal(t, 1, mock.updateCalls, "fields were already sent")
	assert.Equal(t, 1, refresher.calls, "partial failure must re-synchronize to server truth")
}

func TestEditor_Save_UpdateFailureSkipsUpload(t *testing.T) {
	mock := &mockProfileAPI{updateErr: errors.New("boom")}
	editor := NewEditor(mock, &mockRefresher{}, nil)

	_, err := editor.Save(context.Background(), "T1",
		models.UserRecord{Role: models.RoleCandidate}, validEdit(),
		&ResumeUpload{FileName: "cv.pdf", File: strings.NewReader("x")})

	require.Error(t, err)
	assert.Zero(t, mock.uploadCalls, "dependent upload must not fire after a failed update")
}

func TestEditor_RemoveResume(t *testing.T) {
	mock := &mockProfileAPI{}
	refresher := &mockRefresher{user: &models.UserRecord{}}
	editor := NewEditor(mock, refresher, nil)

	updated, err := editor.RemoveResume(context.Background(), "T1")

	require.NoError(t, err)
	assert.Empty(t, updated.ResumeURL)
	assert.Equal(t, 1, refresher.calls)
}
