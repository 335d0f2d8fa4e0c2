package profile

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/jobwire/jobwire/internal/models"
	"github.com/jobwire/jobwire/pkg/api"
)

// ProfileAPI is what the editor needs from the HTTP client.
type ProfileAPI interface {
	UpdateProfile(ctx context.Context, token string, req api.UpdateProfileRequest) error
	UploadResume(ctx context.Context, token, fileName string, file io.Reader) (*api.UploadResponse, error)
	DeleteResume(ctx context.Context, token string) error
	UploadPicture(ctx context.Context, token, fileName string, file io.Reader) (*api.UploadResponse, error)
}

// Refresher resolves the user record to server truth after mutations.
type Refresher interface {
	RefreshSilently(ctx context.Context) (*models.UserRecord, error)
}

// Edit carries the editable profile fields from the form.
type Edit struct {
	FirstName       string `validate:"required,max=100"`
	LastName        string `validate:"required,max=100"`
	CountryCode     string `validate:"omitempty,max=8"`
	MobileNumber    string `validate:"omitempty,max=20"`
	CurrentCompany  string `validate:"omitempty,max=200"`
	ExperienceYears string `validate:"omitempty,max=3,numeric"`
	Education       string `validate:"omitempty,max=500"`
	Skills          string `validate:"omitempty,max=500"`
	PastExperience  string `validate:"omitempty,max=2000"`
}

// ResumeUpload pairs a file name with its contents.
type ResumeUpload struct {
	FileName string
	File     io.Reader
}

// Editor saves profile edits. A save is two independent requests
// (field update, then resume upload); they are not atomic, so any
// failure after the first request resolves via a silent refresh
// instead of trusting accumulated local state.
type Editor struct {
	api      ProfileAPI
	session  Refresher
	validate *validator.Validate
	logger   *slog.Logger
}

// NewEditor creates a profile editor.
func NewEditor(apiClient ProfileAPI, session Refresher, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		api:      apiClient,
		session:  session,
		validate: validator.New(),
		logger:   logger,
	}
}

// Save validates the edit, updates the profile fields and then uploads
// the resume if one was selected. Candidate-only fields are omitted for
// recruiters so the server values stay untouched. The returned record
// is the re-synchronized server truth.
func (e *Editor) Save(ctx context.Context, token string, user models.UserRecord, edit Edit, resume *ResumeUpload) (*models.UserRecord, error) {
	if err := e.validate.Struct(edit); err != nil {
		return nil, fmt.Errorf("invalid profile data: %w", err)
	}

	req := api.UpdateProfileRequest{
		FirstName:      edit.FirstName,
		LastName:       edit.LastName,
		CountryCode:    edit.CountryCode,
		MobileNumber:   edit.MobileNumber,
		CurrentCompany: edit.CurrentCompany,
	}
	if user.Role != models.RoleRecruiter {
		req.ExperienceYears = &edit.ExperienceYears
		req.Education = &edit.Education
		req.Skills = &edit.Skills
		req.PastExperience = &edit.PastExperience
	}

	if err := e.api.UpdateProfile(ctx, token, req); err != nil {
		return nil, fmt.Errorf("profile update failed: %w", err)
	}

	if resume != nil {
		if _, err := e.api.UploadResume(ctx, token, resume.FileName, resume.File); err != nil {
			// Fields saved but the resume did not: the record is
			// partially updated server-side. Resolve to server truth
			// before reporting the failure.
			e.resolve(ctx)
			return nil, fmt.Errorf("profile fields saved but resume upload failed: %w", err)
		}
	}

	updated, err := e.session.RefreshSilently(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile saved but refresh failed: %w", err)
	}
	return updated, nil
}

// RemoveResume deletes the stored resume and re-synchronizes.
func (e *Editor) RemoveResume(ctx context.Context, token string) (*models.UserRecord, error) {
	if err := e.api.DeleteResume(ctx, token); err != nil {
		return nil, fmt.Errorf("resume delete failed: %w", err)
	}

	updated, err := e.session.RefreshSilently(ctx)
	if err != nil {
		return nil, fmt.Errorf("resume deleted but refresh failed: %w", err)
	}
	return updated, nil
}

// SavePicture uploads a profile picture and re-synchronizes.
func (e *Editor) SavePicture(ctx context.Context, token, fileName string, file io.Reader) (*models.UserRecord, error) {
	if _, err := e.api.UploadPicture(ctx, token, fileName, file); err != nil {
		return nil, fmt.Errorf("picture upload failed: %w", err)
	}

	updated, err := e.session.RefreshSilently(ctx)
	if err != nil {
		return nil, fmt.Errorf("picture saved but refresh failed: %w", err)
	}
	return updated, nil
}

func (e *Editor) resolve(ctx context.Context) {
	if _, err := e.session.RefreshSilently(ctx); err != nil {
		e.logger.Warn("failed to re-synchronize after partial update", "error", err)
	}
}
