package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/jobwire/jobwire/internal/models"
	"github.com/jobwire/jobwire/pkg/api"
)

// Resume sources for a job application.
const (
	ResumeSourceProfile = "profile"
	ResumeSourceUpload  = "upload"
)

// JobsAPI is what the service needs from the HTTP client.
type JobsAPI interface {
	CreateJob(ctx context.Context, token string, req api.CreateJobRequest) (*api.Job, error)
	ListAllJobs(ctx context.Context, token string) ([]api.Job, error)
	ListMyJobs(ctx context.Context, token string) ([]api.Job, error)
	Apply(ctx context.Context, token, jobID string, req api.ApplyRequest) error
	ListMyApplications(ctx context.Context, token string) ([]api.JobApplication, error)
	ListReceivedApplications(ctx context.Context, token string) ([]api.JobApplication, error)
}

// NewJob carries the job-creation form.
type NewJob struct {
	Title        string  `validate:"required,max=200"`
	CompanyName  string  `validate:"required,max=200"`
	Description  string  `validate:"required,max=5000"`
	Requirements string  `validate:"omitempty,max=5000"`
	Salary       float64 `validate:"omitempty,gte=0"`
}

// ApplyResult is what the UI re-renders after a successful application.
// The lists are fetched after the apply response is observed, never
// concurrently with it, so they cannot be stale relative to the
// mutation. Either may be nil if its refresh degraded; the application
// itself still went through.
type ApplyResult struct {
	Jobs         []api.Job
	Applications []api.JobApplication
}

// Service drives the job posting and application flows.
type Service struct {
	api      JobsAPI
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a jobs service.
func NewService(apiClient JobsAPI, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:      apiClient,
		validate: validator.New(),
		logger:   logger,
	}
}

// Create validates and posts a new job, then returns the recruiter's
// refreshed job list, sequenced after the create response.
func (s *Service) Create(ctx context.Context, token string, job NewJob) (*api.Job, []api.Job, error) {
	if err := s.validate.Struct(job); err != nil {
		return nil, nil, fmt.Errorf("invalid job: %w", err)
	}

	created, err := s.api.CreateJob(ctx, token, api.CreateJobRequest{
		Title:        job.Title,
		CompanyName:  job.CompanyName,
		Description:  job.Description,
		Requirements: job.Requirements,
		Salary:       job.Salary,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("job create failed: %w", err)
	}

	mine, err := s.api.ListMyJobs(ctx, token)
	if err != nil {
		// The job exists; a stale list is cosmetic.
		s.logger.Warn("job created but list refresh failed", "error", err)
		return created, nil, nil
	}
	return created, mine, nil
}

// Available lists open jobs.
func (s *Service) Available(ctx context.Context, token string) ([]api.Job, error) {
	return s.api.ListAllJobs(ctx, token)
}

// Mine lists the recruiter's own jobs.
func (s *Service) Mine(ctx context.Context, token string) ([]api.Job, error) {
	return s.api.ListMyJobs(ctx, token)
}

// MyApplications lists the candidate's applications.
func (s *Service) MyApplications(ctx context.Context, token string) ([]api.JobApplication, error) {
	return s.api.ListMyApplications(ctx, token)
}

// ReceivedApplications lists applications to the recruiter's jobs.
func (s *Service) ReceivedApplications(ctx context.Context, token string) ([]api.JobApplication, error) {
	return s.api.ListReceivedApplications(ctx, token)
}

// Apply submits an application. Using the profile resume requires one
// to exist on the current record; that is checked here, before any
// network call. The dependent list refreshes fire only after the apply
// response is observed.
func (s *Service) Apply(ctx context.Context, token string, user models.UserRecord, jobID, resumeSource string) (*ApplyResult, error) {
	if jobID == "" {
		return nil, fmt.Errorf("job id cannot be empty")
	}
	switch resumeSource {
	case ResumeSourceProfile:
		if user.ResumeURL == "" {
			return nil, fmt.Errorf("no resume on profile; upload one before applying")
		}
	case ResumeSourceUpload:
		// The upload itself happens through the profile editor first;
		// the application references the stored file.
	default:
		return nil, fmt.Errorf("resume source must be %q or %q", ResumeSourceProfile, ResumeSourceUpload)
	}

	req := api.ApplyRequest{ResumeSource: resumeSource}
	if resumeSource == ResumeSourceProfile {
		req.ResumeURL = user.ResumeURL
	}

	if err := s.api.Apply(ctx, token, jobID, req); err != nil {
		return nil, fmt.Errorf("application failed: %w", err)
	}

	result := &ApplyResult{}

	jobsList, err := s.api.ListAllJobs(ctx, token)
	if err != nil {
		s.logger.Warn("applied but job list refresh failed", "error", err)
	} else {
		result.Jobs = jobsList
	}

	apps, err := s.api.ListMyApplications(ctx, token)
	if err != nil {
		s.logger.Warn("applied but application list refresh failed", "error", err)
	} else {
		result.Applications = apps
	}

	return result, nil
}
