package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jobwire/jobwire/internal/client/admin"
	clientapi "github.com/jobwire/jobwire/internal/client/api"
	"github.com/jobwire/jobwire/internal/client/iocli"
	"github.com/jobwire/jobwire/internal/client/jobs"
	"github.com/jobwire/jobwire/internal/client/profile"
	"github.com/jobwire/jobwire/internal/client/session"
	"github.com/jobwire/jobwire/internal/client/storage"
	"github.com/jobwire/jobwire/internal/client/view"
	"github.com/jobwire/jobwire/internal/models"
	"github.com/jobwire/jobwire/pkg/api"
)

// SessionService is what the commands need from the session layer.
type SessionService interface {
	CurrentUser() *models.UserRecord
	Token(ctx context.Context) (string, error)
	Login(ctx context.Context, email, password string) (*models.UserRecord, error)
	Register(ctx context.Context, req api.RegisterRequest) (*models.UserRecord, error)
	Synchronize(ctx context.Context) session.SyncResult
	Logout(ctx context.Context) error
	CachedUser(ctx context.Context) (*models.UserRecord, error)
}

// PremiumGate routes candidate browsing through the premium flow.
type PremiumGate interface {
	ResolveCandidateAccess(ctx context.Context, token string, user models.UserRecord) view.GateState
	RequestUpgrade(ctx context.Context, token string) error
}

// ProfileEditor saves profile edits and resume uploads.
type ProfileEditor interface {
	Save(ctx context.Context, token string, user models.UserRecord, edit profile.Edit, resume *profile.ResumeUpload) (*models.UserRecord, error)
	RemoveResume(ctx context.Context, token string) (*models.UserRecord, error)
	SavePicture(ctx context.Context, token, fileName string, file io.Reader) (*models.UserRecord, error)
}

// JobsService drives job listing, creation and applications.
type JobsService interface {
	Create(ctx context.Context, token string, job jobs.NewJob) (*api.Job, []api.Job, error)
	Available(ctx context.Context, token string) ([]api.Job, error)
	Mine(ctx context.Context, token string) ([]api.Job, error)
	MyApplications(ctx context.Context, token string) ([]api.JobApplication, error)
	ReceivedApplications(ctx context.Context, token string) ([]api.JobApplication, error)
	Apply(ctx context.Context, token string, user models.UserRecord, jobID, resumeSource string) (*jobs.ApplyResult, error)
}

// AdminService drives the admin panel flows.
type AdminService interface {
	LoadOverview(ctx context.Context, token string) (*admin.Overview, error)
	ToggleLock(ctx context.Context, token, email string) (*models.UserRecord, error)
	Approve(ctx context.Context, token, requestID string) error
	Reject(ctx context.Context, token, requestID string) error
	SetPremium(ctx context.Context, token, email string, premium bool) error
}

// UserLister enumerates user listings for the candidate browser.
type UserLister interface {
	ListUsers(ctx context.Context, token string, scope clientapi.UserScope) ([]api.UserProfile, error)
}

type Cli struct {
	io      iocli.IO
	session SessionService
	gate    PremiumGate
	editor  ProfileEditor
	jobs    JobsService
	admin   AdminService
	users   UserLister
}

func New(
	io iocli.IO,
	sessionService SessionService,
	gate PremiumGate,
	editor ProfileEditor,
	jobsService JobsService,
	adminService AdminService,
	users UserLister,
) *Cli {
	return &Cli{
		io:      io,
		session: sessionService,
		gate:    gate,
		editor:  editor,
		jobs:    jobsService,
		admin:   adminService,
		users:   users,
	}
}

// requireToken resolves the stored bearer token, translating a missing
// session into a friendly message.
func (c *Cli) requireToken(ctx context.Context) (string, error) {
	token, err := c.session.Token(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", fmt.Errorf("not authenticated. Please run 'jobwire login' first")
		}
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return token, nil
}

// requireUser resolves both the token and a user record, synchronizing
// when no record is held in memory yet.
func (c *Cli) requireUser(ctx context.Context) (string, *models.UserRecord, error) {
	token, err := c.requireToken(ctx)
	if err != nil {
		return "", nil, err
	}

	if user := c.session.CurrentUser(); user != nil {
		return token, user, nil
	}

	result := c.session.Synchronize(ctx)
	switch result.Outcome {
	case session.OutcomeAuthenticated:
		return token, result.User, nil
	case session.OutcomeUnauthorized:
		return "", nil, fmt.Errorf("session expired. Please run 'jobwire login' again")
	default:
		// Degraded: a cached snapshot is better than refusing outright.
		cached, cacheErr := c.session.CachedUser(ctx)
		if cacheErr != nil {
			return "", nil, fmt.Errorf("server unavailable and no cached profile: %w", result.Err)
		}
		c.io.Println("⚠️  Server unavailable, using cached profile.")
		return token, cached, nil
	}
}

func PrintUsage() {
	fmt.Println("JobWire Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  jobwire [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local database (default: jobwire-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                          Register new account (candidate or recruiter)")
	fmt.Println("  login                             Login to server")
	fmt.Println("  logout                            Logout and clear local session")
	fmt.Println("  status                            Show authentication status")
	fmt.Println("  dashboard                         Synchronize and render the role dashboard")
	fmt.Println("  profile [show|edit|picture]       Show or edit your profile")
	fmt.Println("  resume delete                     Remove the stored resume")
	fmt.Println("  jobs [list|mine|create]           Browse or manage job postings")
	fmt.Println("  apply <job-id> [profile|upload]   Apply to a job")
	fmt.Println("  applications [received]           List your (or received) applications")
	fmt.Println("  candidates                        Browse candidates (premium recruiters)")
	fmt.Println("  premium [request]                 Premium status, or file an upgrade request")
	fmt.Println("  admin <overview|lock|approve|reject|premium>")
	fmt.Println("                                    Admin panel operations")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  jobwire register")
	fmt.Println("  jobwire login")
	fmt.Println("  jobwire dashboard")
	fmt.Println("  jobwire jobs list")
	fmt.Println("  jobwire apply 68a1f2c3 profile")
	fmt.Println("  jobwire admin lock user@example.com")
	fmt.Println("  jobwire --server https://portal.example.com login")
}
