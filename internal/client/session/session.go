package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	clientapi "github.com/jobwire/jobwire/internal/client/api"
	"github.com/jobwire/jobwire/internal/client/storage"
	"github.com/jobwire/jobwire/internal/models"
	"github.com/jobwire/jobwire/internal/validation"
	"github.com/jobwire/jobwire/pkg/api"
)

// Outcome classifies a synchronization attempt. The three-way split is
// the point of this package: a confirmed rejection logs the user out,
// while a server hiccup or network failure must not.
type Outcome int

const (
	// OutcomeAuthenticated means the server confirmed the session and
	// returned a fresh profile.
	OutcomeAuthenticated Outcome = iota

	// OutcomeUnauthorized means the server explicitly rejected the
	// token (401/403). Session state has been destroyed.
	OutcomeUnauthorized

	// OutcomeDegraded means the server could not confirm either way:
	// 5xx, malformed response, timeout or network failure. Session
	// state is preserved and the caller should surface a
	// non-destructive notice.
	OutcomeDegraded
)

// Degraded reasons.
const (
	ReasonTimeout = "timeout"
	ReasonServer  = "server"
	ReasonNetwork = "network"
)

// SyncResult is the classified result of a Synchronize call.
type SyncResult struct {
	Outcome Outcome
	User    *models.UserRecord // set when authenticated
	Reason  string             // set when degraded
	Err     error              // underlying error, when any
}

// API is what the synchronizer needs from the HTTP client.
type API interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	GetProfile(ctx context.Context, token string) (*api.UserProfile, error)
	GetProfileFresh(ctx context.Context, token string) (*api.UserProfile, error)
}

// Service reconciles local session state with the server's
// authoritative profile. It owns the in-memory UserRecord: nothing else
// mutates it, and the token store is only ever written through here.
type Service struct {
	api    API
	auth   storage.AuthStorage
	cache  storage.ProfileStorage
	logger *slog.Logger
	user   *models.UserRecord
}

// NewService creates a session service. cache may be nil; profile
// caching is cosmetic and failures there are never fatal.
func NewService(apiClient API, auth storage.AuthStorage, cache storage.ProfileStorage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:    apiClient,
		auth:   auth,
		cache:  cache,
		logger: logger,
	}
}

// CurrentUser returns the in-memory user record, or nil when no
// synchronization has succeeded yet.
func (s *Service) CurrentUser() *models.UserRecord {
	return s.user
}

// Token returns the persisted bearer token.
func (s *Service) Token(ctx context.Context) (string, error) {
	auth, err := s.auth.GetAuth(ctx)
	if err != nil {
		return "", err
	}
	return auth.Token, nil
}

// Login authenticates, persists the token and seeds the user record.
func (s *Service) Login(ctx context.Context, email, password string) (*models.UserRecord, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.establish(ctx, resp)
}

// Register creates an account, persists the token and seeds the record.
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) (*models.UserRecord, error) {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	if err := validation.ValidateSignupRole(req.Role); err != nil {
		return nil, fmt.Errorf("invalid role: %w", err)
	}

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.establish(ctx, resp)
}

func (s *Service) establish(ctx context.Context, resp *api.AuthResponse) (*models.UserRecord, error) {
	if resp.Token == "" {
		return nil, fmt.Errorf("server returned no token")
	}

	authData := &storage.AuthData{
		Token:   resp.Token,
		Email:   resp.Email,
		Role:    resp.Role,
		SavedAt: time.Now(),
	}
	if err := s.auth.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	user := models.NormalizeUser(api.UserProfile{
		Email:     resp.Email,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Role:      resp.Role,
	})
	s.user = &user
	s.cacheProfile(ctx, &user)

	s.logger.Info("session established", "email", user.Email, "role", user.Role)
	return &user, nil
}

// Synchronize reconciles the in-memory record with the server profile
// and classifies the result. A 401/403 is the only path that destroys
// session state; every other failure preserves the token and any
// previously held record.
func (s *Service) Synchronize(ctx context.Context) SyncResult {
	token, err := s.Token(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return SyncResult{Outcome: OutcomeUnauthorized, Err: err}
		}
		// Local storage trouble is not a server rejection.
		return SyncResult{Outcome: OutcomeDegraded, Reason: ReasonNetwork, Err: err}
	}

	profile, err := s.api.GetProfile(ctx, token)
	if err != nil {
		return s.classifyFailure(ctx, err)
	}

	user := models.NormalizeUser(*profile)
	s.user = &user
	s.cacheProfile(ctx, &user)

	s.logger.Debug("profile synchronized", "email", user.Email, "role", user.Role)
	return SyncResult{Outcome: OutcomeAuthenticated, User: &user}
}

// RefreshSilently re-fetches the profile with cache-defeating headers
// and updates the in-memory record in place. It never drives a view
// recomposition; callers use it after profile-mutating operations to
// resolve partial updates to a consistent state. On failure the
// previous record is preserved.
func (s *Service) RefreshSilently(ctx context.Context) (*models.UserRecord, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("no active session: %w", err)
	}

	profile, err := s.api.GetProfileFresh(ctx, token)
	if err != nil {
		if clientapi.IsUnauthorized(err) {
			s.teardown(ctx)
			return nil, fmt.Errorf("session rejected: %w", err)
		}
		s.logger.Warn("silent refresh degraded, keeping previous record", "error", err)
		return nil, fmt.Errorf("refresh failed: %w", err)
	}

	user := models.NormalizeUser(*profile)
	s.user = &user
	s.cacheProfile(ctx, &user)

	return &user, nil
}

// Logout destroys local session state. The backend is stateless about
// bearer tokens, so there is nothing to notify.
func (s *Service) Logout(ctx context.Context) error {
	s.user = nil
	s.dropCache(ctx)

	if err := s.auth.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CachedUser returns the persisted profile snapshot, if any. Useful for
// rendering before the first live synchronization; never authoritative
// after one.
func (s *Service) CachedUser(ctx context.Context) (*models.UserRecord, error) {
	if s.cache == nil {
		return nil, storage.ErrProfileNotFound
	}
	return s.cache.GetProfile(ctx)
}

func (s *Service) classifyFailure(ctx context.Context, err error) SyncResult {
	if clientapi.IsUnauthorized(err) {
		s.teardown(ctx)
		s.logger.Info("session rejected by server, credentials cleared")
		return SyncResult{Outcome: OutcomeUnauthorized, Err: err}
	}

	reason := ReasonNetwork
	var statusErr *clientapi.StatusError
	switch {
	case clientapi.IsTimeout(err):
		reason = ReasonTimeout
	case errors.As(err, &statusErr):
		reason = ReasonServer
	}

	s.logger.Warn("synchronization degraded, session preserved", "reason", reason, "error", err)
	return SyncResult{Outcome: OutcomeDegraded, Reason: reason, Err: err}
}

// teardown destroys session state after a confirmed rejection. This is
// the only place outside Logout that clears the token store.
func (s *Service) teardown(ctx context.Context) {
	s.user = nil
	s.dropCache(ctx)

	if err := s.auth.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		s.logger.Error("failed to clear rejected session", "error", err)
	}
}

// cacheProfile persists the record snapshot. Cache writes are cosmetic;
// failures are logged and swallowed.
func (s *Service) cacheProfile(ctx context.Context, user *models.UserRecord) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SaveProfile(ctx, user); err != nil {
		s.logger.Warn("failed to cache profile", "error", err)
	}
}

func (s *Service) dropCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteProfile(ctx); err != nil && !errors.Is(err, storage.ErrProfileNotFound) {
		s.logger.Warn("failed to drop cached profile", "error", err)
	}
}
