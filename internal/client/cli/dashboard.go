package cli

import (
	"context"

	"github.com/jobwire/jobwire/internal/client/api"
	"github.com/jobwire/jobwire/internal/client/session"
	"github.com/jobwire/jobwire/internal/client/view"
	"github.com/jobwire/jobwire/internal/models"
)

func (c *Cli) runDashboard(ctx context.Context) error {
	c.io.Println("=== Dashboard ===")
	c.io.Println()

	result := c.session.Synchronize(ctx)

	var user *models.UserRecord
	switch result.Outcome {
	case session.OutcomeUnauthorized:
		c.io.Println("Not authenticated. Please run 'jobwire login' first.")
		return nil
	case session.OutcomeDegraded:
		c.notifyDegraded(result.Reason)
		cached, err := c.session.CachedUser(ctx)
		if err != nil {
			c.io.Println("No cached profile available. Try again later.")
			return nil
		}
		user = cached
	default:
		user = result.User
	}

	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Welcome back, %s!\n", user.FullName())
	c.io.Println()

	plan := view.Compose(*user)

	// The admin overview covers both admin fetch intents in one call;
	// everything else resolves intent by intent.
	if plan.HasPanel(view.PanelAdmin) {
		return c.renderAdminOverview(ctx, token)
	}

	for _, intent := range plan.Fetches {
		c.executeFetch(ctx, token, intent)
	}
	return nil
}

// executeFetch resolves one fetch intent. A failing fetch degrades its
// own panel and nothing else; it never touches session state.
func (c *Cli) executeFetch(ctx context.Context, token string, intent view.FetchIntent) {
	var err error
	switch intent {
	case view.FetchMyJobs:
		mine, fetchErr := c.jobs.Mine(ctx, token)
		err = fetchErr
		if err == nil {
			c.renderJobs("My job postings", mine)
		}
	case view.FetchReceivedApplications:
		apps, fetchErr := c.jobs.ReceivedApplications(ctx, token)
		err = fetchErr
		if err == nil {
			c.renderApplications("Received applications", apps)
		}
	case view.FetchCandidates:
		raw, fetchErr := c.users.ListUsers(ctx, token, api.ScopeCandidates)
		err = fetchErr
		if err == nil {
			c.renderUsers("Candidates", normalizeAll(raw))
		}
	case view.FetchAvailableJobs:
		available, fetchErr := c.jobs.Available(ctx, token)
		err = fetchErr
		if err == nil {
			c.renderJobs("Available jobs", available)
		}
	case view.FetchMyApplications:
		apps, fetchErr := c.jobs.MyApplications(ctx, token)
		err = fetchErr
		if err == nil {
			c.renderApplications("My applications", apps)
		}
	}

	if err != nil {
		c.io.Printf("⚠️  Failed to load %s: %v\n", intent, err)
	}
}

func (c *Cli) notifyDegraded(reason string) {
	switch reason {
	case session.ReasonTimeout:
		c.io.Println("⚠️  Server is slow to respond. Your session is preserved.")
	case session.ReasonServer:
		c.io.Println("⚠️  Server error. Your session is preserved.")
	default:
		c.io.Println("⚠️  Cannot reach server. Your session is preserved.")
	}
	c.io.Println()
}
