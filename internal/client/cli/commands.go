package cli

import (
	"context"
	"fmt"
)

// Run dispatches a command. Argument parsing stays here; the per-command
// files hold the flows.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "dashboard":
		return c.runDashboard(ctx)
	case "profile":
		return c.runProfile(ctx, args)
	case "resume":
		return c.runResume(ctx, args)
	case "jobs":
		return c.runJobs(ctx, args)
	case "apply":
		return c.runApply(ctx, args)
	case "applications":
		return c.runApplications(ctx, args)
	case "candidates":
		return c.runCandidates(ctx)
	case "premium":
		return c.runPremium(ctx, args)
	case "admin":
		return c.runAdmin(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
