package cli

import (
	"context"
	"fmt"

	"github.com/jobwire/jobwire/internal/client/jobs"
)

func (c *Cli) runApply(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing job id. Usage: jobwire apply <job-id> [profile|upload]")
	}
	jobID := args[0]

	resumeSource := jobs.ResumeSourceProfile
	if len(args) > 1 {
		resumeSource = args[1]
	}

	token, user, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	c.io.Println("Applying...")

	result, err := c.jobs.Apply(ctx, token, *user, jobID, resumeSource)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Application submitted!")

	if result.Applications != nil {
		c.io.Println()
		c.renderApplications("My applications", result.Applications)
	}
	if result.Jobs != nil {
		c.io.Println()
		c.renderJobs("Available jobs", result.Jobs)
	}
	return nil
}
