package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobwire/jobwire/internal/client/api"
	"github.com/jobwire/jobwire/internal/client/view"
)

func (c *Cli) runCandidates(ctx context.Context) error {
	token, user, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	switch c.gate.ResolveCandidateAccess(ctx, token, *user) {
	case view.GateGranted:
		raw, err := c.users.ListUsers(ctx, token, api.ScopeCandidates)
		if err != nil {
			return fmt.Errorf("failed to list candidates: %w", err)
		}
		c.renderUsers("Candidates", normalizeAll(raw))
		return nil

	case view.GatePending:
		c.io.Println("Your premium request is pending admin review.")
		c.io.Println("Candidate browsing unlocks once it is approved.")
		return nil

	default:
		c.io.Println("Browsing candidates requires a premium account.")
		answer, err := c.io.ReadInput("Request an upgrade now? (y/n): ")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if strings.ToLower(answer) != "y" {
			return nil
		}
		if err := c.gate.RequestUpgrade(ctx, token); err != nil {
			return err
		}
		c.io.Println("✓ Premium request submitted. An admin will review it.")
		return nil
	}
}

func (c *Cli) runPremium(ctx context.Context, args []string) error {
	token, user, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "request" {
		if user.IsPremium {
			c.io.Println("You already have a premium account.")
			return nil
		}
		if err := c.gate.RequestUpgrade(ctx, token); err != nil {
			return err
		}
		c.io.Println("✓ Premium request submitted. An admin will review it.")
		return nil
	}

	switch c.gate.ResolveCandidateAccess(ctx, token, *user) {
	case view.GateGranted:
		c.io.Println("Premium: active")
	case view.GatePending:
		c.io.Println("Premium: request pending admin review")
	default:
		c.io.Println("Premium: not active")
		c.io.Println("Run 'jobwire premium request' to file an upgrade request.")
	}
	return nil
}
