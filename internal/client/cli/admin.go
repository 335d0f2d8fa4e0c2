package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing admin subcommand. Use: overview, lock, approve, reject, or premium")
	}

	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	switch args[0] {
	case "overview":
		return c.renderAdminOverview(ctx, token)

	case "lock":
		if len(args) < 2 {
			return fmt.Errorf("usage: jobwire admin lock <email>")
		}
		user, err := c.admin.ToggleLock(ctx, token, args[1])
		if err != nil {
			return err
		}
		if user.IsLocked {
			c.io.Printf("✓ Account locked: %s\n", user.Email)
		} else {
			c.io.Printf("✓ Account unlocked: %s\n", user.Email)
		}
		return nil

	case "approve":
		if len(args) < 2 {
			return fmt.Errorf("usage: jobwire admin approve <request-id>")
		}
		if err := c.admin.Approve(ctx, token, args[1]); err != nil {
			return err
		}
		c.io.Println("✓ Premium request approved.")
		return nil

	case "reject":
		if len(args) < 2 {
			return fmt.Errorf("usage: jobwire admin reject <request-id>")
		}
		if err := c.admin.Reject(ctx, token, args[1]); err != nil {
			return err
		}
		c.io.Println("✓ Premium request rejected.")
		return nil

	case "premium":
		if len(args) < 3 {
			return fmt.Errorf("usage: jobwire admin premium <email> <true|false>")
		}
		premium, err := strconv.ParseBool(args[2])
		if err != nil {
			return fmt.Errorf("premium flag must be true or false: %w", err)
		}
		if err := c.admin.SetPremium(ctx, token, args[1], premium); err != nil {
			return err
		}
		c.io.Printf("✓ Premium set to %t for %s\n", premium, args[1])
		return nil

	default:
		return fmt.Errorf("unknown admin subcommand: %s", args[0])
	}
}

func (c *Cli) renderAdminOverview(ctx context.Context, token string) error {
	overview, err := c.admin.LoadOverview(ctx, token)
	if err != nil {
		return err
	}

	c.renderUsers("Candidates", overview.Candidates)
	c.io.Println()
	c.renderUsers("Recruiters", overview.Recruiters)
	c.io.Println()
	c.renderUsers("Premium users", overview.PremiumUsers)
	c.io.Println()
	c.renderUsers("Locked accounts", overview.LockedUsers)
	c.io.Println()
	c.renderPremiumRequests(overview.PendingRequests)
	return nil
}
