package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jobwire/jobwire/internal/client/jobs"
)

func (c *Cli) runJobs(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		return c.runJobsList(ctx)
	case "mine":
		return c.runJobsMine(ctx)
	case "create":
		return c.runJobsCreate(ctx)
	default:
		return fmt.Errorf("unknown jobs subcommand: %s. Use: list, mine, or create", sub)
	}
}

func (c *Cli) runJobsList(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	available, err := c.jobs.Available(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	c.renderJobs("Available jobs", available)
	return nil
}

func (c *Cli) runJobsMine(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	mine, err := c.jobs.Mine(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to list your jobs: %w", err)
	}

	c.renderJobs("My job postings", mine)
	return nil
}

func (c *Cli) runJobsCreate(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Post a Job ===")
	c.io.Println()

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	company, err := c.io.ReadInput("Company: ")
	if err != nil {
		return fmt.Errorf("failed to read company: %w", err)
	}
	description, err := c.io.ReadInput("Description: ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}
	requirements, err := c.io.ReadInput("Requirements (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read requirements: %w", err)
	}
	salaryInput, err := c.io.ReadInput("Salary (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read salary: %w", err)
	}

	var salaryValue float64
	if salaryInput != "" {
		salaryValue, err = strconv.ParseFloat(salaryInput, 64)
		if err != nil {
			return fmt.Errorf("salary must be a number: %w", err)
		}
	}

	c.io.Println()
	c.io.Println("Posting...")

	created, mine, err := c.jobs.Create(ctx, token, jobs.NewJob{
		Title:        title,
		CompanyName:  company,
		Description:  description,
		Requirements: requirements,
		Salary:       salaryValue,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Job posted: %s (%s)\n", created.Title, created.ID)
	if mine != nil {
		c.io.Println()
		c.renderJobs("My job postings", mine)
	}
	return nil
}

func (c *Cli) runApplications(ctx context.Context, args []string) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "received" {
		apps, err := c.jobs.ReceivedApplications(ctx, token)
		if err != nil {
			return fmt.Errorf("failed to list received applications: %w", err)
		}
		c.renderApplications("Received applications", apps)
		return nil
	}

	apps, err := c.jobs.MyApplications(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}
	c.renderApplications("My applications", apps)
	return nil
}
