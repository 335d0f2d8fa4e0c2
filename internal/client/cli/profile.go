package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jobwire/jobwire/internal/client/profile"
	"github.com/jobwire/jobwire/internal/models"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		return c.runProfileShow(ctx)
	case "edit":
		return c.runProfileEdit(ctx)
	case "picture":
		return c.runProfilePicture(ctx)
	default:
		return fmt.Errorf("unknown profile subcommand: %s. Use: show, edit, or picture", sub)
	}
}

func (c *Cli) runProfileShow(ctx context.Context) error {
	_, user, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Profile ===")
	c.io.Println()
	c.renderProfile(*user)
	return nil
}

func (c *Cli) runProfileEdit(ctx context.Context) error {
	token, user, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Edit Profile ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	// The captured baseline is what dirty checking compares against;
	// an untouched form never hits the network.
	baseline := profileFields(*user)
	snap := profile.Capture(baseline)

	current := make(map[string]string, len(baseline))
	for _, field := range fieldOrder(*user) {
		value, err := c.promptDefault(field.label, baseline[field.key])
		if err != nil {
			return err
		}
		current[field.key] = value
	}

	var resumePath string
	if user.Role == models.RoleCandidate {
		resumePath, err = c.io.ReadInput("Resume file (blank to skip): ")
		if err != nil {
			return fmt.Errorf("failed to read resume path: %w", err)
		}
	}
	fileSelected := resumePath != ""

	if !profile.IsDirty(current, snap, fileSelected) {
		c.io.Println()
		c.io.Println("No changes to save.")
		return nil
	}

	var resume *profile.ResumeUpload
	if fileSelected {
		file, err := os.Open(resumePath)
		if err != nil {
			return fmt.Errorf("failed to open resume file: %w", err)
		}
		defer func() { _ = file.Close() }()
		resume = &profile.ResumeUpload{
			FileName: filepath.Base(resumePath),
			File:     file,
		}
	}

	edit := profile.Edit{
		FirstName:       current["firstName"],
		LastName:        current["lastName"],
		CountryCode:     current["countryCode"],
		MobileNumber:    current["mobileNumber"],
		CurrentCompany:  current["currentCompany"],
		ExperienceYears: current["experienceYears"],
		Education:       current["education"],
		Skills:          current["skills"],
		PastExperience:  current["pastExperience"],
	}

	c.io.Println()
	c.io.Println("Saving...")

	updated, err := c.editor.Save(ctx, token, *user, edit, resume)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Profile saved.")
	c.io.Println()
	c.renderProfile(*updated)
	return nil
}

func (c *Cli) runProfilePicture(ctx context.Context) error {
	token, _, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	path, err := c.io.ReadInput("Picture file: ")
	if err != nil {
		return fmt.Errorf("failed to read picture path: %w", err)
	}
	if path == "" {
		return fmt.Errorf("picture file cannot be empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open picture file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := c.editor.SavePicture(ctx, token, filepath.Base(path), file); err != nil {
		return err
	}

	c.io.Println("✓ Picture uploaded.")
	return nil
}

func (c *Cli) runResume(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "delete" {
		return fmt.Errorf("usage: jobwire resume delete")
	}

	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	if _, err := c.editor.RemoveResume(ctx, token); err != nil {
		return err
	}

	c.io.Println("✓ Resume removed.")
	return nil
}

type formField struct {
	key   string
	label string
}

func profileFields(user models.UserRecord) map[string]string {
	fields := map[string]string{
		"firstName":      user.FirstName,
		"lastName":       user.LastName,
		"countryCode":    user.CountryCode,
		"mobileNumber":   user.MobileNumber,
		"currentCompany": user.CurrentCompany,
	}
	if user.Role == models.RoleCandidate {
		fields["experienceYears"] = user.ExperienceYears
		fields["education"] = user.Education
		fields["skills"] = user.Skills
		fields["pastExperience"] = user.PastExperience
	}
	return fields
}

func fieldOrder(user models.UserRecord) []formField {
	order := []formField{
		{"firstName", "First name"},
		{"lastName", "Last name"},
		{"countryCode", "Country code"},
		{"mobileNumber", "Mobile number"},
		{"currentCompany", "Current company"},
	}
	if user.Role == models.RoleCandidate {
		order = append(order,
			formField{"experienceYears", "Years of experience"},
			formField{"education", "Education"},
			formField{"skills", "Skills"},
			formField{"pastExperience", "Past experience"},
		)
	}
	return order
}
