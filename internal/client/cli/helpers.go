package cli

import (
	"fmt"

	"github.com/jobwire/jobwire/internal/models"
	"github.com/jobwire/jobwire/pkg/api"
)

func normalizeAll(raw []api.UserProfile) []models.UserRecord {
	users := make([]models.UserRecord, 0, len(raw))
	for _, p := range raw {
		users = append(users, models.NormalizeUser(p))
	}
	return users
}

// promptDefault asks for a value, keeping the current one on empty
// input.
func (c *Cli) promptDefault(label, current string) (string, error) {
	input, err := c.io.ReadInput(fmt.Sprintf("%s [%s]: ", label, current))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	if input == "" {
		return current, nil
	}
	return input, nil
}
