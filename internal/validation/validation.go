package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks the address shape before it goes on the wire.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email %q is not a valid address", email)
	}
	return nil
}

// ValidatePassword enforces the portal's minimum length. Strength
// scoring beyond length is advisory UI, not a gate.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLength)
	}
	return nil
}

// ValidateSignupRole restricts self-registration to the two public
// roles. Admin accounts are provisioned out-of-band.
func ValidateSignupRole(role string) error {
	switch role {
	case "CANDIDATE", "RECRUITER":
		return nil
	default:
		return fmt.Errorf("role must be CANDIDATE or RECRUITER")
	}
}
