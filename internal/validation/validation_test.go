package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "a@b.com", wantErr: false},
		{name: "valid with plus", email: "a+tag@b.co.uk", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "whitespace only", email: "   ", wantErr: true},
		{name: "no at", email: "abc.com", wantErr: true},
		{name: "no domain dot", email: "a@bcom", wantErr: true},
		{name: "double at", email: "a@@b.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret"))
	assert.NoError(t, ValidatePassword("correct horse battery staple"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 80)))
}

func TestValidateSignupRole(t *testing.T) {
	assert.NoError(t, ValidateSignupRole("CANDIDATE"))
	assert.NoError(t, ValidateSignupRole("RECRUITER"))
	assert.Error(t, ValidateSignupRole("ADMIN"), "admin accounts are not self-registered")
	assert.Error(t, ValidateSignupRole("candidate"))
	assert.Error(t, ValidateSignupRole(""))
}
