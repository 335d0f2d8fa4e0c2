package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobwire/jobwire/pkg/api"
)

func TestNormalizeUser_PremiumLockedDrift(t *testing.T) {
	tests := []struct {
		name        string
		profile     api.UserProfile
		wantPremium bool
		wantLocked  bool
	}{
		{
			name:        "canonical spellings only",
			profile:     api.UserProfile{IsPremium: true, IsLocked: true},
			wantPremium: true,
			wantLocked:  true,
		},
		{
			name:        "legacy spellings only",
			profile:     api.UserProfile{Premium: true, Locked: true},
			wantPremium: true,
			wantLocked:  true,
		},
		{
			name:        "both spellings set",
			profile:     api.UserProfile{Premium: true, IsPremium: true, Locked: true, IsLocked: true},
			wantPremium: true,
			wantLocked:  true,
		},
		{
			name:        "neither set",
			profile:     api.UserProfile{},
			wantPremium: false,
			wantLocked:  false,
		},
		{
			name:        "mixed across flags",
			profile:     api.UserProfile{Premium: true, IsLocked: true},
			wantPremium: true,
			wantLocked:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NormalizeUser(tt.profile)
			assert.Equal(t, tt.wantPremium, u.IsPremium)
			assert.Equal(t, tt.wantLocked, u.IsLocked)
		})
	}
}

// Normalizing a profile that already carries only canonical spellings
// must be a no-op on the flags.
func TestNormalizeUser_Idempotent(t *testing.T) {
	first := NormalizeUser(api.UserProfile{Premium: true, Locked: true, Email: "r@x.com", Role: "RECRUITER"})

	again := NormalizeUser(api.UserProfile{
		IsPremium: first.IsPremium,
		IsLocked:  first.IsLocked,
		Email:     first.Email,
		Role:      string(first.Role),
	})

	assert.Equal(t, first.IsPremium, again.IsPremium)
	assert.Equal(t, first.IsLocked, again.IsLocked)
	assert.Equal(t, first.Email, again.Email)
	assert.Equal(t, first.Role, again.Role)
}

func TestNormalizeUser_IDShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "plain id", doc: `{"id":"abc123"}`, want: "abc123"},
		{name: "underscore id", doc: `{"_id":"abc123"}`, want: "abc123"},
		{name: "mongo oid", doc: `{"_id":{"$oid":"65f1c0ffee"}}`, want: "65f1c0ffee"},
		{name: "id wins over _id", doc: `{"id":"a","_id":"b"}`, want: "a"},
		{name: "no id", doc: `{"email":"a@b.com"}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p api.UserProfile
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &p))
			assert.Equal(t, tt.want, NormalizeUser(p).ID)
		})
	}
}

func TestUserRecord_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", UserRecord{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", UserRecord{FirstName: "Ada"}.FullName())
	assert.Equal(t, "Lovelace", UserRecord{LastName: "Lovelace"}.FullName())
	assert.Equal(t, "", UserRecord{}.FullName())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleCandidate.Valid())
	assert.True(t, RoleRecruiter.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("SUPERUSER").Valid())
	assert.False(t, Role("").Valid())
}
