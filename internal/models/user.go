package models

import (
	"encoding/json"

	"github.com/jobwire/jobwire/pkg/api"
)

// Role is the portal's access role.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleRecruiter || r == RoleAdmin
}

// UserRecord is the normalized, client-side view of a server profile.
// It is produced exclusively by NormalizeUser; no other code reads the
// raw wire spellings.
type UserRecord struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Role              Role   `json:"role"`
	IsPremium         bool   `json:"isPremium"`
	IsLocked          bool   `json:"isLocked"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	ResumeURL         string `json:"resumeUrl,omitempty"`
	CountryCode       string `json:"countryCode,omitempty"`
	MobileNumber      string `json:"mobileNumber,omitempty"`
	CurrentCompany    string `json:"currentCompany,omitempty"`
	ExperienceYears   string `json:"experienceYears,omitempty"`
	Education         string `json:"education,omitempty"`
	Skills            string `json:"skills,omitempty"`
	PastExperience    string `json:"pastExperience,omitempty"`
}

// FullName returns "First Last" with whichever parts are present.
func (u UserRecord) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// NormalizeUser flattens a raw wire profile into a UserRecord.
// The auth and user services drift on field spellings, so the premium
// and locked flags are the OR of both candidates. The operation is
// idempotent: a profile that already carries only the canonical
// spellings maps to the same record.
func NormalizeUser(p api.UserProfile) UserRecord {
	return UserRecord{
		ID:                flattenID(p.ID, p.MongoID),
		Email:             p.Email,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Role:              Role(p.Role),
		IsPremium:         p.Premium || p.IsPremium,
		IsLocked:          p.Locked || p.IsLocked,
		ProfilePictureURL: p.ProfilePictureURL,
		ResumeURL:         p.ResumeURL,
		CountryCode:       p.CountryCode,
		MobileNumber:      p.MobileNumber,
		CurrentCompany:    p.CurrentCompany,
		ExperienceYears:   p.ExperienceYears,
		Education:         p.Education,
		Skills:            p.Skills,
		PastExperience:    p.PastExperience,
	}
}

// flattenID extracts a string id from whichever shape the backend used:
// a plain JSON string, a Mongo extended-JSON {"$oid": "..."} object, or
// the "_id" field carrying either of those. The "id" spelling wins when
// both are present.
func flattenID(candidates ...json.RawMessage) string {
	for _, raw := range candidates {
		if id := idFromRaw(raw); id != "" {
			return id
		}
	}
	return ""
}

func idFromRaw(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var oid struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(raw, &oid); err == nil {
		return oid.OID
	}
	return ""
}
