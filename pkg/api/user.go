package api

import "encoding/json"

// UserProfile is the raw profile document as the backend serializes it.
// The auth and user services disagree on several spellings: premium may
// arrive as "premium" or "isPremium", locked as "locked" or "isLocked",
// and the id as "id", "_id" or a Mongo extended-JSON object. Nothing
// outside models.NormalizeUser may read these raw fields.
type UserProfile struct {
	ID                json.RawMessage `json:"id,omitempty"`
	MongoID           json.RawMessage `json:"_id,omitempty"`
	Email             string          `json:"email"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	Role              string          `json:"role"`
	Premium           bool            `json:"premium,omitempty"`
	IsPremium         bool            `json:"isPremium,omitempty"`
	Locked            bool            `json:"locked,omitempty"`
	IsLocked          bool            `json:"isLocked,omitempty"`
	ProfilePictureURL string          `json:"profilePictureUrl,omitempty"`
	ResumeURL         string          `json:"resumeUrl,omitempty"`
	CountryCode       string          `json:"countryCode,omitempty"`
	MobileNumber      string          `json:"mobileNumber,omitempty"`
	CurrentCompany    string          `json:"currentCompany,omitempty"`
	ExperienceYears   string          `json:"experienceYears,omitempty"`
	Education         string          `json:"education,omitempty"`
	Skills            string          `json:"skills,omitempty"`
	PastExperience    string          `json:"pastExperience,omitempty"`
}

// UpdateProfileRequest is the body of PUT /api/auth/profile.
// Candidate-only fields are pointers so recruiter updates omit them
// entirely instead of blanking server-side values.
type UpdateProfileRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	CountryCode     string  `json:"countryCode"`
	MobileNumber    string  `json:"mobileNumber"`
	CurrentCompany  string  `json:"currentCompany"`
	ExperienceYears *string `json:"experienceYears,omitempty"`
	Education       *string `json:"education,omitempty"`
	Skills          *string `json:"skills,omitempty"`
	PastExperience  *string `json:"pastExperience,omitempty"`
}

// UploadResponse is returned by the resume and picture upload endpoints.
type UploadResponse struct {
	FileName string `json:"fileName"`
	Message  string `json:"message,omitempty"`
}
