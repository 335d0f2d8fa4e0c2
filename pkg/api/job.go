package api

import "time"

// Job mirrors the job-service document.
type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	CompanyName    string    `json:"companyName"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	Salary         float64   `json:"salary"`
	RecruiterEmail string    `json:"recruiterEmail"`
	CreatedAt      time.Time `json:"createdAt"`
	IsOpen         bool      `json:"isOpen"`
}

// CreateJobRequest is the body of POST /api/job/create.
type CreateJobRequest struct {
	Title        string  `json:"title"`
	CompanyName  string  `json:"companyName"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
	Salary       float64 `json:"salary"`
}

// ApplyRequest is the body of POST /api/job/{id}/apply.
// ResumeSource selects between the resume already stored on the profile
// ("profile") and a fresh upload ("upload").
type ApplyRequest struct {
	ResumeSource string `json:"resumeSource"`
	ResumeURL    string `json:"resumeUrl,omitempty"`
}

// JobApplication mirrors the job_applications document.
type JobApplication struct {
	ID             string    `json:"id"`
	JobID          string    `json:"jobId"`
	CandidateEmail string    `json:"candidateEmail"`
	ResumeURL      string    `json:"resumeUrl,omitempty"`
	AISummary      string    `json:"aiSummary,omitempty"`
	AIScore        int       `json:"aiScore,omitempty"`
	Status         string    `json:"status"` // APPLIED, REVIEWED, REJECTED, ACCEPTED
	AppliedAt      time.Time `json:"appliedAt"`
}
