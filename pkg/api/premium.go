package api

import "time"

// PremiumRequest mirrors the premium_requests document.
type PremiumRequest struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	UserEmail   string    `json:"userEmail"`
	UserName    string    `json:"userName"`
	Status      string    `json:"status"` // PENDING, APPROVED, REJECTED
	RequestedAt time.Time `json:"requestedAt"`
	ProcessedAt time.Time `json:"processedAt,omitempty"`
	ProcessedBy string    `json:"processedBy,omitempty"`
}

// PremiumStatusResponse is returned by GET /api/auth/profile/premium-request-status.
type PremiumStatusResponse struct {
	HasPendingRequest bool `json:"hasPendingRequest"`
}
