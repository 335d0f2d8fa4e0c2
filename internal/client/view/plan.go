package view

import (
	"slices"

	"github.com/jobwire/jobwire/internal/models"
)

// Panel identifies a UI surface. The rendering layer decides what a
// panel looks like; this package only decides which ones exist.
type Panel string

const (
	PanelAdmin             Panel = "admin-panel"
	PanelLockedAccounts    Panel = "locked-accounts-panel"
	PanelRecruiterJobTools Panel = "recruiter-job-tools"
	PanelCandidateBrowser  Panel = "candidate-browser"
	PanelJobBrowser        Panel = "candidate-job-browser"
	PanelProfileEditor     Panel = "profile-editor"
)

// FetchIntent names a data load the renderer must trigger for its
// panels. Intents are declarative so any rendering layer (terminal,
// web, native) can interpret them.
type FetchIntent string

const (
	FetchAllUsers               FetchIntent = "fetch-all-users"
	FetchPendingPremiumRequests FetchIntent = "fetch-pending-premium-requests"
	FetchMyJobs                 FetchIntent = "fetch-my-jobs"
	FetchReceivedApplications   FetchIntent = "fetch-received-applications"
	FetchCandidates             FetchIntent = "fetch-candidates"
	FetchAvailableJobs          FetchIntent = "fetch-available-jobs"
	FetchMyApplications         FetchIntent = "fetch-my-applications"
)

// ViewPlan is the declarative view state derived from a user record.
// It is never stored; callers recompute it after every synchronization.
type ViewPlan struct {
	Panels  []Panel
	Fetches []FetchIntent
}

// HasPanel reports whether the plan includes the panel.
func (p ViewPlan) HasPanel(panel Panel) bool {
	return slices.Contains(p.Panels, panel)
}

// HasFetch reports whether the plan includes the fetch intent.
func (p ViewPlan) HasFetch(intent FetchIntent) bool {
	return slices.Contains(p.Fetches, intent)
}

// Compose maps a normalized user record to its view plan. Pure: the
// same record always yields the same plan. Role is the sole
// discriminant, with the premium flag gating recruiter candidate
// browsing. An unknown or missing role falls open to the candidate
// plan, the least-privileged UI.
func Compose(user models.UserRecord) ViewPlan {
	switch user.Role {
	case models.RoleAdmin:
		return ViewPlan{
			Panels:  []Panel{PanelAdmin, PanelLockedAccounts},
			Fetches: []FetchIntent{FetchAllUsers, FetchPendingPremiumRequests},
		}
	case models.RoleRecruiter:
		plan := ViewPlan{
			Panels:  []Panel{PanelRecruiterJobTools},
			Fetches: []FetchIntent{FetchMyJobs, FetchReceivedApplications},
		}
		if user.IsPremium {
			plan.Panels = append(plan.Panels, PanelCandidateBrowser)
			plan.Fetches = append(plan.Fetches, FetchCandidates)
		}
		return plan
	default:
		return ViewPlan{
			Panels:  []Panel{PanelJobBrowser, PanelProfileEditor},
			Fetches: []FetchIntent{FetchAvailableJobs, FetchMyApplications},
		}
	}
}
