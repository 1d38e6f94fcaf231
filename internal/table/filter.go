package table

import (
	"strings"
	"time"

	"proposaldesk/internal/models"
)

// VisibleTo reports whether u is allowed to see p. Admins see every
// proposal, everyone else only their own.
func VisibleTo(p models.Proposal, u models.User) bool {
	return u.Role == models.RoleAdmin || p.UserID == u.ID
}

// Matches reports whether p satisfies every active condition of v for
// the given viewer. All conditions combine with AND.
func Matches(p models.Proposal, v ViewState, viewer models.User) bool {
	if !VisibleTo(p, viewer) {
		return false
	}

	if search := strings.TrimSpace(v.Search); search != "" {
		needle := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(p.ProjectName), needle) &&
			!strings.Contains(strings.ToLower(p.Customer), needle) &&
			!strings.Contains(strings.ToLower(p.SalesDirector), needle) {
			return false
		}
	}

	if v.Status != "" && v.Status != FilterAll && string(p.Status) != v.Status {
		return false
	}
	if v.Priority != "" && v.Priority != FilterAll && string(p.Priority) != v.Priority {
		return false
	}

	// date bounds are inclusive and compared as calendar dates
	submitted := dateOnly(p.SubmissionDate)
	if !v.StartDate.IsZero() && submitted.Before(dateOnly(v.StartDate)) {
		return false
	}
	if !v.EndDate.IsZero() && submitted.After(dateOnly(v.EndDate)) {
		return false
	}

	return true
}

// Filter returns the proposals matching v in input order.
func Filter(proposals []models.Proposal, v ViewState, viewer models.User) []models.Proposal {
	out := []models.Proposal{}
	for _, p := range proposals {
		if Matches(p, v, viewer) {
			out = append(out, p)
		}
	}
	return out
}

// Scope returns the proposals the viewer may see, ignoring filters.
// Export and user-facing totals run over this set.
func Scope(proposals []models.Proposal, viewer models.User) []models.Proposal {
	out := []models.Proposal{}
	for _, p := range proposals {
		if VisibleTo(p, viewer) {
			out = append(out, p)
		}
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
