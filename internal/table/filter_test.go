package table

import (
	"testing"
	"time"

	"proposaldesk/internal/models"

	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

var (
	admin   = models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}
	regular = models.User{ID: 2, Username: "bob", Role: models.RoleUser}
)

func sampleProposals() []models.Proposal {
	return []models.Proposal{
		{
			ID:              1,
			ProjectName:     "Global Satellite Network Expansion",
			Priority:        models.PriorityP1,
			Country:         "United States",
			Customer:        "TechCorp International",
			SalesDirector:   "Sarah Johnson",
			SubmissionDate:  date("2024-01-15"),
			CommercialValue: 2500000,
			Status:          models.StatusOngoing,
			UserID:          1,
		},
		{
			ID:              2,
			ProjectName:     "Maritime Connectivity Solution",
			Priority:        models.PriorityP2,
			Country:         "Singapore",
			Customer:        "Ocean Shipping Co",
			SalesDirector:   "Michael Chen",
			SubmissionDate:  date("2024-01-20"),
			CommercialValue: 1200000,
			Status:          models.StatusBlocked,
			UserID:          2,
		},
		{
			ID:              3,
			ProjectName:     "Rural Broadband Initiative",
			Priority:        models.PriorityP1,
			Country:         "Brazil",
			Customer:        "ConnectBR",
			SalesDirector:   "Ana Silva",
			SubmissionDate:  date("2024-01-10"),
			CommercialValue: 3000000,
			Status:          models.StatusClosed,
			UserID:          3,
		},
	}
}

func TestFilterStatusScenario(t *testing.T) {
	v := DefaultView()
	v.Status = "ongoing"

	got := Filter(sampleProposals(), v, admin)

	require.Len(t, got, 1)
	require.Equal(t, uint(1), got[0].ID)
}

func TestFilterIsSubsetOfInput(t *testing.T) {
	proposals := sampleProposals()
	views := []ViewState{
		DefaultView(),
		{Status: "blocked", Priority: FilterAll, Page: 1},
		{Status: FilterAll, Priority: "P1", Page: 1},
		{Status: FilterAll, Priority: FilterAll, Search: "connect", Page: 1},
		{Status: FilterAll, Priority: FilterAll, StartDate: date("2024-01-12"), EndDate: date("2024-01-18"), Page: 1},
	}

	ids := map[uint]bool{}
	for _, p := range proposals {
		ids[p.ID] = true
	}

	for _, v := range views {
		for _, p := range Filter(proposals, v, admin) {
			require.True(t, ids[p.ID])
			require.True(t, Matches(p, v, admin))
		}
	}
}

func TestOwnershipScoping(t *testing.T) {
	proposals := sampleProposals() // owners 1, 2, 3

	got := Filter(proposals, DefaultView(), regular)

	require.Len(t, got, 1)
	require.Equal(t, regular.ID, got[0].UserID)

	// admins see everything
	require.Len(t, Filter(proposals, DefaultView(), admin), 3)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	v := DefaultView()
	v.Search = "MARITIME"

	got := Filter(sampleProposals(), v, admin)

	require.Len(t, got, 1)
	require.Equal(t, uint(2), got[0].ID)
}

func TestSearchMatchesCustomerAndDirector(t *testing.T) {
	v := DefaultView()
	v.Search = "ocean shipping"
	require.Len(t, Filter(sampleProposals(), v, admin), 1)

	v.Search = "ana silva"
	require.Len(t, Filter(sampleProposals(), v, admin), 1)

	v.Search = "no such thing"
	require.Empty(t, Filter(sampleProposals(), v, admin))
}

func TestDateRangeIsInclusive(t *testing.T) {
	v := DefaultView()
	v.StartDate = date("2024-01-10")
	v.EndDate = date("2024-01-15")

	got := Filter(sampleProposals(), v, admin)

	require.Len(t, got, 2) // Jan 10 and Jan 15, both on the bounds
	for _, p := range got {
		require.False(t, p.SubmissionDate.Before(v.StartDate))
		require.False(t, p.SubmissionDate.After(v.EndDate))
	}
}

func TestDateBoundsIgnoreTimeOfDay(t *testing.T) {
	p := models.Proposal{SubmissionDate: date("2024-01-15").Add(18 * time.Hour), UserID: 1}

	v := DefaultView()
	v.EndDate = date("2024-01-15")

	require.True(t, Matches(p, v, admin))
}

func TestScopeIgnoresFilters(t *testing.T) {
	got := Scope(sampleProposals(), regular)
	require.Len(t, got, 1)
	require.Equal(t, regular.ID, got[0].UserID)

	require.Len(t, Scope(sampleProposals(), admin), 3)
}
