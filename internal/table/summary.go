package table

import "proposaldesk/internal/models"

// StatusCounts is one ongoing/blocked/closed breakdown.
type StatusCounts struct {
	Ongoing int `json:"ongoing"`
	Blocked int `json:"blocked"`
	Closed  int `json:"closed"`
}

// Summary holds the aggregate views the dashboard renders: totals plus
// per-status, per-priority, per-country and per-director counts.
type Summary struct {
	TotalProposals int                     `json:"totalProposals"`
	TotalValue     float64                 `json:"totalValue"`
	ByStatus       map[string]int          `json:"byStatus"`
	ByPriority     map[string]int          `json:"byPriority"`
	ByCountry      map[string]StatusCounts `json:"byCountry"`
	ByDirector     map[string]StatusCounts `json:"byDirector"`
}

// Summarize computes the aggregates over proposals. Pure; the caller
// decides whether the input is filtered or the full scope.
func Summarize(proposals []models.Proposal) Summary {
	s := Summary{
		TotalProposals: len(proposals),
		ByStatus:       map[string]int{},
		ByPriority:     map[string]int{},
		ByCountry:      map[string]StatusCounts{},
		ByDirector:     map[string]StatusCounts{},
	}

	for _, p := range proposals {
		s.TotalValue += p.CommercialValue
		s.ByStatus[string(p.Status)]++
		s.ByPriority[string(p.Priority)]++
		s.ByCountry[p.Country] = bump(s.ByCountry[p.Country], p.Status)
		s.ByDirector[p.SalesDirector] = bump(s.ByDirector[p.SalesDirector], p.Status)
	}

	return s
}

func bump(c StatusCounts, status models.ProposalStatus) StatusCounts {
	switch status {
	case models.StatusOngoing:
		c.Ongoing++
	case models.StatusBlocked:
		c.Blocked++
	case models.StatusClosed:
		c.Closed++
	}
	return c
}
