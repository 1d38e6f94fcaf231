package table

import "proposaldesk/internal/models"

// Page is one slice of the filtered and sorted collection plus the
// numbers the client needs to render navigation.
type Page struct {
	Items      []models.Proposal `json:"items"`
	Number     int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	TotalItems int               `json:"totalItems"`
}

// Paginate slices out the requested 1-based page. TotalPages is at
// least 1, and an out-of-range request is clamped to the nearest valid
// page rather than returning an empty slice (a filter change can shrink
// the result set under the current page).
func Paginate(proposals []models.Proposal, page int) Page {
	totalPages := (len(proposals) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(proposals) {
		start = len(proposals)
	}
	if end > len(proposals) {
		end = len(proposals)
	}

	return Page{
		Items:      proposals[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: len(proposals),
	}
}
