package table

import (
	"time"

	"proposaldesk/internal/models"
)

// PageSize is the fixed number of rows per table page.
const PageSize = 10

// FilterAll is the sentinel value matching any status or priority.
const FilterAll = "all"

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ViewState is the per-request table configuration: free-text search,
// filters, sort, page index and column visibility. A zero date bound
// means unbounded.
type ViewState struct {
	Search     string
	Status     string
	Priority   string
	StartDate  time.Time
	EndDate    time.Time
	SortField  Field
	SortDir    SortDirection
	Page       int
	Visibility map[Field]bool
}

func DefaultView() ViewState {
	return ViewState{
		Status:     FilterAll,
		Priority:   FilterAll,
		SortField:  FieldSubmissionDate,
		SortDir:    SortDesc,
		Page:       1,
		Visibility: DefaultVisibility(),
	}
}

// Apply derives the visible page for viewer from the full collection:
// filter, stable sort, then paginate. The input slice is not modified.
func Apply(proposals []models.Proposal, v ViewState, viewer models.User) Page {
	filtered := Filter(proposals, v, viewer)
	Sort(filtered, v.SortField, v.SortDir)
	return Paginate(filtered, v.Page)
}
