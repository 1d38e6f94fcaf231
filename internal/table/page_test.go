package table

import (
	"fmt"
	"testing"

	"proposaldesk/internal/models"

	"github.com/stretchr/testify/require"
)

func numbered(n int) []models.Proposal {
	proposals := make([]models.Proposal, n)
	for i := range proposals {
		proposals[i] = models.Proposal{ID: uint(i + 1), ProjectName: fmt.Sprintf("Project %d", i+1)}
	}
	return proposals
}

func TestPaginateTwentyFiveRecords(t *testing.T) {
	proposals := numbered(25)

	p1 := Paginate(proposals, 1)
	require.Equal(t, 3, p1.TotalPages)
	require.Len(t, p1.Items, 10)
	require.Equal(t, uint(1), p1.Items[0].ID)

	p3 := Paginate(proposals, 3)
	require.Len(t, p3.Items, 5)
	require.Equal(t, uint(21), p3.Items[0].ID)
	require.Equal(t, uint(25), p3.Items[4].ID)
}

func TestPaginateClampsOutOfRangePage(t *testing.T) {
	proposals := numbered(12)

	// a shrunken result set must re-clamp to the last valid page
	p := Paginate(proposals, 9)
	require.Equal(t, 2, p.Number)
	require.Len(t, p.Items, 2)

	p = Paginate(proposals, 0)
	require.Equal(t, 1, p.Number)
	require.Len(t, p.Items, 10)

	p = Paginate(proposals, -3)
	require.Equal(t, 1, p.Number)
}

func TestPaginateEmptyCollection(t *testing.T) {
	p := Paginate(nil, 5)
	require.Equal(t, 1, p.Number)
	require.Equal(t, 1, p.TotalPages)
	require.Empty(t, p.Items)
	require.Zero(t, p.TotalItems)
}

func TestPagesConcatenateToFullSequence(t *testing.T) {
	proposals := numbered(37)

	var got []uint
	total := Paginate(proposals, 1).TotalPages
	for page := 1; page <= total; page++ {
		for _, p := range Paginate(proposals, page).Items {
			got = append(got, p.ID)
		}
	}

	require.Len(t, got, 37)
	for i, id := range got {
		require.Equal(t, uint(i+1), id)
	}
}

func TestApplyFiltersSortsAndPaginates(t *testing.T) {
	proposals := sampleProposals()

	v := DefaultView()
	v.SortField = FieldCommercialValue
	v.SortDir = SortDesc

	page := Apply(proposals, v, admin)

	require.Equal(t, 1, page.TotalPages)
	require.Equal(t, 3, page.TotalItems)
	require.Equal(t, float64(3000000), page.Items[0].CommercialValue)
	require.Equal(t, float64(1200000), page.Items[2].CommercialValue)
}
