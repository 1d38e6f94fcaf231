package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultVisibilityShowsEveryColumn(t *testing.T) {
	vis := DefaultVisibility()
	require.Len(t, vis, len(Columns))
	for _, f := range Columns {
		require.True(t, vis[f])
	}
}

func TestParseVisibility(t *testing.T) {
	vis := ParseVisibility([]string{"projectName", "status", "bogus"})

	require.True(t, vis[FieldProjectName])
	require.True(t, vis[FieldStatus])
	require.False(t, vis[FieldCustomer])
	_, ok := vis[Field("bogus")]
	require.False(t, ok)
}

func TestVisibleColumnsKeepDisplayOrder(t *testing.T) {
	vis := ParseVisibility([]string{"status", "projectName", "priority"})

	got := VisibleColumns(vis)

	// display order comes from Columns, not from the request order
	require.Equal(t, []Field{FieldProjectName, FieldPriority, FieldStatus}, got)
}

func TestVisibilityNeverChangesRecordSet(t *testing.T) {
	proposals := sampleProposals()

	full := DefaultView()
	narrow := DefaultView()
	narrow.Visibility = ParseVisibility([]string{"projectName"})

	a := Apply(proposals, full, admin)
	b := Apply(proposals, narrow, admin)

	require.Equal(t, a.Items, b.Items)
	require.Equal(t, a.TotalPages, b.TotalPages)
	require.Equal(t, a.TotalItems, b.TotalItems)
}

func TestFieldLabels(t *testing.T) {
	require.Equal(t, "Sales Director", FieldSalesDirector.Label())
	require.Equal(t, "Terminal Count", FieldTerminalCount.Label())
	require.True(t, FieldRemarks.Valid())
	require.False(t, Field("nope").Valid())
}
