package table

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"proposaldesk/internal/models"

	"github.com/stretchr/testify/require"
)

func TestWriteCSVHeaderAndRowCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleProposals()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 4) // header + one row per record
	require.Equal(t, []string{
		"Project Name", "Priority", "Country", "Bandwidth", "Gateway",
		"Terminal Count", "Terminal Type", "Customer", "Sales Director",
		"Submission Date", "Commercial Value", "Status", "Remarks",
	}, records[0])
}

func TestWriteCSVFormatsValues(t *testing.T) {
	p := models.Proposal{
		ProjectName:     "Desert Connectivity Project",
		Priority:        models.PriorityP2,
		Country:         "United Arab Emirates",
		TerminalCount:   1000,
		SubmissionDate:  date("2024-02-15"),
		CommercialValue: 2800000,
		Status:          models.StatusOngoing,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []models.Proposal{p}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	row := records[1]

	require.Equal(t, "Desert Connectivity Project", row[0])
	require.Equal(t, "1000", row[5])
	require.Equal(t, "2024-02-15", row[9])
	require.Equal(t, "2800000", row[10])
	require.Equal(t, "ongoing", row[11])
}

func TestWriteCSVEscapesEmbeddedQuotesAndCommas(t *testing.T) {
	p := models.Proposal{
		ProjectName: `Backhaul "Phase 2", Stage 1`,
		Remarks:     "line one\nline two",
		Status:      models.StatusOngoing,
		Priority:    models.PriorityP3,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []models.Proposal{p}))
	raw := buf.String()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Equal(t, `Backhaul "Phase 2", Stage 1`, records[1][0])
	require.Equal(t, "line one\nline two", records[1][12])

	require.True(t, strings.Contains(raw, `"Backhaul ""Phase 2"", Stage 1"`))
}

func TestWriteCSVIgnoresVisibility(t *testing.T) {
	// export always carries the full fixed column set
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleProposals()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	for _, rec := range records {
		require.Len(t, rec, 13)
	}
}
