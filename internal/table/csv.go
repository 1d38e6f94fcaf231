package table

import (
	"encoding/csv"
	"io"
	"strconv"

	"proposaldesk/internal/models"
)

// exportColumns is the fixed export layout. It ignores column
// visibility and leaves out id and the proposal link.
var exportColumns = []Field{
	FieldProjectName,
	FieldPriority,
	FieldCountry,
	FieldBandwidth,
	FieldGateway,
	FieldTerminalCount,
	FieldTerminalType,
	FieldCustomer,
	FieldSalesDirector,
	FieldSubmissionDate,
	FieldCommercialValue,
	FieldStatus,
	FieldRemarks,
}

// WriteCSV writes a header row and one row per proposal. Embedded
// quotes, commas and newlines are escaped per RFC 4180.
func WriteCSV(w io.Writer, proposals []models.Proposal) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(exportColumns))
	for i, f := range exportColumns {
		header[i] = f.Label()
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(exportColumns))
	for _, p := range proposals {
		for i, f := range exportColumns {
			row[i] = cell(p, f)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func cell(p models.Proposal, f Field) string {
	switch f {
	case FieldProjectName:
		return p.ProjectName
	case FieldPriority:
		return string(p.Priority)
	case FieldCountry:
		return p.Country
	case FieldBandwidth:
		return p.Bandwidth
	case FieldGateway:
		return p.Gateway
	case FieldTerminalCount:
		return strconv.Itoa(p.TerminalCount)
	case FieldTerminalType:
		return p.TerminalType
	case FieldCustomer:
		return p.Customer
	case FieldSalesDirector:
		return p.SalesDirector
	case FieldSubmissionDate:
		return p.SubmissionDate.Format("2006-01-02")
	case FieldProposalLink:
		return p.ProposalLink
	case FieldCommercialValue:
		return strconv.FormatFloat(p.CommercialValue, 'f', -1, 64)
	case FieldStatus:
		return string(p.Status)
	case FieldRemarks:
		return p.Remarks
	}
	return ""
}
