package table

import (
	"sort"
	"strings"

	"proposaldesk/internal/models"
)

// Compare orders a against b by the named field using the natural
// ordering of its type. Unknown fields compare equal.
func Compare(a, b models.Proposal, f Field) int {
	switch f {
	case FieldProjectName:
		return strings.Compare(a.ProjectName, b.ProjectName)
	case FieldPriority:
		return strings.Compare(string(a.Priority), string(b.Priority))
	case FieldCountry:
		return strings.Compare(a.Country, b.Country)
	case FieldBandwidth:
		return strings.Compare(a.Bandwidth, b.Bandwidth)
	case FieldGateway:
		return strings.Compare(a.Gateway, b.Gateway)
	case FieldTerminalCount:
		return compareInt(a.TerminalCount, b.TerminalCount)
	case FieldTerminalType:
		return strings.Compare(a.TerminalType, b.TerminalType)
	case FieldCustomer:
		return strings.Compare(a.Customer, b.Customer)
	case FieldSalesDirector:
		return strings.Compare(a.SalesDirector, b.SalesDirector)
	case FieldSubmissionDate:
		if a.SubmissionDate.Before(b.SubmissionDate) {
			return -1
		}
		if a.SubmissionDate.After(b.SubmissionDate) {
			return 1
		}
		return 0
	case FieldProposalLink:
		return strings.Compare(a.ProposalLink, b.ProposalLink)
	case FieldCommercialValue:
		return compareFloat(a.CommercialValue, b.CommercialValue)
	case FieldStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	case FieldRemarks:
		return strings.Compare(a.Remarks, b.Remarks)
	}
	return 0
}

// Sort orders proposals in place by field and direction. The sort is
// stable so equal keys keep their input order and pagination stays
// deterministic across re-renders.
func Sort(proposals []models.Proposal, f Field, dir SortDirection) {
	sort.SliceStable(proposals, func(i, j int) bool {
		c := Compare(proposals[i], proposals[j], f)
		if dir == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
