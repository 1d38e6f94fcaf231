package table

// Field identifies one displayable proposal attribute. Column order is
// fixed by the Columns slice; it never depends on map iteration.
type Field string

const (
	FieldProjectName     Field = "projectName"
	FieldPriority        Field = "priority"
	FieldCountry         Field = "country"
	FieldBandwidth       Field = "bandwidth"
	FieldGateway         Field = "gateway"
	FieldTerminalCount   Field = "terminalCount"
	FieldTerminalType    Field = "terminalType"
	FieldCustomer        Field = "customer"
	FieldSalesDirector   Field = "salesDirector"
	FieldSubmissionDate  Field = "submissionDate"
	FieldProposalLink    Field = "proposalLink"
	FieldCommercialValue Field = "commercialValue"
	FieldStatus          Field = "status"
	FieldRemarks         Field = "remarks"
)

// Columns lists every displayable field in display order.
var Columns = []Field{
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
	FieldProposalLink,
	FieldCommercialValue,
	FieldStatus,
	FieldRemarks,
}

var labels = map[Field]string{
	FieldProjectName:     "Project Name",
	FieldPriority:        "Priority",
	FieldCountry:         "Country",
	FieldBandwidth:       "Bandwidth",
	FieldGateway:         "Gateway",
	FieldTerminalCount:   "Terminal Count",
	FieldTerminalType:    "Terminal Type",
	FieldCustomer:        "Customer",
	FieldSalesDirector:   "Sales Director",
	FieldSubmissionDate:  "Submission Date",
	FieldProposalLink:    "Proposal Link",
	FieldCommercialValue: "Commercial Value",
	FieldStatus:          "Status",
	FieldRemarks:         "Remarks",
}

// Label returns the human-readable column header for f.
func (f Field) Label() string {
	return labels[f]
}

// Valid reports whether f names a known proposal field.
func (f Field) Valid() bool {
	_, ok := labels[f]
	return ok
}

// DefaultVisibility shows every column.
func DefaultVisibility() map[Field]bool {
	vis := make(map[Field]bool, len(Columns))
	for _, f := range Columns {
		vis[f] = true
	}
	return vis
}

// ParseVisibility builds a visibility set from a list of field names.
// Unknown names are dropped. Visibility is presentation-only state: it
// affects which columns are rendered, never which records are computed.
func ParseVisibility(names []string) map[Field]bool {
	vis := make(map[Field]bool, len(Columns))
	for _, f := range Columns {
		vis[f] = false
	}
	for _, name := range names {
		f := Field(name)
		if f.Valid() {
			vis[f] = true
		}
	}
	return vis
}

// VisibleColumns returns the visible fields in display order.
func VisibleColumns(vis map[Field]bool) []Field {
	out := make([]Field, 0, len(Columns))
	for _, f := range Columns {
		if vis[f] {
			out = append(out, f)
		}
	}
	return out
}
