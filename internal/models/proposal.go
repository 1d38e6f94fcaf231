package models

import "time"

type ProposalStatus string
type ProposalPriority string

const (
	StatusOngoing ProposalStatus = "ongoing"
	StatusBlocked ProposalStatus = "blocked"
	StatusClosed  ProposalStatus = "closed"

	PriorityP1 ProposalPriority = "P1"
	PriorityP2 ProposalPriority = "P2"
	PriorityP3 ProposalPriority = "P3"
)

type Proposal struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	ProjectName     string           `gorm:"size:255;not null" json:"projectName"`
	Priority        ProposalPriority `gorm:"type:varchar(50)" json:"priority"`
	Country         string           `gorm:"size:100" json:"country"`
	Bandwidth       string           `gorm:"size:100" json:"bandwidth"`
	Gateway         string           `gorm:"size:100" json:"gateway"`
	TerminalCount   int              `json:"terminalCount"`
	TerminalType    string           `gorm:"size:100" json:"terminalType"`
	Customer        string           `gorm:"size:255" json:"customer"`
	SalesDirector   string           `gorm:"size:255" json:"salesDirector"`
	SubmissionDate  time.Time        `gorm:"type:date" json:"submissionDate"`
	ProposalLink    string           `gorm:"size:255" json:"proposalLink"`
	CommercialValue float64          `gorm:"type:decimal(15,2)" json:"commercialValue"`
	Status          ProposalStatus   `gorm:"type:varchar(50)" json:"status"`
	Remarks         string           `gorm:"type:text" json:"remarks"`

	UserID uint `json:"userId"` // owning user

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
