package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"proposaldesk/internal/metrics"
	"proposaldesk/internal/models"
	"proposaldesk/internal/repository"
	"proposaldesk/internal/table"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// parseViewState reads the table configuration from query parameters.
// Anything missing or malformed falls back to the default view.
func parseViewState(c *gin.Context) table.ViewState {
	v := table.DefaultView()

	v.Search = c.Query("search")
	if s := c.Query("status"); s != "" {
		v.Status = s
	}
	if p := c.Query("priority"); p != "" {
		v.Priority = p
	}
	if d, err := time.Parse(dateLayout, c.Query("from")); err == nil {
		v.StartDate = d
	}
	if d, err := time.Parse(dateLayout, c.Query("to")); err == nil {
		v.EndDate = d
	}
	if f := table.Field(c.Query("sort")); f.Valid() {
		v.SortField = f
	}
	switch c.Query("dir") {
	case "asc":
		v.SortDir = table.SortAsc
	case "desc":
		v.SortDir = table.SortDesc
	}
	if n, err := strconv.Atoi(c.Query("page")); err == nil {
		v.Page = n
	}
	if cols := c.Query("cols"); cols != "" {
		v.Visibility = table.ParseVisibility(strings.Split(cols, ","))
	}

	return v
}

func (h *Handler) ListProposals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	proposals, err := h.store.ListProposals(c.Request.Context())
	if err != nil {
		log.Printf("failed to list proposals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load proposals"})
		return
	}

	view := parseViewState(c)
	page := table.Apply(proposals, view, user)
	metrics.ProposalReads.Inc()

	c.JSON(http.StatusOK, gin.H{
		"proposals":  page.Items,
		"page":       page.Number,
		"totalPages": page.TotalPages,
		"totalItems": page.TotalItems,
		"columns":    table.VisibleColumns(view.Visibility),
	})
}

func (h *Handler) ProposalSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	proposals, err := h.store.ListProposals(c.Request.Context())
	if err != nil {
		log.Printf("failed to list proposals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load proposals"})
		return
	}

	// summary reflects the active filters but never pagination
	view := parseViewState(c)
	filtered := table.Filter(proposals, view, user)
	metrics.ProposalReads.Inc()

	c.JSON(http.StatusOK, table.Summarize(filtered))
}

// ExportProposalsCSV streams the viewer's full collection as
// proposals.csv, regardless of the current filters and page.
func (h *Handler) ExportProposalsCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	proposals, err := h.store.ListProposals(c.Request.Context())
	if err != nil {
		log.Printf("failed to list proposals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load proposals"})
		return
	}

	scoped := table.Scope(proposals, user)
	metrics.ProposalReads.Inc()

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="proposals.csv"`)
	c.Status(http.StatusOK)

	if err := table.WriteCSV(c.Writer, scoped); err != nil {
		log.Printf("failed to write CSV export: %v", err)
	}
}

type proposalRequest struct {
	ProjectName     string  `json:"projectName"`
	Priority        string  `json:"priority"`
	Country         string  `json:"country"`
	Bandwidth       string  `json:"bandwidth"`
	Gateway         string  `json:"gateway"`
	TerminalCount   int     `json:"terminalCount"`
	TerminalType    string  `json:"terminalType"`
	Customer        string  `json:"customer"`
	SalesDirector   string  `json:"salesDirector"`
	SubmissionDate  string  `json:"submissionDate"`
	ProposalLink    string  `json:"proposalLink"`
	CommercialValue float64 `json:"commercialValue"`
	Status          string  `json:"status"`
	Remarks         string  `json:"remarks"`
}

func validateProposalRequest(r *proposalRequest) error {
	if strings.TrimSpace(r.ProjectName) == "" {
		return errors.New("projectName is required")
	}
	switch models.ProposalPriority(r.Priority) {
	case models.PriorityP1, models.PriorityP2, models.PriorityP3:
	default:
		return errors.New("priority must be one of P1, P2, P3")
	}
	switch models.ProposalStatus(r.Status) {
	case models.StatusOngoing, models.StatusBlocked, models.StatusClosed:
	default:
		return errors.New("status must be one of ongoing, blocked, closed")
	}
	if r.TerminalCount < 0 {
		return errors.New("terminalCount must not be negative")
	}
	if r.CommercialValue < 0 {
		return errors.New("commercialValue must not be negative")
	}
	if _, err := time.Parse(dateLayout, r.SubmissionDate); err != nil {
		return errors.New("submissionDate must be a YYYY-MM-DD date")
	}
	return nil
}

// applyTo copies every replaceable field onto p. The identifier and the
// owning user stay as they are.
func (r *proposalRequest) applyTo(p *models.Proposal) {
	date, _ := time.Parse(dateLayout, r.SubmissionDate)

	p.ProjectName = strings.TrimSpace(r.ProjectName)
	p.Priority = models.ProposalPriority(r.Priority)
	p.Country = r.Country
	p.Bandwidth = r.Bandwidth
	p.Gateway = r.Gateway
	p.TerminalCount = r.TerminalCount
	p.TerminalType = r.TerminalType
	p.Customer = r.Customer
	p.SalesDirector = r.SalesDirector
	p.SubmissionDate = date
	p.ProposalLink = r.ProposalLink
	p.CommercialValue = r.CommercialValue
	p.Status = models.ProposalStatus(r.Status)
	p.Remarks = r.Remarks
}

func (h *Handler) CreateProposal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req proposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validateProposalRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var p models.Proposal
	req.applyTo(&p)
	p.UserID = user.ID

	if err := h.store.CreateProposal(c.Request.Context(), &p); err != nil {
		log.Printf("failed to create proposal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create proposal"})
		return
	}

	h.store.RecordAudit(c.Request.Context(), user.ID, "proposal", p.ID, "create", "Created proposal "+p.ProjectName)
	metrics.Mutations.WithLabelValues("proposal", "create").Inc()

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateProposal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid proposal id"})
		return
	}

	p, err := h.store.GetProposal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "proposal not found"})
			return
		}
		log.Printf("failed to load proposal %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load proposal"})
		return
	}

	var req proposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validateProposalRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.applyTo(p)

	if err := h.store.UpdateProposal(c.Request.Context(), p); err != nil {
		log.Printf("failed to update proposal %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update proposal"})
		return
	}

	h.store.RecordAudit(c.Request.Context(), user.ID, "proposal", p.ID, "update", "Updated proposal "+p.ProjectName)
	metrics.Mutations.WithLabelValues("proposal", "update").Inc()

	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProposal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid proposal id"})
		return
	}

	p, err := h.store.GetProposal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "proposal not found"})
			return
		}
		log.Printf("failed to load proposal %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load proposal"})
		return
	}

	if err := h.store.DeleteProposal(c.Request.Context(), id); err != nil {
		log.Printf("failed to delete proposal %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete proposal"})
		return
	}

	h.store.RecordAudit(c.Request.Context(), user.ID, "proposal", id, "delete", "Deleted proposal "+p.ProjectName)
	metrics.Mutations.WithLabelValues("proposal", "delete").Inc()

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
