package handlers

import (
	"context"
	"time"

	"proposaldesk/internal/models"
)

// Store is the typed repository the handlers depend on. Every data
// operation has a name; no handler ever sees query text.
type Store interface {
	ListProposals(ctx context.Context) ([]models.Proposal, error)
	GetProposal(ctx context.Context, id uint) (*models.Proposal, error)
	CreateProposal(ctx context.Context, p *models.Proposal) error
	UpdateProposal(ctx context.Context, p *models.Proposal) error
	DeleteProposal(ctx context.Context, id uint) error

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id uint) error
	UpdateLastLogin(ctx context.Context, id uint, t time.Time) error

	RecordAudit(ctx context.Context, userID uint, entity string, entityID uint, action, details string)
	ListAuditLogs(ctx context.Context) ([]models.AuditLog, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}
