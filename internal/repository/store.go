package repository

import (
	"context"
	"log"
	"time"

	"proposaldesk/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// Store is the only component that talks to the database. Handlers go
// through its named operations and never see SQL.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListProposals(ctx context.Context) ([]models.Proposal, error) {
	proposals := []models.Proposal{}
	if err := s.db.WithContext(ctx).Order("id asc").Find(&proposals).Error; err != nil {
		return nil, errors.Wrap(err, "listing proposals")
	}
	return proposals, nil
}

func (s *Store) GetProposal(ctx context.Context, id uint) (*models.Proposal, error) {
	var p models.Proposal
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProposal(ctx context.Context, p *models.Proposal) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return errors.Wrap(err, "creating proposal")
	}
	return nil
}

func (s *Store) UpdateProposal(ctx context.Context, p *models.Proposal) error {
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return errors.Wrap(err, "updating proposal")
	}
	return nil
}

func (s *Store) DeleteProposal(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Proposal{}, id).Error; err != nil {
		return errors.Wrap(err, "deleting proposal")
	}
	return nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("username asc").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "listing users")
	}
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return errors.Wrap(err, "creating user")
	}
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Save(u).Error; err != nil {
		return errors.Wrap(err, "updating user")
	}
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return errors.Wrap(err, "deleting user")
	}
	return nil
}

func (s *Store) UpdateLastLogin(ctx context.Context, id uint, t time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login", t).Error
	return errors.Wrap(err, "updating last login")
}

// RecordAudit writes one journal entry. Audit failures are logged and
// swallowed so they never fail the mutation they describe.
func (s *Store) RecordAudit(ctx context.Context, userID uint, entity string, entityID uint, action, details string) {
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		log.Printf("failed to write audit log: %v", err)
	}
}

func (s *Store) ListAuditLogs(ctx context.Context) ([]models.AuditLog, error) {
	logs := []models.AuditLog{}
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at desc").
		Limit(200).
		Find(&logs).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing audit logs")
	}
	return logs, nil
}
