package database

import (
	"log"
	"os"
	"time"

	"proposaldesk/internal/models"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const maxConnectAttempts = 10

// Open connects to Postgres, runs migrations and makes sure an admin
// account exists.
func Open(dsn string) (*gorm.DB, error) {
	var db *gorm.DB

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		log.Printf("trying to connect to DB (attempt %d/%d)...", attempt, maxConnectAttempts)

		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to connect to DB: %v", err)
		}
		return err
	}, backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), maxConnectAttempts-1))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}
	log.Println("connected to DB successfully")

	err = db.AutoMigrate(
		&models.User{},
		&models.Proposal{},
		&models.AuditLog{},
	)
	if err != nil {
		return nil, errors.Wrap(err, "running migrations")
	}

	createDefaultAdmin(db)

	return db, nil
}

// admin comes from env only, never from the API
func createDefaultAdmin(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		// an admin already exists, nothing to do
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", username)
}
