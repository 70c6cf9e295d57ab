package database

import (
	"fmt"

	"carta-backend/internal/config"
	"carta-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres handle and runs migrations. The returned
// handle is created once at startup and injected into every store; there
// is no package-level connection.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs AutoMigrate for every model. Split out so test databases
// can reuse it with a different driver.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Workspace{},
		&models.User{},
		&models.UserWorkspace{},
		&models.Product{},
		&models.ProductComplementType{},
		&models.ProductComplement{},
		&models.ProductComplementTypeLink{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}
