package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
)

// Connect opens the GORM handle. TranslateError turns driver duplicate-key
// failures into gorm.ErrDuplicatedKey, which the repositories rely on to
// resolve the concurrent-registration race.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates the three tables, including the unique
// indexes on users.username / users.email and the rating check constraint.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Review{},
	)
}
