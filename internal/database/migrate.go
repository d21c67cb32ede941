package database

import (
	"github.com/receptkylen/backend/internal/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the users and favorites tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Favorite{},
	)
}
