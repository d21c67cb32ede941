package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/receptkylen/backend/internal/models"
)

// FavoriteService manages a user's denormalized recipe snapshots.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Add inserts a favorite snapshot. Inserting a duplicate (user, recipe) pair
// is a silent no-op; the boolean reports whether a row was created.
func (s *FavoriteService) Add(ctx context.Context, fav *models.Favorite) (bool, error) {
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoNothing: true,
		}).
		Create(fav)
	if res.Error != nil {
		return false, fmt.Errorf("adding favorite: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// List returns all favorites for a user, oldest first.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	return favorites, nil
}

// Remove deletes one favorite. Removing a recipe that is not favorited is
// not an error.
func (s *FavoriteService) Remove(ctx context.Context, userID uuid.UUID, recipeID int) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{}).Error; err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	return nil
}
