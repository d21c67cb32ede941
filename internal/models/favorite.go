package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite is a denormalized snapshot of a recipe's display fields at the
// time it was favorited, not a live reference to the external API.
type Favorite struct {
	ID             uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID       int       `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Image          string    `gorm:"size:255" json:"image"`
	Difficulty     string    `gorm:"size:10" json:"difficulty"`
	ReadyInMinutes int       `json:"ready_in_minutes"`
	Servings       string    `gorm:"size:20" json:"servings"`
	Nutrition      string    `gorm:"size:50" json:"nutrition"`
	Instructions   string    `gorm:"type:text" json:"instructions"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
