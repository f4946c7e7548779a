package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating represents one user's rating of one recipe. The composite unique
// index guarantees at most one rating per (recipe, user) pair even when two
// concurrent creates race past the service-level pre-check.
type Rating struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_recipe_user" json:"recipeId"`
	UserID   string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_recipe_user" json:"userId"`
	Value    int    `gorm:"not null" json:"value"`
	Comment  string `gorm:"size:500" json:"comment,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Rating model
func (Rating) TableName() string {
	return "ratings"
}

// BeforeCreate assigns a UUID
func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
