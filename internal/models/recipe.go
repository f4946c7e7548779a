package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a fixed cuisine/meal tag attached to every recipe
type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategorySoup      Category = "Soup"
	CategoryChinese   Category = "Chinese"
	CategoryIndian    Category = "Indian"
	CategoryItalian   Category = "Italian"
	CategoryMexican   Category = "Mexican"
	CategoryPizza     Category = "Pizza"
	CategoryDessert   Category = "Dessert"
	CategoryBeverages Category = "Beverages"
)

// Categories lists every valid recipe category
var Categories = []Category{
	CategoryBreakfast,
	CategorySoup,
	CategoryChinese,
	CategoryIndian,
	CategoryItalian,
	CategoryMexican,
	CategoryPizza,
	CategoryDessert,
	CategoryBeverages,
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, valid := range Categories {
		if c == valid {
			return true
		}
	}
	return false
}

// Recipe represents a shared recipe. AverageRating and RatingCount are a
// denormalized cache of the Rating records referencing this recipe and are
// fully recomputed on every rating mutation.
type Recipe struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"size:200;not null;index" json:"name"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Ingredients  StringList `gorm:"type:jsonb;not null" json:"ingredients"`
	Instructions StringList `gorm:"type:jsonb;not null" json:"instructions"`
	CookingTime  int        `gorm:"not null" json:"cookingTime"`
	Servings     int        `gorm:"not null" json:"servings"`
	Image        string     `gorm:"size:500" json:"image"`
	Category     Category   `gorm:"size:30;not null;index" json:"category"`
	OwnerID      string     `gorm:"type:uuid;not null;index" json:"ownerId"`

	AverageRating float64 `gorm:"not null;default:0" json:"averageRating"`
	RatingCount   int64   `gorm:"not null;default:0" json:"ratingCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Owner   *User    `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Ratings []Rating `gorm:"foreignKey:RecipeID" json:"ratings,omitempty"`
}

// TableName specifies the table name for Recipe model
func (Recipe) TableName() string {
	return "recipes"
}

// BeforeCreate assigns a UUID
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
