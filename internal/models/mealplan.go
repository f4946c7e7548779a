package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealType is one of the fixed meal slots of a day
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
)

// IsValid reports whether m is one of the known meal slots
func (m MealType) IsValid() bool {
	return m == MealBreakfast || m == MealLunch || m == MealDinner
}

// MealPlanEntry assigns one recipe to one (user, date, meal slot) cell of a
// weekly plan. A week of entries is replaced wholesale on save.
type MealPlanEntry struct {
	ID       string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   string    `gorm:"type:uuid;not null;index:idx_meal_plan_user_date" json:"userId"`
	RecipeID string    `gorm:"type:uuid;not null" json:"recipeId"`
	Date     time.Time `gorm:"type:date;not null;index:idx_meal_plan_user_date" json:"date"`
	MealType MealType  `gorm:"size:20;not null" json:"mealType"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

// TableName specifies the table name for MealPlanEntry model
func (MealPlanEntry) TableName() string {
	return "meal_plan_entries"
}

// BeforeCreate assigns a UUID
func (e *MealPlanEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
