package service

import (
	"time"

	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/repository"
)

// Store interfaces consumed by the services, implemented by the repository
// package. Tests substitute in-memory fakes.

// UserStore provides user persistence
type UserStore interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByEmailExcluding(email, excludeID string) (bool, error)
	ExistsByUsername(username string) (bool, error)
	Update(user *models.User) error
}

// RecipeStore provides recipe persistence
type RecipeStore interface {
	Create(recipe *models.Recipe) error
	GetByID(id string) (*models.Recipe, error)
	GetByIDDetailed(id string) (*models.Recipe, error)
	List(filter repository.RecipeFilter) ([]models.Recipe, error)
	SearchByIngredients(terms []string) ([]models.Recipe, error)
	Save(recipe *models.Recipe) error
	Delete(id string) error
	UpdateRatingSummary(id string, average float64, count int64) error
}

// RatingStore provides rating persistence
type RatingStore interface {
	Create(rating *models.Rating) error
	GetByID(id string) (*models.Rating, error)
	GetByRecipeAndUser(recipeID, userID string) (*models.Rating, error)
	ListByRecipe(recipeID string) ([]models.Rating, error)
	Save(rating *models.Rating) error
	Delete(id string) error
	AggregateByRecipe(recipeID string) (float64, int64, error)
}

// MealPlanStore provides meal-plan persistence
type MealPlanStore interface {
	ListByUserAndRange(userID string, start, end time.Time) ([]models.MealPlanEntry, error)
	ReplaceRange(userID string, start, end time.Time, entries []models.MealPlanEntry) error
	GetByID(id string) (*models.MealPlanEntry, error)
	Delete(id string) error
}

var (
	_ UserStore     = (*repository.UserRepository)(nil)
	_ RecipeStore   = (*repository.RecipeRepository)(nil)
	_ RatingStore   = (*repository.RatingRepository)(nil)
	_ MealPlanStore = (*repository.MealPlanRepository)(nil)
)
