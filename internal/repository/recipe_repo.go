package repository

import (
	"errors"

	"github.com/recipeshare/server/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
)

// RecipeFilter narrows a recipe listing. Zero values mean "no filter".
type RecipeFilter struct {
	Category string // exact match against the category enum
	Search   string // case-insensitive substring match on the name
	AuthorID string // restrict to one owner's recipes
}

// RecipeRepository handles recipe data access
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe
func (r *RecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// GetByID retrieves a recipe by ID without relations
func (r *RecipeRepository) GetByID(id string) (*models.Recipe, error) {
	var recipe models.Recipe
	result := r.db.Where("id = ?", id).First(&recipe)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, result.Error
	}
	return &recipe, nil
}

// GetByIDDetailed retrieves a recipe with its owner and ratings (each rating
// carries the rater) joined in
func (r *RecipeRepository) GetByIDDetailed(id string) (*models.Recipe, error) {
	var recipe models.Recipe
	result := r.db.
		Preload("Owner").
		Preload("Ratings").
		Preload("Ratings.User").
		Where("id = ?", id).
		First(&recipe)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, result.Error
	}
	return &recipe, nil
}

// List retrieves recipes matching the filter, newest first, with owners joined
func (r *RecipeRepository) List(filter RecipeFilter) ([]models.Recipe, error) {
	query := r.db.Preload("Owner").Order("created_at DESC")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.AuthorID != "" {
		query = query.Where("owner_id = ?", filter.AuthorID)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// SearchByIngredients retrieves recipes whose ingredient list contains every
// given term as a case-insensitive substring
func (r *RecipeRepository) SearchByIngredients(terms []string) ([]models.Recipe, error) {
	query := r.db.Preload("Owner").Order("created_at DESC")
	for _, term := range terms {
		query = query.Where("ingredients::text ILIKE ?", "%"+term+"%")
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Save persists changes to a recipe
func (r *RecipeRepository) Save(recipe *models.Recipe) error {
	return r.db.Save(recipe).Error
}

// Delete removes a recipe together with its ratings and meal-plan entries.
// The three deletes run in one transaction so a failed cascade never leaves
// orphaned references behind.
func (r *RecipeRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.MealPlanEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Recipe{}).Error
	})
}

// UpdateRatingSummary overwrites the denormalized rating cache of a recipe
func (r *RecipeRepository) UpdateRatingSummary(id string, average float64, count int64) error {
	return r.db.Model(&models.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"average_rating": average,
			"rating_count":   count,
		}).Error
}
