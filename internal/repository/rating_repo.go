package repository

import (
	"database/sql"
	"errors"

	"github.com/recipeshare/server/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRatingNotFound = errors.New("rating not found")
)

// RatingRepository handles rating data access
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create creates a new rating. The unique (recipe_id, user_id) index makes
// gorm return ErrDuplicatedKey when the same user rates a recipe twice.
func (r *RatingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// GetByID retrieves a rating by ID
func (r *RatingRepository) GetByID(id string) (*models.Rating, error) {
	var rating models.Rating
	result := r.db.Where("id = ?", id).First(&rating)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, result.Error
	}
	return &rating, nil
}

// GetByRecipeAndUser retrieves the single rating of one user for one recipe
func (r *RatingRepository) GetByRecipeAndUser(recipeID, userID string) (*models.Rating, error) {
	var rating models.Rating
	result := r.db.Where("recipe_id = ? AND user_id = ?", recipeID, userID).First(&rating)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, result.Error
	}
	return &rating, nil
}

// ListByRecipe retrieves all ratings for a recipe with raters joined,
// newest first
func (r *RatingRepository) ListByRecipe(recipeID string) ([]models.Rating, error) {
	var ratings []models.Rating
	result := r.db.
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&ratings)
	if result.Error != nil {
		return nil, result.Error
	}
	return ratings, nil
}

// Save persists changes to a rating
func (r *RatingRepository) Save(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// Delete removes a rating
func (r *RatingRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Rating{}).Error
}

// AggregateByRecipe computes the mean value and count over all ratings of a
// recipe. A recipe without ratings yields (0, 0).
func (r *RatingRepository) AggregateByRecipe(recipeID string) (float64, int64, error) {
	var agg struct {
		Average sql.NullFloat64
		Count   int64
	}
	err := r.db.Model(&models.Rating{}).
		Select("AVG(value) AS average, COUNT(*) AS count").
		Where("recipe_id = ?", recipeID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}
	if !agg.Average.Valid {
		return 0, 0, nil
	}
	return agg.Average.Float64, agg.Count, nil
}
