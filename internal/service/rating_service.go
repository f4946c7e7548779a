package service

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrAlreadyRated marks a second rating attempt on the same recipe by
	// the same user
	ErrAlreadyRated = errors.New("recipe already rated by this user")
)

// RatingService handles rating mutations and keeps the owning recipe's
// denormalized rating summary in sync
type RatingService struct {
	ratings RatingStore
	recipes RecipeStore
	cache   *RecipeCache
}

// NewRatingService creates a new RatingService
func NewRatingService(ratings RatingStore, recipes RecipeStore, cache *RecipeCache) *RatingService {
	return &RatingService{
		ratings: ratings,
		recipes: recipes,
		cache:   cache,
	}
}

// CreateRatingRequest represents the rating submission request
type CreateRatingRequest struct {
	RecipeID string `json:"recipeId" binding:"required"`
	Value    int    `json:"value" binding:"required,gte=1,lte=5"`
	Comment  string `json:"comment" binding:"omitempty,max=500"`
}

// UpdateRatingRequest represents a partial rating update
type UpdateRatingRequest struct {
	Value   *int    `json:"value" binding:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment" binding:"omitempty,max=500"`
}

// Create submits a rating for a recipe. The service pre-checks for an
// existing rating; the store's unique index catches the two-creates race.
func (s *RatingService) Create(userID string, req *CreateRatingRequest) (*models.Rating, error) {
	if _, err := uuid.Parse(req.RecipeID); err != nil {
		return nil, ErrInvalidID
	}
	if req.Value < 1 || req.Value > 5 {
		return nil, ErrValueOutOfRange
	}

	if _, err := s.recipes.GetByID(req.RecipeID); err != nil {
		return nil, err
	}

	if _, err := s.ratings.GetByRecipeAndUser(req.RecipeID, userID); err == nil {
		return nil, ErrAlreadyRated
	} else if !errors.Is(err, repository.ErrRatingNotFound) {
		return nil, err
	}

	rating := &models.Rating{
		RecipeID: req.RecipeID,
		UserID:   userID,
		Value:    req.Value,
		Comment:  req.Comment,
	}
	if err := s.ratings.Create(rating); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	if err := s.recompute(req.RecipeID); err != nil {
		return nil, err
	}
	return rating, nil
}

// ListForRecipe retrieves all ratings of a recipe with raters joined.
// An empty list is a valid result, not an error.
func (s *RatingService) ListForRecipe(recipeID string) ([]models.Rating, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return nil, ErrInvalidID
	}
	return s.ratings.ListByRecipe(recipeID)
}

// Update overwrites the supplied fields of a rating. Creator only.
func (s *RatingService) Update(ratingID, requesterID string, req *UpdateRatingRequest) (*models.Rating, error) {
	if _, err := uuid.Parse(ratingID); err != nil {
		return nil, ErrInvalidID
	}

	rating, err := s.ratings.GetByID(ratingID)
	if err != nil {
		return nil, err
	}
	if rating.UserID != requesterID {
		return nil, ErrForbidden
	}

	if req.Value != nil {
		if *req.Value < 1 || *req.Value > 5 {
			return nil, ErrValueOutOfRange
		}
		rating.Value = *req.Value
	}
	if req.Comment != nil {
		rating.Comment = *req.Comment
	}

	if err := s.ratings.Save(rating); err != nil {
		return nil, err
	}
	if err := s.recompute(rating.RecipeID); err != nil {
		return nil, err
	}
	return rating, nil
}

// Delete removes a rating and recomputes the summary of the recipe it
// belonged to. Creator only.
func (s *RatingService) Delete(ratingID, requesterID string) error {
	if _, err := uuid.Parse(ratingID); err != nil {
		return ErrInvalidID
	}

	rating, err := s.ratings.GetByID(ratingID)
	if err != nil {
		return err
	}
	if rating.UserID != requesterID {
		return ErrForbidden
	}

	// Recipe id captured before the delete
	recipeID := rating.RecipeID

	if err := s.ratings.Delete(ratingID); err != nil {
		return err
	}
	return s.recompute(recipeID)
}

// recompute re-aggregates every rating of the recipe and overwrites the
// cached averageRating (mean, one decimal) and ratingCount. With no ratings
// left, both reset to zero. Full recompute per write; concurrent writers
// are last-writer-wins.
func (s *RatingService) recompute(recipeID string) error {
	average, count, err := s.ratings.AggregateByRecipe(recipeID)
	if err != nil {
		return err
	}

	rounded := 0.0
	if count > 0 {
		rounded = math.Round(average*10) / 10
	}

	if err := s.recipes.UpdateRatingSummary(recipeID, rounded, count); err != nil {
		return err
	}
	s.cache.Invalidate(recipeID)
	return nil
}
