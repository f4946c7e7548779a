package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/repository"
)

// RecipeService handles recipe CRUD, listing and pantry search
type RecipeService struct {
	recipes RecipeStore
	cache   *RecipeCache
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(recipes RecipeStore, cache *RecipeCache) *RecipeService {
	return &RecipeService{
		recipes: recipes,
		cache:   cache,
	}
}

// CreateRecipeRequest represents the recipe creation request
type CreateRecipeRequest struct {
	Name         string   `json:"name" binding:"required,min=3,max=200"`
	Description  string   `json:"description" binding:"required,min=10"`
	Ingredients  []string `json:"ingredients" binding:"required,min=1,dive,required"`
	Instructions []string `json:"instructions" binding:"required,min=1,dive,required"`
	CookingTime  int      `json:"cookingTime" binding:"required,gte=1"`
	Servings     int      `json:"servings" binding:"required,gte=1"`
	Image        string   `json:"image"`
	Category     string   `json:"category" binding:"required"`
}

// UpdateRecipeRequest represents a partial recipe update; only supplied
// fields are overwritten
type UpdateRecipeRequest struct {
	Name         string   `json:"name" binding:"omitempty,min=3,max=200"`
	Description  string   `json:"description" binding:"omitempty,min=10"`
	Ingredients  []string `json:"ingredients" binding:"omitempty,min=1,dive,required"`
	Instructions []string `json:"instructions" binding:"omitempty,min=1,dive,required"`
	CookingTime  int      `json:"cookingTime" binding:"omitempty,gte=1"`
	Servings     int      `json:"servings" binding:"omitempty,gte=1"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
}

// Create persists a new recipe owned by ownerID. The rating summary starts
// at zero and is only ever touched by rating recomputation.
func (s *RecipeService) Create(ownerID string, req *CreateRecipeRequest) (*models.Recipe, error) {
	category := models.Category(req.Category)
	if !category.IsValid() {
		return nil, &InvalidCategoryError{Category: req.Category}
	}
	if len(req.Ingredients) == 0 {
		return nil, ErrEmptyIngredients
	}
	if len(req.Instructions) == 0 {
		return nil, ErrEmptyInstructions
	}

	recipe := &models.Recipe{
		Name:          strings.TrimSpace(req.Name),
		Description:   strings.TrimSpace(req.Description),
		Ingredients:   req.Ingredients,
		Instructions:  req.Instructions,
		CookingTime:   req.CookingTime,
		Servings:      req.Servings,
		Image:         strings.TrimSpace(req.Image),
		Category:      category,
		OwnerID:       ownerID,
		AverageRating: 0,
		RatingCount:   0,
	}
	if err := s.recipes.Create(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// List retrieves recipes matching the filter, newest first
func (s *RecipeService) List(filter repository.RecipeFilter) ([]models.Recipe, error) {
	return s.recipes.List(filter)
}

// SearchByIngredients retrieves recipes containing every given ingredient.
// Blank terms are dropped; the handler rejects an empty term list upfront.
func (s *RecipeService) SearchByIngredients(terms []string) ([]models.Recipe, error) {
	cleaned := make([]string, 0, len(terms))
	for _, term := range terms {
		if t := strings.TrimSpace(term); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return s.recipes.SearchByIngredients(cleaned)
}

// Get retrieves a recipe with owner and ratings joined, served from the
// cache when warm
func (s *RecipeService) Get(id string) (*models.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	if recipe, ok := s.cache.GetDetail(id); ok {
		return recipe, nil
	}

	recipe, err := s.recipes.GetByIDDetailed(id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDetail(recipe)
	return recipe, nil
}

// Update overwrites the supplied fields of a recipe. Only the owner may
// update; a non-owner gets ErrForbidden, never a not-found.
func (s *RecipeService) Update(id, requesterID string, req *UpdateRecipeRequest) (*models.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	recipe, err := s.recipes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe.OwnerID != requesterID {
		return nil, ErrForbidden
	}

	if req.Name != "" {
		recipe.Name = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		recipe.Description = strings.TrimSpace(req.Description)
	}
	if req.Ingredients != nil {
		if len(req.Ingredients) == 0 {
			return nil, ErrEmptyIngredients
		}
		recipe.Ingredients = req.Ingredients
	}
	if req.Instructions != nil {
		if len(req.Instructions) == 0 {
			return nil, ErrEmptyInstructions
		}
		recipe.Instructions = req.Instructions
	}
	if req.CookingTime > 0 {
		recipe.CookingTime = req.CookingTime
	}
	if req.Servings > 0 {
		recipe.Servings = req.Servings
	}
	if req.Image != "" {
		recipe.Image = strings.TrimSpace(req.Image)
	}
	if req.Category != "" {
		category := models.Category(req.Category)
		if !category.IsValid() {
			return nil, &InvalidCategoryError{Category: req.Category}
		}
		recipe.Category = category
	}

	if err := s.recipes.Save(recipe); err != nil {
		return nil, err
	}
	s.cache.Invalidate(id)
	return recipe, nil
}

// Delete removes a recipe and, through the store, its ratings and meal-plan
// entries. Owner only.
func (s *RecipeService) Delete(id, requesterID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	recipe, err := s.recipes.GetByID(id)
	if err != nil {
		return err
	}
	if recipe.OwnerID != requesterID {
		return ErrForbidden
	}

	if err := s.recipes.Delete(id); err != nil {
		return err
	}
	s.cache.Invalidate(id)
	return nil
}
