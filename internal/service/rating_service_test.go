package service_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/repository"
	"github.com/recipeshare/server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRatingService(t *testing.T) (*service.RatingService, *fakeRecipeStore, *models.Recipe) {
	t.Helper()
	recipes := newFakeRecipeStore()
	ratings := newFakeRatingStore()
	svc := service.NewRatingService(ratings, recipes, nil)

	recipe := &models.Recipe{
		Name:         "Margherita",
		Category:     models.CategoryPizza,
		Ingredients:  models.StringList{"dough", "tomato", "mozzarella"},
		Instructions: models.StringList{"Stretch", "Top", "Bake"},
		OwnerID:      "owner-1",
	}
	require.NoError(t, recipes.Create(recipe))
	return svc, recipes, recipe
}

func rate(t *testing.T, svc *service.RatingService, recipeID, userID string, value int) *models.Rating {
	t.Helper()
	rating, err := svc.Create(userID, &service.CreateRatingRequest{RecipeID: recipeID, Value: value})
	require.NoError(t, err)
	return rating
}

func TestRatingRecompute(t *testing.T) {
	svc, recipes, recipe := setupRatingService(t)

	rate(t, svc, recipe.ID, "user-a", 3)
	rate(t, svc, recipe.ID, "user-b", 5)
	rate(t, svc, recipe.ID, "user-c", 4)

	got, err := recipes.GetByID(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.AverageRating)
	assert.Equal(t, int64(3), got.RatingCount)
}

func TestRatingRecomputeRounding(t *testing.T) {
	svc, recipes, recipe := setupRatingService(t)

	// (4+5+5)/3 = 4.666... rounds to 4.7
	rate(t, svc, recipe.ID, "user-a", 4)
	rate(t, svc, recipe.ID, "user-b", 5)
	rate(t, svc, recipe.ID, "user-c", 5)

	got, err := recipes.GetByID(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.7, got.AverageRating)
}

func TestRatingDeleteRecomputes(t *testing.T) {
	svc, recipes, recipe := setupRatingService(t)

	three := rate(t, svc, recipe.ID, "user-a", 3)
	rate(t, svc, recipe.ID, "user-b", 5)
	rate(t, svc, recipe.ID, "user-c", 4)

	require.NoError(t, svc.Delete(three.ID, "user-a"))

	got, err := recipes.GetByID(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.AverageRating)
	assert.Equal(t, int64(2), got.RatingCount)
}

func TestRatingSummaryResetsWhenEmpty(t *testing.T) {
	svc, recipes, recipe := setupRatingService(t)

	only := rate(t, svc, recipe.ID, "user-a", 5)
	require.NoError(t, svc.Delete(only.ID, "user-a"))

	got, err := recipes.GetByID(recipe.ID)
	require.NoError(t, err)
	assert.Zero(t, got.AverageRating)
	assert.Zero(t, got.RatingCount)
}

func TestRatingDuplicateRejected(t *testing.T) {
	svc, _, recipe := setupRatingService(t)

	rate(t, svc, recipe.ID, "user-a", 4)
	_, err := svc.Create("user-a", &service.CreateRatingRequest{RecipeID: recipe.ID, Value: 2})
	assert.ErrorIs(t, err, service.ErrAlreadyRated)

	// A different user is still free to rate
	rate(t, svc, recipe.ID, "user-b", 2)
}

func TestRatingValidation(t *testing.T) {
	svc, _, recipe := setupRatingService(t)

	_, err := svc.Create("user-a", &service.CreateRatingRequest{RecipeID: "nope", Value: 3})
	assert.ErrorIs(t, err, service.ErrInvalidID)

	_, err = svc.Create("user-a", &service.CreateRatingRequest{RecipeID: recipe.ID, Value: 6})
	assert.ErrorIs(t, err, service.ErrValueOutOfRange)

	_, err = svc.Create("user-a", &service.CreateRatingRequest{RecipeID: uuid.NewString(), Value: 3})
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestRatingUpdateCreatorOnly(t *testing.T) {
	svc, recipes, recipe := setupRatingService(t)

	rating := rate(t, svc, recipe.ID, "user-a", 2)

	newValue := 5
	_, err := svc.Update(rating.ID, "user-b", &service.UpdateRatingRequest{Value: &newValue})
	assert.ErrorIs(t, err, service.ErrForbidden)

	updated, err := svc.Update(rating.ID, "user-a", &service.UpdateRatingRequest{Value: &newValue})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Value)

	got, err := recipes.GetByID(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.AverageRating)
}

func TestRatingUpdateValueRange(t *testing.T) {
	svc, _, recipe := setupRatingService(t)

	rating := rate(t, svc, recipe.ID, "user-a", 2)

	zero := 0
	_, err := svc.Update(rating.ID, "user-a", &service.UpdateRatingRequest{Value: &zero})
	assert.ErrorIs(t, err, service.ErrValueOutOfRange)
}

// brokenRatingStore fails the duplicate pre-check with a store error
type brokenRatingStore struct {
	*fakeRatingStore
	lookupErr error
}

func (b *brokenRatingStore) GetByRecipeAndUser(recipeID, userID string) (*models.Rating, error) {
	return nil, b.lookupErr
}

func TestRatingCreateSurfacesLookupErrors(t *testing.T) {
	recipes := newFakeRecipeStore()
	recipe := &models.Recipe{Name: "Margherita", Category: models.CategoryPizza, OwnerID: "owner-1"}
	require.NoError(t, recipes.Create(recipe))

	lookupErr := errors.New("connection reset")
	ratings := &brokenRatingStore{fakeRatingStore: newFakeRatingStore(), lookupErr: lookupErr}
	svc := service.NewRatingService(ratings, recipes, nil)

	// A failing pre-check must not be mistaken for "no existing rating"
	_, err := svc.Create("user-a", &service.CreateRatingRequest{RecipeID: recipe.ID, Value: 4})
	assert.ErrorIs(t, err, lookupErr)
	assert.Empty(t, ratings.ratings)
}

func TestRatingDeleteCreatorOnly(t *testing.T) {
	svc, _, recipe := setupRatingService(t)

	rating := rate(t, svc, recipe.ID, "user-a", 2)
	assert.ErrorIs(t, svc.Delete(rating.ID, "user-b"), service.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(uuid.NewString(), "user-a"), repository.ErrRatingNotFound)
}
