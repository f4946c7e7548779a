package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/repository"
	"github.com/recipeshare/server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekRange(t *testing.T) {
	start, end, err := service.WeekRange("2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), end)

	_, _, err = service.WeekRange("24/08/2026")
	assert.ErrorIs(t, err, service.ErrInvalidWeekStart)

	_, _, err = service.WeekRange("")
	assert.ErrorIs(t, err, service.ErrInvalidWeekStart)
}

func TestSaveWeekAndGetWeek(t *testing.T) {
	entries := newFakeMealPlanStore()
	svc := service.NewMealPlanService(entries)

	recipeA := uuid.NewString()
	recipeB := uuid.NewString()

	err := svc.SaveWeek("user-1", &service.SaveWeekRequest{
		WeekStart: "2026-08-24",
		MealPlan: map[string]map[string]*service.MealSelection{
			"2026-08-24": {
				"Breakfast": {RecipeID: recipeA},
				"Dinner":    {RecipeID: recipeB},
			},
			"2026-08-26": {
				"Lunch": {RecipeID: recipeA},
			},
		},
	})
	require.NoError(t, err)

	week, err := svc.GetWeek("user-1", "2026-08-24")
	require.NoError(t, err)
	assert.Len(t, week, 3)

	// Another user's week is untouched
	week, err = svc.GetWeek("user-2", "2026-08-24")
	require.NoError(t, err)
	assert.Empty(t, week)
}

func TestSaveWeekReplacesNotMerges(t *testing.T) {
	entries := newFakeMealPlanStore()
	svc := service.NewMealPlanService(entries)

	recipeA := uuid.NewString()
	recipeB := uuid.NewString()

	err := svc.SaveWeek("user-1", &service.SaveWeekRequest{
		WeekStart: "2026-08-24",
		MealPlan: map[string]map[string]*service.MealSelection{
			"2026-08-24": {"Breakfast": {RecipeID: recipeA}},
		},
	})
	require.NoError(t, err)

	// Second save mentions only Tuesday; Monday must be erased
	err = svc.SaveWeek("user-1", &service.SaveWeekRequest{
		WeekStart: "2026-08-24",
		MealPlan: map[string]map[string]*service.MealSelection{
			"2026-08-25": {"Lunch": {RecipeID: recipeB}},
		},
	})
	require.NoError(t, err)

	week, err := svc.GetWeek("user-1", "2026-08-24")
	require.NoError(t, err)
	require.Len(t, week, 1)
	assert.Equal(t, recipeB, week[0].RecipeID)
	assert.Equal(t, models.MealLunch, week[0].MealType)
}

func TestSaveWeekEmptyPayloadClearsWeek(t *testing.T) {
	entries := newFakeMealPlanStore()
	svc := service.NewMealPlanService(entries)

	err := svc.SaveWeek("user-1", &service.SaveWeekRequest{
		WeekStart: "2026-08-24",
		MealPlan: map[string]map[string]*service.MealSelection{
			"2026-08-24": {"Breakfast": {RecipeID: uuid.NewString()}},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.SaveWeek("user-1", &service.SaveWeekRequest{WeekStart: "2026-08-24"}))

	week, err := svc.GetWeek("user-1", "2026-08-24")
	require.NoError(t, err)
	assert.Empty(t, week)
}

func TestSaveWeekBoundaries(t *testing.T) {
	entries := newFakeMealPlanStore()
	svc := service.NewMealPlanService(entries)

	// Last day of the window is in range
	err := svc.SaveWeek("user-1", &service.SaveWeekRequest{
		WeekStart: "2026-08-24",
		MealPlan: map[string]map[string]*service.MealSelection{
			"2026-08-30": {"Dinner": {RecipeID: uuid.NewString()}},
		},
	})
	require.NoError(t, err)

	// One past the window is not
	err = svc.SaveWeek("user-1", &service.SaveWeekRequest{
		WeekStart: "2026-08-24",
		MealPlan: map[string]map[string]*service.MealSelection{
			"2026-08-31": {"Dinner": {RecipeID: uuid.NewString()}},
		},
	})
	var outside *service.DateOutsideWeekError
	require.ErrorAs(t, err, &outside)
	assert.Equal(t, "2026-08-31", outside.Date)
}

func TestSaveWeekValidation(t *testing.T) {
	entries := newFakeMealPlanStore()
	svc := service.NewMealPlanService(entries)

	err := svc.SaveWeek("user-1", &service.SaveWeekRequest{WeekStart: "not-a-date"})
	assert.ErrorIs(t, err, service.ErrInvalidWeekStart)

	err = svc.SaveWeek("user-1", &service.SaveWeekRequest{
		WeekStart: "2026-08-24",
		MealPlan: map[string]map[string]*service.MealSelection{
			"08/24/2026": {"Dinner": {RecipeID: uuid.NewString()}},
		},
	})
	var badDate *service.InvalidPlanDateError
	assert.ErrorAs(t, err, &badDate)

	err = svc.SaveWeek("user-1", &service.SaveWeekRequest{
		WeekStart: "2026-08-24",
		MealPlan: map[string]map[string]*service.MealSelection{
			"2026-08-24": {"Brunch": {RecipeID: uuid.NewString()}},
		},
	})
	var badMeal *service.InvalidMealTypeError
	require.ErrorAs(t, err, &badMeal)
	assert.Equal(t, "Brunch", badMeal.MealType)

	err = svc.SaveWeek("user-1", &service.SaveWeekRequest{
		WeekStart: "2026-08-24",
		MealPlan: map[string]map[string]*service.MealSelection{
			"2026-08-24": {"Dinner": {RecipeID: "nope"}},
		},
	})
	assert.ErrorIs(t, err, service.ErrInvalidID)
}

func TestSaveWeekSkipsNullSelections(t *testing.T) {
	entries := newFakeMealPlanStore()
	svc := service.NewMealPlanService(entries)

	err := svc.SaveWeek("user-1", &service.SaveWeekRequest{
		WeekStart: "2026-08-24",
		MealPlan: map[string]map[string]*service.MealSelection{
			"2026-08-24": {
				"Breakfast": nil,
				"Lunch":     {RecipeID: ""},
				"Dinner":    {RecipeID: uuid.NewString()},
			},
		},
	})
	require.NoError(t, err)

	week, err := svc.GetWeek("user-1", "2026-08-24")
	require.NoError(t, err)
	require.Len(t, week, 1)
	assert.Equal(t, models.MealDinner, week[0].MealType)
}

func TestRemoveEntry(t *testing.T) {
	entries := newFakeMealPlanStore()
	svc := service.NewMealPlanService(entries)

	err := svc.SaveWeek("user-1", &service.SaveWeekRequest{
		WeekStart: "2026-08-24",
		MealPlan: map[string]map[string]*service.MealSelection{
			"2026-08-24": {"Breakfast": {RecipeID: uuid.NewString()}},
		},
	})
	require.NoError(t, err)

	week, err := svc.GetWeek("user-1", "2026-08-24")
	require.NoError(t, err)
	require.Len(t, week, 1)
	entryID := week[0].ID

	assert.ErrorIs(t, svc.RemoveEntry(entryID, "user-2"), service.ErrForbidden)
	assert.ErrorIs(t, svc.RemoveEntry("nope", "user-1"), service.ErrInvalidID)
	require.NoError(t, svc.RemoveEntry(entryID, "user-1"))

	assert.ErrorIs(t, svc.RemoveEntry(entryID, "user-1"), repository.ErrMealPlanEntryNotFound)

	week, err = svc.GetWeek("user-1", "2026-08-24")
	require.NoError(t, err)
	assert.Empty(t, week)
}
