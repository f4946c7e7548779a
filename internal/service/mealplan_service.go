package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/recipeshare/server/internal/models"
)

var (
	// ErrInvalidWeekStart marks a missing or malformed weekStart date
	ErrInvalidWeekStart = errors.New("invalid weekStart date")
)

const weekDateLayout = "2006-01-02"

// MealPlanService handles weekly meal plans. A week is the 7-day window
// [weekStart, weekStart+6]; saving a week replaces it wholesale.
type MealPlanService struct {
	entries MealPlanStore
}

// NewMealPlanService creates a new MealPlanService
func NewMealPlanService(entries MealPlanStore) *MealPlanService {
	return &MealPlanService{entries: entries}
}

// MealSelection is one cell of a save-week payload
type MealSelection struct {
	RecipeID string `json:"recipeId" binding:"required"`
}

// SaveWeekRequest represents the save-week payload: a map of date
// (YYYY-MM-DD) to meal slot to selected recipe. Cells absent from the map
// are erased for that week.
type SaveWeekRequest struct {
	WeekStart string                               `json:"weekStart" binding:"required"`
	MealPlan  map[string]map[string]*MealSelection `json:"mealPlan"`
}

// WeekRange computes the inclusive [start, start+6] window from a
// YYYY-MM-DD week start
func WeekRange(weekStart string) (time.Time, time.Time, error) {
	start, err := time.Parse(weekDateLayout, weekStart)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidWeekStart
	}
	return start, start.AddDate(0, 0, 6), nil
}

// GetWeek retrieves the user's entries for the week, recipes joined
func (s *MealPlanService) GetWeek(userID, weekStart string) ([]models.MealPlanEntry, error) {
	start, end, err := WeekRange(weekStart)
	if err != nil {
		return nil, err
	}
	return s.entries.ListByUserAndRange(userID, start, end)
}

// SaveWeek replaces the user's plan for the week with the payload: every
// existing entry in the range is deleted and one entry is inserted per
// non-null (date, meal slot, recipe) triple, in one transaction. A partial
// payload erases whatever it does not mention.
func (s *MealPlanService) SaveWeek(userID string, req *SaveWeekRequest) error {
	start, end, err := WeekRange(req.WeekStart)
	if err != nil {
		return err
	}

	var entries []models.MealPlanEntry
	for dateStr, slots := range req.MealPlan {
		date, err := time.Parse(weekDateLayout, dateStr)
		if err != nil {
			return &InvalidPlanDateError{Date: dateStr}
		}
		if date.Before(start) || date.After(end) {
			return &DateOutsideWeekError{Date: dateStr}
		}

		for slot, selection := range slots {
			if selection == nil || selection.RecipeID == "" {
				continue
			}
			mealType := models.MealType(slot)
			if !mealType.IsValid() {
				return &InvalidMealTypeError{MealType: slot}
			}
			if _, err := uuid.Parse(selection.RecipeID); err != nil {
				return ErrInvalidID
			}
			entries = append(entries, models.MealPlanEntry{
				UserID:   userID,
				RecipeID: selection.RecipeID,
				Date:     date,
				MealType: mealType,
			})
		}
	}

	return s.entries.ReplaceRange(userID, start, end, entries)
}

// RemoveEntry deletes a single meal-plan entry. Creator only.
func (s *MealPlanService) RemoveEntry(entryID, requesterID string) error {
	if _, err := uuid.Parse(entryID); err != nil {
		return ErrInvalidID
	}

	entry, err := s.entries.GetByID(entryID)
	if err != nil {
		return err
	}
	if entry.UserID != requesterID {
		return ErrForbidden
	}
	return s.entries.Delete(entryID)
}
