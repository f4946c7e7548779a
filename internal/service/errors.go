package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidID marks an identifier that is not a well-formed UUID
	ErrInvalidID = errors.New("invalid id format")
	// ErrForbidden marks a mutation attempted by someone other than the owner
	ErrForbidden = errors.New("not the owner of this resource")
	// ErrEmptyIngredients marks a supplied ingredient list with no entries
	ErrEmptyIngredients = errors.New("at least one ingredient is required")
	// ErrEmptyInstructions marks a supplied instruction list with no entries
	ErrEmptyInstructions = errors.New("at least one instruction step is required")
	// ErrValueOutOfRange marks a rating value outside [1, 5]
	ErrValueOutOfRange = errors.New("rating must be between 1 and 5")
)

// InvalidCategoryError reports an unknown recipe category
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("unknown recipe category: %s", e.Category)
}

// InvalidMealTypeError reports an unknown meal slot in a save-week payload
type InvalidMealTypeError struct {
	MealType string
}

func (e *InvalidMealTypeError) Error() string {
	return fmt.Sprintf("unknown meal type: %s", e.MealType)
}

// InvalidPlanDateError reports a malformed date key in a save-week payload
type InvalidPlanDateError struct {
	Date string
}

func (e *InvalidPlanDateError) Error() string {
	return fmt.Sprintf("invalid meal plan date: %s", e.Date)
}

// DateOutsideWeekError reports a date key outside the requested week range
type DateOutsideWeekError struct {
	Date string
}

func (e *DateOutsideWeekError) Error() string {
	return fmt.Sprintf("date outside the requested week: %s", e.Date)
}
