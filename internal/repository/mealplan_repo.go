package repository

import (
	"errors"
	"time"

	"github.com/recipeshare/server/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMealPlanEntryNotFound = errors.New("meal plan entry not found")
)

// MealPlanRepository handles meal-plan data access
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new MealPlanRepository
func NewMealPlanRepository(db *gorm.DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// ListByUserAndRange retrieves all entries of one user within [start, end]
// inclusive, with recipes joined, ordered by date
func (r *MealPlanRepository) ListByUserAndRange(userID string, start, end time.Time) ([]models.MealPlanEntry, error) {
	var entries []models.MealPlanEntry
	result := r.db.
		Preload("Recipe").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

// ReplaceRange deletes every entry of the user within [start, end] and
// inserts the given entries in their place, all in one transaction.
// Replace, not merge: assignments missing from entries are erased.
func (r *MealPlanRepository) ReplaceRange(userID string, start, end time.Time, entries []models.MealPlanEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
			Delete(&models.MealPlanEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

// GetByID retrieves a single entry by ID
func (r *MealPlanRepository) GetByID(id string) (*models.MealPlanEntry, error) {
	var entry models.MealPlanEntry
	result := r.db.Where("id = ?", id).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMealPlanEntryNotFound
		}
		return nil, result.Error
	}
	return &entry, nil
}

// Delete removes a single entry
func (r *MealPlanRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.MealPlanEntry{}).Error
}
