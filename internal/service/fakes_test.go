package service_test

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/repository"
	"gorm.io/gorm"
)

// In-memory store fakes mirroring the repository semantics, so the services
// can be exercised without a database.

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = time.Now()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByID(id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range f.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) ExistsByEmail(email string) (bool, error) {
	_, err := f.GetByEmail(email)
	return err == nil, nil
}

func (f *fakeUserStore) ExistsByEmailExcluding(email, excludeID string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range f.users {
		if user.Email == email && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ExistsByUsername(username string) (bool, error) {
	for _, user := range f.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Update(user *models.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

type fakeRecipeStore struct {
	recipes map[string]*models.Recipe
	seq     int
}

func newFakeRecipeStore() *fakeRecipeStore {
	return &fakeRecipeStore{recipes: map[string]*models.Recipe{}}
}

func (f *fakeRecipeStore) Create(recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	f.seq++
	recipe.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Second)
	cp := *recipe
	f.recipes[recipe.ID] = &cp
	return nil
}

func (f *fakeRecipeStore) GetByID(id string) (*models.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, repository.ErrRecipeNotFound
	}
	cp := *recipe
	return &cp, nil
}

func (f *fakeRecipeStore) GetByIDDetailed(id string) (*models.Recipe, error) {
	return f.GetByID(id)
}

func (f *fakeRecipeStore) List(filter repository.RecipeFilter) ([]models.Recipe, error) {
	var out []models.Recipe
	for _, recipe := range f.recipes {
		if filter.Category != "" && string(recipe.Category) != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(recipe.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.AuthorID != "" && recipe.OwnerID != filter.AuthorID {
			continue
		}
		out = append(out, *recipe)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRecipeStore) SearchByIngredients(terms []string) ([]models.Recipe, error) {
	var out []models.Recipe
	for _, recipe := range f.recipes {
		joined := strings.ToLower(strings.Join(recipe.Ingredients, "\n"))
		matchesAll := true
		for _, term := range terms {
			if !strings.Contains(joined, strings.ToLower(term)) {
				matchesAll = false
				break
			}
		}
		if matchesAll {
			out = append(out, *recipe)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRecipeStore) Save(recipe *models.Recipe) error {
	cp := *recipe
	f.recipes[recipe.ID] = &cp
	return nil
}

func (f *fakeRecipeStore) Delete(id string) error {
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeStore) UpdateRatingSummary(id string, average float64, count int64) error {
	recipe, ok := f.recipes[id]
	if !ok {
		return repository.ErrRecipeNotFound
	}
	recipe.AverageRating = average
	recipe.RatingCount = count
	return nil
}

type fakeRatingStore struct {
	ratings map[string]*models.Rating
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{ratings: map[string]*models.Rating{}}
}

func (f *fakeRatingStore) Create(rating *models.Rating) error {
	for _, existing := range f.ratings {
		if existing.RecipeID == rating.RecipeID && existing.UserID == rating.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if rating.ID == "" {
		rating.ID = uuid.NewString()
	}
	cp := *rating
	f.ratings[rating.ID] = &cp
	return nil
}

func (f *fakeRatingStore) GetByID(id string) (*models.Rating, error) {
	rating, ok := f.ratings[id]
	if !ok {
		return nil, repository.ErrRatingNotFound
	}
	cp := *rating
	return &cp, nil
}

func (f *fakeRatingStore) GetByRecipeAndUser(recipeID, userID string) (*models.Rating, error) {
	for _, rating := range f.ratings {
		if rating.RecipeID == recipeID && rating.UserID == userID {
			cp := *rating
			return &cp, nil
		}
	}
	return nil, repository.ErrRatingNotFound
}

func (f *fakeRatingStore) ListByRecipe(recipeID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, rating := range f.ratings {
		if rating.RecipeID == recipeID {
			out = append(out, *rating)
		}
	}
	return out, nil
}

func (f *fakeRatingStore) Save(rating *models.Rating) error {
	cp := *rating
	f.ratings[rating.ID] = &cp
	return nil
}

func (f *fakeRatingStore) Delete(id string) error {
	delete(f.ratings, id)
	return nil
}

func (f *fakeRatingStore) AggregateByRecipe(recipeID string) (float64, int64, error) {
	var sum float64
	var count int64
	for _, rating := range f.ratings {
		if rating.RecipeID == recipeID {
			sum += float64(rating.Value)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

type fakeMealPlanStore struct {
	entries map[string]*models.MealPlanEntry
}

func newFakeMealPlanStore() *fakeMealPlanStore {
	return &fakeMealPlanStore{entries: map[string]*models.MealPlanEntry{}}
}

func (f *fakeMealPlanStore) ListByUserAndRange(userID string, start, end time.Time) ([]models.MealPlanEntry, error) {
	var out []models.MealPlanEntry
	for _, entry := range f.entries {
		if entry.UserID == userID && !entry.Date.Before(start) && !entry.Date.After(end) {
			out = append(out, *entry)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (f *fakeMealPlanStore) ReplaceRange(userID string, start, end time.Time, entries []models.MealPlanEntry) error {
	for id, entry := range f.entries {
		if entry.UserID == userID && !entry.Date.Before(start) && !entry.Date.After(end) {
			delete(f.entries, id)
		}
	}
	for i := range entries {
		entry := entries[i]
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		f.entries[entry.ID] = &entry
	}
	return nil
}

func (f *fakeMealPlanStore) GetByID(id string) (*models.MealPlanEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, repository.ErrMealPlanEntryNotFound
	}
	cp := *entry
	return &cp, nil
}

func (f *fakeMealPlanStore) Delete(id string) error {
	delete(f.entries, id)
	return nil
}
