package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/recipeshare/server/internal/models"
	"github.com/redis/go-redis/v9"
)

const recipeDetailKeyPrefix = "recipe:detail:"

// RecipeCache keeps recipe detail responses warm in redis. Every write to a
// recipe or its ratings invalidates the cached entry, so a stale detail can
// live at most until the next mutation or the TTL, whichever comes first.
// A nil cache (no redis configured) degrades to pass-through.
type RecipeCache struct {
	rdb *redis.Client
	ttl time.Duration
	ctx context.Context
}

// NewRecipeCache creates a new RecipeCache
func NewRecipeCache(rdb *redis.Client, ttl time.Duration) *RecipeCache {
	return &RecipeCache{
		rdb: rdb,
		ttl: ttl,
		ctx: context.Background(),
	}
}

// GetDetail returns the cached recipe detail, or (nil, false) on a miss
func (c *RecipeCache) GetDetail(id string) (*models.Recipe, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(c.ctx, recipeDetailKeyPrefix+id).Bytes()
	if err != nil {
		return nil, false
	}
	var recipe models.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, false
	}
	return &recipe, true
}

// SetDetail stores a recipe detail under its ID
func (c *RecipeCache) SetDetail(recipe *models.Recipe) {
	if c == nil || c.rdb == nil || recipe == nil {
		return
	}
	data, err := json.Marshal(recipe)
	if err != nil {
		return
	}
	c.rdb.Set(c.ctx, recipeDetailKeyPrefix+recipe.ID, data, c.ttl)
}

// Invalidate drops the cached detail of a recipe
func (c *RecipeCache) Invalidate(id string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(c.ctx, recipeDetailKeyPrefix+id)
}
