package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recipeshare/server/internal/i18n"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/repository"
	"github.com/recipeshare/server/internal/service"
	"github.com/recipeshare/server/pkg/response"
)

// RecipeHandler handles recipe API requests
type RecipeHandler struct {
	recipeService *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// Create handles recipe creation
// POST /api/recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var req service.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, i18n.Tr(c, "please_include_all_required_recipe_fields"))
		return
	}

	recipe, err := h.recipeService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		var catErr *service.InvalidCategoryError
		switch {
		case errors.As(err, &catErr):
			response.BadRequest(c, i18n.Tr(c, "invalid_category", catErr.Category))
		case errors.Is(err, service.ErrEmptyIngredients):
			response.BadRequest(c, i18n.Tr(c, "ingredients_must_be_array"))
		case errors.Is(err, service.ErrEmptyInstructions):
			response.BadRequest(c, i18n.Tr(c, "instructions_must_be_array"))
		default:
			middleware.LogError("create recipe failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Created(c, i18n.Tr(c, "recipe_created_successfully"), gin.H{
		"recipe": recipe,
	})
}

// List handles recipe listing with optional category, search and authorId
// filters, newest first
// GET /api/recipes
func (h *RecipeHandler) List(c *gin.Context) {
	filter := repository.RecipeFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		AuthorID: c.Query("authorId"),
	}

	recipes, err := h.recipeService.List(filter)
	if err != nil {
		middleware.LogError("list recipes failed: %v", err)
		response.InternalError(c, i18n.Tr(c, "server_error"))
		return
	}

	response.Success(c, i18n.Tr(c, "recipes_fetched_successfully"), gin.H{
		"count":   len(recipes),
		"recipes": recipes,
	})
}

// Search handles pantry search: recipes containing every listed ingredient
// GET /api/recipes/search?ingredients=a,b,c
func (h *RecipeHandler) Search(c *gin.Context) {
	raw := c.Query("ingredients")
	terms := []string{}
	for _, term := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(term); t != "" {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		response.BadRequest(c, i18n.Tr(c, "please_provide_ingredients"))
		return
	}

	recipes, err := h.recipeService.SearchByIngredients(terms)
	if err != nil {
		middleware.LogError("ingredient search failed: %v", err)
		response.InternalError(c, i18n.Tr(c, "server_error"))
		return
	}

	response.Success(c, i18n.Tr(c, "recipes_fetched_successfully"), gin.H{
		"count":   len(recipes),
		"recipes": recipes,
	})
}

// GetByID handles single recipe fetch with owner and ratings joined
// GET /api/recipes/:id
func (h *RecipeHandler) GetByID(c *gin.Context) {
	recipe, err := h.recipeService.Get(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			response.BadRequest(c, i18n.Tr(c, "invalid_recipe_id_format"))
		case errors.Is(err, repository.ErrRecipeNotFound):
			response.NotFound(c, i18n.Tr(c, "recipe_not_found"))
		default:
			middleware.LogError("get recipe failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Success(c, i18n.Tr(c, "recipe_fetched_successfully"), gin.H{
		"recipe": recipe,
	})
}

// Update handles partial recipe update, owner only
// PUT /api/recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	var req service.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	recipe, err := h.recipeService.Update(c.Param("id"), middleware.GetUserID(c), &req)
	if err != nil {
		var catErr *service.InvalidCategoryError
		switch {
		case errors.Is(err, service.ErrInvalidID):
			response.BadRequest(c, i18n.Tr(c, "invalid_recipe_id_format"))
		case errors.Is(err, repository.ErrRecipeNotFound):
			response.NotFound(c, i18n.Tr(c, "recipe_not_found"))
		case errors.Is(err, service.ErrForbidden):
			response.Forbidden(c, i18n.Tr(c, "not_authorized_update_recipe"))
		case errors.As(err, &catErr):
			response.BadRequest(c, i18n.Tr(c, "invalid_category", catErr.Category))
		case errors.Is(err, service.ErrEmptyIngredients):
			response.BadRequest(c, i18n.Tr(c, "ingredients_must_be_array"))
		case errors.Is(err, service.ErrEmptyInstructions):
			response.BadRequest(c, i18n.Tr(c, "instructions_must_be_array"))
		default:
			middleware.LogError("update recipe failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Success(c, i18n.Tr(c, "recipe_updated_successfully"), gin.H{
		"recipe": recipe,
	})
}

// Delete handles recipe deletion, owner only; ratings and meal-plan entries
// referencing the recipe go with it
// DELETE /api/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	err := h.recipeService.Delete(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			response.BadRequest(c, i18n.Tr(c, "invalid_recipe_id_format"))
		case errors.Is(err, repository.ErrRecipeNotFound):
			response.NotFound(c, i18n.Tr(c, "recipe_not_found"))
		case errors.Is(err, service.ErrForbidden):
			response.Forbidden(c, i18n.Tr(c, "not_authorized_delete_recipe"))
		default:
			middleware.LogError("delete recipe failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Success(c, i18n.Tr(c, "recipe_deleted_successfully"), nil)
}

// RegisterRoutes registers recipe routes; reads are public, writes require auth
func (h *RecipeHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	recipes := rg.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/search", h.Search)
		recipes.GET("/:id", h.GetByID)

		recipes.POST("", authMiddleware, h.Create)
		recipes.PUT("/:id", authMiddleware, h.Update)
		recipes.DELETE("/:id", authMiddleware, h.Delete)
	}
}
