package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/recipeshare/server/internal/i18n"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/repository"
	"github.com/recipeshare/server/internal/service"
	"github.com/recipeshare/server/pkg/response"
)

// RatingHandler handles rating API requests
type RatingHandler struct {
	ratingService *service.RatingService
}

// NewRatingHandler creates a new RatingHandler
func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// Create handles rating submission
// POST /api/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	var req service.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, i18n.Tr(c, "please_provide_recipe_and_rating"))
		return
	}

	rating, err := h.ratingService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			response.BadRequest(c, i18n.Tr(c, "invalid_recipe_id_format"))
		case errors.Is(err, service.ErrValueOutOfRange):
			response.BadRequest(c, i18n.Tr(c, "rating_value_out_of_range"))
		case errors.Is(err, repository.ErrRecipeNotFound):
			response.NotFound(c, i18n.Tr(c, "recipe_not_found"))
		case errors.Is(err, service.ErrAlreadyRated):
			response.Conflict(c, i18n.Tr(c, "already_rated_recipe"))
		default:
			middleware.LogError("create rating failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Created(c, i18n.Tr(c, "rating_submitted_successfully"), gin.H{
		"rating": rating,
	})
}

// ListForRecipe handles fetching all ratings of a recipe. No ratings is a
// 200 with an empty list, not a 404.
// GET /api/ratings/:recipeId
func (h *RatingHandler) ListForRecipe(c *gin.Context) {
	ratings, err := h.ratingService.ListForRecipe(c.Param("recipeId"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) {
			response.BadRequest(c, i18n.Tr(c, "invalid_recipe_id_format"))
			return
		}
		middleware.LogError("list ratings failed: %v", err)
		response.InternalError(c, i18n.Tr(c, "server_error"))
		return
	}

	message := i18n.Tr(c, "ratings_fetched_successfully")
	if len(ratings) == 0 {
		message = i18n.Tr(c, "no_ratings_found")
	}
	response.Success(c, message, gin.H{
		"count":   len(ratings),
		"ratings": ratings,
	})
}

// Update handles partial rating update, creator only
// PUT /api/ratings/:ratingId
func (h *RatingHandler) Update(c *gin.Context) {
	var req service.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, i18n.Tr(c, "rating_value_out_of_range"))
		return
	}

	rating, err := h.ratingService.Update(c.Param("ratingId"), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			response.BadRequest(c, i18n.Tr(c, "invalid_rating_id_format"))
		case errors.Is(err, service.ErrValueOutOfRange):
			response.BadRequest(c, i18n.Tr(c, "rating_value_out_of_range"))
		case errors.Is(err, repository.ErrRatingNotFound):
			response.NotFound(c, i18n.Tr(c, "rating_not_found"))
		case errors.Is(err, service.ErrForbidden):
			response.Forbidden(c, i18n.Tr(c, "not_authorized_update_rating"))
		default:
			middleware.LogError("update rating failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Success(c, i18n.Tr(c, "rating_updated_successfully"), gin.H{
		"rating": rating,
	})
}

// Delete handles rating deletion, creator only
// DELETE /api/ratings/:ratingId
func (h *RatingHandler) Delete(c *gin.Context) {
	err := h.ratingService.Delete(c.Param("ratingId"), middleware.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			response.BadRequest(c, i18n.Tr(c, "invalid_rating_id_format"))
		case errors.Is(err, repository.ErrRatingNotFound):
			response.NotFound(c, i18n.Tr(c, "rating_not_found"))
		case errors.Is(err, service.ErrForbidden):
			response.Forbidden(c, i18n.Tr(c, "not_authorized_delete_rating"))
		default:
			middleware.LogError("delete rating failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Success(c, i18n.Tr(c, "rating_deleted_successfully"), nil)
}

// RegisterRoutes registers rating routes; listing is public, mutations
// require auth
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	ratings := rg.Group("/ratings")
	{
		ratings.GET("/:recipeId", h.ListForRecipe)

		ratings.POST("", authMiddleware, h.Create)
		ratings.PUT("/:ratingId", authMiddleware, h.Update)
		ratings.DELETE("/:ratingId", authMiddleware, h.Delete)
	}
}
