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

// MealPlanHandler handles weekly meal-plan API requests
type MealPlanHandler struct {
	mealPlanService *service.MealPlanService
}

// NewMealPlanHandler creates a new MealPlanHandler
func NewMealPlanHandler(mealPlanService *service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanService: mealPlanService,
	}
}

// GetWeek handles fetching the authenticated user's plan for one week
// GET /api/meal-planner?weekStart=YYYY-MM-DD
func (h *MealPlanHandler) GetWeek(c *gin.Context) {
	entries, err := h.mealPlanService.GetWeek(middleware.GetUserID(c), c.Query("weekStart"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidWeekStart) {
			response.BadRequest(c, i18n.Tr(c, "invalid_week_start"))
			return
		}
		middleware.LogError("get meal plan failed: %v", err)
		response.InternalError(c, i18n.Tr(c, "server_error"))
		return
	}

	response.Success(c, i18n.Tr(c, "meal_plan_fetched_successfully"), gin.H{
		"entries": entries,
	})
}

// SaveWeek handles replacing the authenticated user's plan for one week.
// Replace, not merge: assignments missing from the payload are erased.
// POST /api/meal-planner/save-week
func (h *MealPlanHandler) SaveWeek(c *gin.Context) {
	var req service.SaveWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, i18n.Tr(c, "invalid_week_start"))
		return
	}

	if err := h.mealPlanService.SaveWeek(middleware.GetUserID(c), &req); err != nil {
		var mealErr *service.InvalidMealTypeError
		var dateErr *service.InvalidPlanDateError
		var rangeErr *service.DateOutsideWeekError
		switch {
		case errors.Is(err, service.ErrInvalidWeekStart):
			response.BadRequest(c, i18n.Tr(c, "invalid_week_start"))
		case errors.As(err, &mealErr):
			response.BadRequest(c, i18n.Tr(c, "invalid_meal_type", mealErr.MealType))
		case errors.As(err, &dateErr):
			response.BadRequest(c, i18n.Tr(c, "invalid_plan_date", dateErr.Date))
		case errors.As(err, &rangeErr):
			response.BadRequest(c, i18n.Tr(c, "date_outside_week", rangeErr.Date))
		case errors.Is(err, service.ErrInvalidID):
			response.BadRequest(c, i18n.Tr(c, "invalid_recipe_id_format"))
		default:
			middleware.LogError("save meal plan failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Success(c, i18n.Tr(c, "meal_plan_saved_successfully"), nil)
}

// RemoveEntry handles removing one meal-plan entry, creator only
// DELETE /api/meal-planner/:id
func (h *MealPlanHandler) RemoveEntry(c *gin.Context) {
	err := h.mealPlanService.RemoveEntry(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			response.BadRequest(c, i18n.Tr(c, "invalid_recipe_id_format"))
		case errors.Is(err, repository.ErrMealPlanEntryNotFound):
			response.NotFound(c, i18n.Tr(c, "meal_plan_entry_not_found"))
		case errors.Is(err, service.ErrForbidden):
			response.Forbidden(c, i18n.Tr(c, "not_authorized_remove_entry"))
		default:
			middleware.LogError("remove meal plan entry failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Success(c, i18n.Tr(c, "meal_plan_entry_removed"), nil)
}

// RegisterRoutes registers meal-planner routes; all require auth
func (h *MealPlanHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	planner := rg.Group("/meal-planner", authMiddleware)
	{
		planner.GET("", h.GetWeek)
		planner.POST("/save-week", h.SaveWeek)
		planner.DELETE("/:id", h.RemoveEntry)
	}
}
