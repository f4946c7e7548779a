package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/recipeshare/server/internal/i18n"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/repository"
	"github.com/recipeshare/server/internal/service"
	"github.com/recipeshare/server/pkg/response"
)

// AuthHandler handles authentication API requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// publicUser strips everything but the public profile fields
func publicUser(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"createdAt": user.CreatedAt,
	}
}

// Register handles user registration
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, i18n.Tr(c, "please_include_all_auth_fields"))
		return
	}

	user, token, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, i18n.Tr(c, "user_already_exists_email"))
		case errors.Is(err, service.ErrUsernameTaken):
			response.Conflict(c, i18n.Tr(c, "username_already_taken"))
		default:
			middleware.LogError("register failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Created(c, i18n.Tr(c, "user_registered_successfully"), gin.H{
		"user":  publicUser(user),
		"token": token,
	})
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, i18n.Tr(c, "please_include_all_auth_fields"))
		return
	}

	user, token, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, i18n.Tr(c, "invalid_credentials"))
			return
		}
		middleware.LogError("login failed: %v", err)
		response.InternalError(c, i18n.Tr(c, "server_error"))
		return
	}

	response.Success(c, i18n.Tr(c, "login_successful"), gin.H{
		"user":  publicUser(user),
		"token": token,
	})
}

// GetProfile returns the authenticated user's own profile
// GET /api/auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.authService.GetUserByID(middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, i18n.Tr(c, "user_not_found_general"))
			return
		}
		middleware.LogError("get profile failed: %v", err)
		response.InternalError(c, i18n.Tr(c, "server_error"))
		return
	}

	response.Success(c, i18n.Tr(c, "profile_fetched_successfully"), gin.H{
		"user": publicUser(user),
	})
}

// UpdateProfile updates the authenticated user's own profile
// PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, i18n.Tr(c, "user_not_found_general"))
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, i18n.Tr(c, "email_already_in_use"))
		case errors.Is(err, service.ErrUsernameTaken):
			response.Conflict(c, i18n.Tr(c, "username_already_taken"))
		default:
			middleware.LogError("update profile failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Success(c, i18n.Tr(c, "profile_updated_successfully"), gin.H{
		"user": publicUser(user),
	})
}

// UpdatePassword changes the authenticated user's password after verifying
// the current one
// PUT /api/auth/update-password
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req service.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, i18n.Tr(c, "please_provide_passwords"))
		return
	}

	err := h.authService.UpdatePassword(middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, i18n.Tr(c, "user_not_found_general"))
		case errors.Is(err, service.ErrWrongPassword):
			response.BadRequest(c, i18n.Tr(c, "invalid_current_password"))
		default:
			middleware.LogError("update password failed: %v", err)
			response.InternalError(c, i18n.Tr(c, "server_error"))
		}
		return
	}

	response.Success(c, i18n.Tr(c, "password_updated_successfully"), nil)
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		auth.GET("/profile", authMiddleware, h.GetProfile)
		auth.PUT("/profile", authMiddleware, h.UpdateProfile)
		auth.PUT("/update-password", authMiddleware, h.UpdatePassword)
	}
}
