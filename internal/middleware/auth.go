package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recipeshare/server/internal/i18n"
	"github.com/recipeshare/server/internal/repository"
	"github.com/recipeshare/server/internal/service"
	"github.com/recipeshare/server/pkg/response"
)

const (
	// ContextKeyUserID is the key for the authenticated user's ID in gin context
	ContextKeyUserID = "user_id"
	// ContextKeyUsername is the key for the authenticated username in gin context
	ContextKeyUsername = "username"
)

// AuthMiddleware creates a JWT bearer-token authentication middleware.
// It verifies signature and expiry, then resolves the encoded identity to a
// live user record; a token whose user has since vanished is rejected.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, i18n.Tr(c, "not_authorized_no_token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, i18n.Tr(c, "not_authorized_no_token"))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				response.Unauthorized(c, i18n.Tr(c, "not_authorized_token_expired"))
			} else {
				response.Unauthorized(c, i18n.Tr(c, "not_authorized_token_failed"))
			}
			c.Abort()
			return
		}

		user, err := authService.GetUserByID(claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				response.Unauthorized(c, i18n.Tr(c, "not_authorized_user_not_found"))
			} else {
				response.InternalError(c, i18n.Tr(c, "server_error"))
			}
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUsername, user.Username)

		c.Next()
	}
}

// GetUserID gets the authenticated user's ID from the gin context
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

// GetUsername gets the authenticated username from the gin context
func GetUsername(c *gin.Context) string {
	return c.GetString(ContextKeyUsername)
}
