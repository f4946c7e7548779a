package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/recipeshare/server/internal/i18n"
)

// LocaleMiddleware resolves the response language for each request: the
// lang query parameter wins over Accept-Language, falling back to the
// configured default.
func LocaleMiddleware(defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.Resolve(c.Query("lang"), c.GetHeader("Accept-Language"), defaultLocale)
		c.Set(i18n.ContextKeyLocale, locale)
		c.Next()
	}
}
