package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/velstra/spendboard/internal/core/ports/services"
)

// publicPaths need no authentication of any kind.
var publicPaths = map[string]bool{
	"/api/v1/auth/login":   true,
	"/api/v1/auth/refresh": true,
	"/api/v1/health":       true,
}

// APITokenAuth authenticates automation clients via the x-api-key header.
// It runs before the JWT middleware; on success it marks the request as
// authenticated so the JWT check is skipped. A missing or invalid key falls
// through to JWT authentication instead of rejecting outright.
func APITokenAuth(tokenSvc services.APITokenSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if publicPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		apiKey := c.GetHeader("x-api-key")
		if apiKey == "" {
			c.Next()
			return
		}

		user, err := tokenSvc.ValidateToken(c.Request.Context(), apiKey)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("API key rejected, falling back to JWT auth", slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Set(string(userIDKey), user.UserID)
		c.Set("authMethod", "api_token")
		c.Next()
	}
}
