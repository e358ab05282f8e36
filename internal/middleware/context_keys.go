package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated user's ID. The same key is used in the
// Gin context map and the standard request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user ID set by the auth
// middleware, checking the Gin context first and the request context second.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok
	}
	if v, ok := c.Request.Context().Value(userIDKey).(string); ok {
		return v, true
	}
	return "", false
}
