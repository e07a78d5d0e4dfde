package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taxibook/internal/auth"
)

const (
	bearerPrefix = "Bearer "

	contextUserIDKey   = "authUserID"
	contextUserRoleKey = "authUserRole"
)

// AuthMiddleware returns middleware that requires a valid bearer token.
// On success the token's user ID and role are stored in the Gin context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Set(contextUserRoleKey, claims.Role)
		c.Next()
	}
}

// UserID returns the authenticated user ID from the Gin context, or "".
func UserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}

// UserRole returns the authenticated user role from the Gin context, or "".
func UserRole(c *gin.Context) string {
	return c.GetString(contextUserRoleKey)
}
