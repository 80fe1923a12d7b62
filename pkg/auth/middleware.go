package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminCtxKey holds the authenticated admin username in the gin context.
const AdminCtxKey = "admin"

// Middleware rejects requests without a valid Bearer token.
func Middleware(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token format"})
			return
		}

		admin, err := a.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			return
		}

		c.Set(AdminCtxKey, admin)
		c.Next()
	}
}
