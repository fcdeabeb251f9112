package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pinpoint/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Authorization header missing or invalid")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil || claims == nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RoleMiddleware rejects callers whose token does not carry the required
// role. It must run after JWTAuthMiddleware.
func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"errors": []gin.H{{"title": "Forbidden", "detail": "insufficient permissions"}},
			})
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"errors": []gin.H{{"title": "Unauthorized", "detail": detail}},
	})
}
