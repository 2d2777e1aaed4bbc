package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const adminUserKey = "adminUser"

// TokenVerifier checks a bearer token and returns the authenticated
// admin username.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// RequireAdmin guards admin-scoped routes. It expects an
// "Authorization: Bearer <token>" header issued by the login endpoint.
func RequireAdmin(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		username, err := verifier.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(adminUserKey, username)
		c.Next()
	}
}

// GetAdminUser returns the username set by RequireAdmin, if any.
func GetAdminUser(c *gin.Context) string {
	return c.GetString(adminUserKey)
}
