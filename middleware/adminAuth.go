package middleware

import (
	"crypto/subtle"
	"net/http"

	"roamvan/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the back-office endpoints with the shared
// x-api-key secret from configuration.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("x-api-key")
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing x-api-key header"})
			return
		}

		expected := config.AppConfig.AdminAPIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
