// internal/interfaces/http/middleware/features.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weirdbites/storefront/internal/pkg/features"
)

// RequireFeature hides a route group behind a feature flag
func RequireFeature(flags features.Flags, flag features.Flag) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !flags.IsEnabled(flag) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": "Feature not available",
			})
			return
		}
		c.Next()
	}
}
