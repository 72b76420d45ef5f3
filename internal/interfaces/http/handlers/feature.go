// internal/interfaces/http/handlers/feature.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weirdbites/storefront/internal/config"
)

// FeatureHandler exposes the current feature flag state
type FeatureHandler struct {
	config *config.Config
}

// NewFeatureHandler creates a new feature handler
func NewFeatureHandler(cfg *config.Config) *FeatureHandler {
	return &FeatureHandler{config: cfg}
}

// GetFeatures handles GET /api/features
func (h *FeatureHandler) GetFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"enabled":  h.config.Features.Enabled(),
		"disabled": h.config.Features.Disabled(),
	})
}
