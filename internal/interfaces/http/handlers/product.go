// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/weirdbites/storefront/internal/config"
	"github.com/weirdbites/storefront/internal/domain/product"
	"github.com/weirdbites/storefront/internal/pkg/pagination"
	"gorm.io/gorm"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *product.Service
	config         *config.Config
	log            logrus.FieldLogger
}

// NewProductHandler creates a new product handler
func NewProductHandler(db *gorm.DB, cfg *config.Config, log logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{
		productService: product.NewService(db, cfg),
		config:         cfg,
		log:            log,
	}
}

// ListProducts handles GET /api/products?limit=N
func (h *ProductHandler) ListProducts(c *gin.Context) {
	limit := pagination.DefaultPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > pagination.MaxPageSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter. Must be between 1 and 100.",
			})
			return
		}
		limit = parsed
	}

	products, err := h.productService.ListProducts(c.Request.Context(), limit)
	if err != nil {
		h.log.WithError(err).Error("Error fetching products")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch products",
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	p, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Product not found",
				"productId": id,
			})
			return
		}
		h.log.WithError(err).WithField("product_id", id).Error("Error fetching product")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch product",
		})
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetBulkProducts handles GET /api/products/bulk?ids=a,b,c
func (h *ProductHandler) GetBulkProducts(c *gin.Context) {
	raw := c.Query("ids")
	if strings.TrimSpace(raw) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing 'ids' query parameter",
		})
		return
	}

	ids := parseIDs(raw)
	if len(ids) > product.MaxBulkIDs {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Maximum 100 products can be fetched at once",
		})
		return
	}

	products, err := h.productService.GetProductsByIDs(c.Request.Context(), ids)
	if err != nil {
		h.log.WithError(err).Error("Error fetching bulk products")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
	})
}

// parseIDs splits a comma separated list, dropping blanks and repeats
func parseIDs(raw string) []string {
	seen := make(map[string]struct{})
	ids := []string{}
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
