// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weirdbites/storefront/internal/config"
	"github.com/weirdbites/storefront/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints. The cart itself is attached to the
// request by middleware.CartProvider.
type CartHandler struct {
	config *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cfg *config.Config) *CartHandler {
	return &CartHandler{
		config: cfg,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// UpdateCartItemRequest represents update cart item request.
// Any integer is accepted, including zero and negatives.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	current := middleware.MustCart(c)

	c.JSON(http.StatusOK, gin.H{
		"items":         current.Items(),
		"totalQuantity": current.TotalQuantity(),
	})
}

// GetCartCount handles GET /api/cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	current := middleware.MustCart(c)

	c.JSON(http.StatusOK, gin.H{
		"totalQuantity": current.TotalQuantity(),
	})
}

// AddToCart handles POST /api/cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	current := middleware.MustCart(c)
	current.AddItem(c.Request.Context(), req.ProductID)

	c.JSON(http.StatusOK, gin.H{
		"message":       "Added to cart",
		"items":         current.Items(),
		"totalQuantity": current.TotalQuantity(),
	})
}

// UpdateCartItem handles PUT /api/cart/items/:productId
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	current := middleware.MustCart(c)
	current.UpdateQuantity(c.Request.Context(), c.Param("productId"), *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"items":         current.Items(),
		"totalQuantity": current.TotalQuantity(),
	})
}

// RemoveFromCart handles DELETE /api/cart/items/:productId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	current := middleware.MustCart(c)
	current.RemoveItem(c.Request.Context(), c.Param("productId"))

	c.JSON(http.StatusOK, gin.H{
		"items":         current.Items(),
		"totalQuantity": current.TotalQuantity(),
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	current := middleware.MustCart(c)
	current.ClearCart(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message":       "Cart cleared",
		"items":         current.Items(),
		"totalQuantity": 0,
	})
}
