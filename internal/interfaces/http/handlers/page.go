// internal/interfaces/http/handlers/page.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/weirdbites/storefront/internal/config"
	"github.com/weirdbites/storefront/internal/domain/cart"
	"github.com/weirdbites/storefront/internal/domain/product"
	"github.com/weirdbites/storefront/internal/interfaces/http/middleware"
	"github.com/weirdbites/storefront/internal/pkg/features"
	"github.com/weirdbites/storefront/internal/pkg/pagination"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	featuredOnHome = 6
	siteName       = "WeirdBites"
)

// PageHandler serves the data behind each storefront page
type PageHandler struct {
	productService  *product.Service
	categoryService *product.CategoryService
	config          *config.Config
	log             logrus.FieldLogger
}

// NewPageHandler creates a new page handler
func NewPageHandler(db *gorm.DB, cfg *config.Config, log logrus.FieldLogger) *PageHandler {
	return &PageHandler{
		productService:  product.NewService(db, cfg),
		categoryService: product.NewCategoryService(db, cfg),
		config:          cfg,
		log:             log,
	}
}

// PageMeta is the document title and description of a page
type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ListingPage is the model of the product listing page
type ListingPage struct {
	Products         []product.Product `json:"products"`
	Pagination       pagination.Meta   `json:"pagination"`
	SelectedCategory string            `json:"selectedCategory"`
	Error            string            `json:"error,omitempty"`
}

// DetailPage is the model of the product detail page
type DetailPage struct {
	Product        *product.Product    `json:"product"`
	FormattedPrice string              `json:"formattedPrice"`
	StockStatus    product.StockStatus `json:"stockStatus"`
	StockMessage   string              `json:"stockMessage"`
	InStock        bool                `json:"inStock"`
	LowStock       bool                `json:"lowStock"`
	Meta           PageMeta            `json:"meta"`
}

// Home handles GET /pages/home
func (h *PageHandler) Home(c *gin.Context) {
	var (
		featured   []product.Product
		categories = []product.CategoryCount{}
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		featured, err = h.productService.GetFeaturedProducts(ctx, featuredOnHome)
		return err
	})
	if h.config.Features.IsEnabled(features.ProductFiltering) {
		g.Go(func() error {
			var err error
			categories, err = h.categoryService.GetCategoriesWithCount(ctx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		h.log.WithError(err).Error("Error loading home page")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load home page",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"featured":   featured,
		"categories": categories,
	})
}

// Products handles GET /pages/products. Bad paging params fall back to the
// defaults and a failed query renders an empty page with an error message.
func (h *PageHandler) Products(c *gin.Context) {
	flags := h.config.Features

	page, pageSize := pagination.Normalize(queryInt(c, "page"), queryInt(c, "pageSize"))
	if !flags.IsEnabled(features.ProductPagination) {
		page, pageSize = 1, pagination.MaxPageSize
	}

	category := features.WithFeature(flags, features.ProductFiltering, func() string {
		return c.Query("category")
	}, nil)

	resp, err := h.productService.GetProducts(c.Request.Context(), &product.ProductListRequest{
		Page:     page,
		PageSize: pageSize,
		Category: category,
	})
	if err != nil {
		h.log.WithError(err).Error("Error fetching products")
		c.JSON(http.StatusOK, ListingPage{
			Products: []product.Product{},
			Pagination: pagination.Meta{
				CurrentPage: page,
				PageSize:    pageSize,
			},
			SelectedCategory: category,
			Error:            "Failed to load products",
		})
		return
	}

	meta := resp.Pagination
	if !flags.IsEnabled(features.ProductPagination) && meta.TotalPages > 1 {
		meta.TotalPages = 1
	}

	c.JSON(http.StatusOK, ListingPage{
		Products:         resp.Products,
		Pagination:       meta,
		SelectedCategory: category,
	})
}

// ProductDetail handles GET /pages/products/:id
func (h *PageHandler) ProductDetail(c *gin.Context) {
	p, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"meta": PageMeta{Title: "Product Not Found"},
			})
			return
		}
		h.log.WithError(err).Error("Error fetching product")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch product",
		})
		return
	}

	c.JSON(http.StatusOK, DetailPage{
		Product:        p,
		FormattedPrice: p.GetFormattedPrice(),
		StockStatus:    product.GetStockStatus(p.Stock),
		StockMessage:   product.GetStockMessage(p.Stock),
		InStock:        p.IsInStock(),
		LowStock:       p.IsLowStock(),
		Meta: PageMeta{
			Title:       p.Name + " - " + siteName,
			Description: p.Description,
		},
	})
}

// Cart handles GET /pages/cart
func (h *PageHandler) Cart(c *gin.Context) {
	lines := middleware.MustCart(c).Items()

	products, err := h.productService.GetProductsByIDs(c.Request.Context(), cart.ProductIDs(lines))
	if err != nil {
		h.log.WithError(err).Error("Error fetching cart products")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch cart products",
		})
		return
	}

	c.JSON(http.StatusOK, cart.BuildView(lines, products))
}

// queryInt reads an integer query param; missing or malformed yields 0
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
