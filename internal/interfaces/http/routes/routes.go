// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/weirdbites/storefront/internal/config"
	"github.com/weirdbites/storefront/internal/interfaces/http/handlers"
	"github.com/weirdbites/storefront/internal/interfaces/http/middleware"
	"github.com/weirdbites/storefront/internal/pkg/features"
	"gorm.io/gorm"
)

// SetupProductRoutes sets up product related routes
func SetupProductRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config, log logrus.FieldLogger) {
	productHandler := handlers.NewProductHandler(db, cfg, log)

	products := rg.Group("/products")
	products.Use(middleware.RequireFeature(cfg.Features, features.ProductListing))
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/bulk", productHandler.GetBulkProducts)
		products.GET("/:id", middleware.RequireFeature(cfg.Features, features.ProductDetail), productHandler.GetProduct)
	}
}

// SetupCategoryRoutes sets up category related routes
func SetupCategoryRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config, log logrus.FieldLogger) {
	categoryHandler := handlers.NewCategoryHandler(db, cfg, log)

	categories := rg.Group("/categories")
	categories.Use(middleware.RequireFeature(cfg.Features, features.ProductFiltering))
	{
		categories.GET("", categoryHandler.GetCategories)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, stores middleware.CartStoreFactory, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(cfg)

	cartGroup := rg.Group("/cart")
	cartGroup.Use(
		middleware.RequireFeature(cfg.Features, features.ShoppingCart),
		middleware.CartProvider(cfg, stores),
	)
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:productId", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:productId", cartHandler.RemoveFromCart)
	}
}

// SetupFeatureRoutes sets up feature flag routes
func SetupFeatureRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	featureHandler := handlers.NewFeatureHandler(cfg)

	rg.GET("/features", featureHandler.GetFeatures)
}

// SetupPageRoutes sets up the page data routes
func SetupPageRoutes(rg *gin.RouterGroup, db *gorm.DB, stores middleware.CartStoreFactory, cfg *config.Config, log logrus.FieldLogger) {
	pageHandler := handlers.NewPageHandler(db, cfg, log)

	rg.GET("/home", pageHandler.Home)
	rg.GET("/products", middleware.RequireFeature(cfg.Features, features.ProductListing), pageHandler.Products)
	rg.GET("/products/:id", middleware.RequireFeature(cfg.Features, features.ProductDetail), pageHandler.ProductDetail)
	rg.GET("/cart",
		middleware.RequireFeature(cfg.Features, features.ShoppingCart),
		middleware.CartProvider(cfg, stores),
		pageHandler.Cart,
	)
}

// SetupRoutes wires every API and page route onto router
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient redis.Cmdable, cfg *config.Config, log logrus.FieldLogger) {
	stores := middleware.RedisCartStores(cfg, redisClient, log)

	api := router.Group("/api")
	SetupProductRoutes(api, db, cfg, log)
	SetupCategoryRoutes(api, db, cfg, log)
	SetupCartRoutes(api, stores, cfg)
	SetupFeatureRoutes(api, cfg)

	pages := router.Group("/pages")
	SetupPageRoutes(pages, db, stores, cfg, log)
}
