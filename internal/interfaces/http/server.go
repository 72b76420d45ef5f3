// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/weirdbites/storefront/internal/config"
	"github.com/weirdbites/storefront/internal/infrastructure/database/postgres"
	"github.com/weirdbites/storefront/internal/interfaces/http/middleware"
	"github.com/weirdbites/storefront/internal/interfaces/http/routes"
	"github.com/weirdbites/storefront/internal/pkg/features"
	"gorm.io/gorm"
)

// Server represents the HTTP server
type Server struct {
	config      *config.Config
	gin         *gin.Engine
	httpServer  *http.Server
	db          *gorm.DB
	redisClient redis.Cmdable
	log         *logrus.Logger
}

// NewServer creates a new HTTP server instance with its routes in place
func NewServer(cfg *config.Config, db *gorm.DB, redisClient redis.Cmdable, log *logrus.Logger) *Server {
	// Set Gin mode based on environment
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case cfg.App.Environment == "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	s := &Server{
		config:      cfg,
		gin:         gin.New(),
		db:          db,
		redisClient: redisClient,
		log:         log,
	}

	if err := s.gin.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		log.WithError(err).Warn("Invalid trusted proxies, trusting none")
		_ = s.gin.SetTrustedProxies(nil)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.log.WithFields(logrus.Fields{
		"port":   s.config.Server.Port,
		"health": fmt.Sprintf("http://localhost:%s/api/health", s.config.Server.Port),
	}).Info("HTTP server starting")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.log.Info("Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.log.Info("HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	// Recovery middleware - recover from panics
	s.gin.Use(gin.Recovery())

	// Request ID first so the access log can see it
	s.gin.Use(middleware.RequestID())

	s.gin.Use(middleware.Logger(s.log))

	s.gin.Use(middleware.CORS(s.config))

	s.gin.Use(middleware.SecurityHeaders())

	s.gin.Use(middleware.RateLimit(s.config, s.redisClient, s.log))

	s.gin.Use(middleware.RequestSizeLimit(1 << 20)) // 1MB, bodies are tiny JSON

	s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
}

// endpoint is one entry of the development index
type endpoint struct {
	Name    string        `json:"name"`
	Path    string        `json:"path"`
	feature features.Flag
}

func (e endpoint) Feature() features.Flag { return e.feature }

var indexEndpoints = []endpoint{
	{Name: "health", Path: "/api/health"},
	{Name: "features", Path: "/api/features"},
	{Name: "products", Path: "/api/products", feature: features.ProductListing},
	{Name: "product", Path: "/api/products/:id", feature: features.ProductDetail},
	{Name: "bulk", Path: "/api/products/bulk", feature: features.ProductListing},
	{Name: "categories", Path: "/api/categories", feature: features.ProductFiltering},
	{Name: "cart", Path: "/api/cart", feature: features.ShoppingCart},
	{Name: "home", Path: "/pages/home"},
	{Name: "listing", Path: "/pages/products", feature: features.ProductListing},
	{Name: "detail", Path: "/pages/products/:id", feature: features.ProductDetail},
	{Name: "cartPage", Path: "/pages/cart", feature: features.ShoppingCart},
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/api/health", s.healthCheck)

	routes.SetupRoutes(s.gin, s.db, s.redisClient, s.config, s.log)

	// Endpoint index in development
	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name + " API",
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"endpoints":   features.Filter(s.config.Features, indexEndpoints),
			})
		})
	}
}

// healthCheck handles GET /api/health. Only the database decides the status;
// the cache is reported for information.
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	cache := "connected"
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.WithError(err).Warn("Redis ping failed")
		cache = "disconnected"
	}

	if err := postgres.Ping(ctx, s.db); err != nil {
		s.log.WithError(err).Error("Database ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":      "error",
			"message":     "Database connection failed",
			"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
			"database":    "disconnected",
			"cache":       cache,
			"environment": s.config.App.Environment,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"message":     "API and database are operational",
		"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
		"database":    "connected",
		"cache":       cache,
		"environment": s.config.App.Environment,
	})
}
