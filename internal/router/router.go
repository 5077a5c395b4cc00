// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shop-admin/internal/config"
	"github.com/javajoker/shop-admin/internal/handlers"
	"github.com/javajoker/shop-admin/internal/middleware"
	"github.com/javajoker/shop-admin/internal/repository"
	"github.com/javajoker/shop-admin/internal/services"
)

const Version = "1.0.0"

// Initialize builds the engine. Background work started for the engine,
// such as rate limiter cleanup, stops when ctx is done.
func Initialize(ctx context.Context, stores repository.Stores, cfg *config.Config) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(stores.Products, stores.Categories)
	sellerService := services.NewSellerService(stores.Sellers)
	authService := services.NewAuthService(cfg.Auth)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(productService)
	sellerHandler := handlers.NewSellerHandler(sellerService)
	authHandler := handlers.NewAuthHandler(authService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigin))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit(ctx, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.LoginRateLimit(ctx, cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst))
		{
			auth.POST("/login", authHandler.Login)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		// Category routes
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id/products", categoryHandler.GetCategoryProducts)
		}

		// Dashboard
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", productHandler.GetDashboardStats)
		}

		// Seller routes
		sellers := api.Group("/sellers")
		{
			sellers.GET("", sellerHandler.GetSellers)
			sellers.GET("/count", sellerHandler.CountSellers)
			sellers.GET("/:id", sellerHandler.GetSeller)
			sellers.POST("", sellerHandler.CreateSeller)
			sellers.PUT("/:id", sellerHandler.UpdateSeller)
			sellers.DELETE("/:id", sellerHandler.DeleteSeller)
		}
	}

	return r
}
