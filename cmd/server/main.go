package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pinkdoor/guestguide-backend/internal/config"
	"github.com/pinkdoor/guestguide-backend/internal/handlers"
	"github.com/pinkdoor/guestguide-backend/internal/services"
	"github.com/pinkdoor/guestguide-backend/internal/store"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Pink Door Guest Guide Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize stores. Guide content lives in memory for the life of the
	// process, seeded with the starter guide set.
	guideStore := store.NewGuideStore(store.SeedGuides())
	uploadStore := store.NewUploadStore()
	logger.Infof("Guide store seeded with %d items", len(guideStore.List()))

	// Initialize services
	guideService := services.NewGuideService(guideStore, logger)
	variableService := services.NewVariableService()

	// Initialize handlers
	guideHandler := handlers.NewGuideHandler(guideService)
	variableHandler := handlers.NewVariableHandler(variableService)
	purchaseHandler := handlers.NewPurchaseHandler()
	uploadHandler := handlers.NewUploadHandler(uploadStore, cfg.Upload.MaxSizeBytes)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Guide item routes
		guides := v1.Group("/guides")
		{
			guides.GET("", guideHandler.ListGuides)
			guides.POST("", guideHandler.CreateGuide)
			guides.GET("/sections", guideHandler.GetSections)
			guides.GET("/template", guideHandler.GetTemplate)
			guides.POST("/reorder", guideHandler.ReorderGuides)
			guides.GET("/:id", guideHandler.GetGuide)
			guides.PUT("/:id", guideHandler.UpdateGuide)
			guides.DELETE("/:id", guideHandler.DeleteGuide)
		}

		// Variable catalog routes (read-only)
		variables := v1.Group("/variables")
		{
			variables.GET("", variableHandler.ListVariables)
			variables.GET("/categories", variableHandler.ListCategories)
			variables.GET("/:id", variableHandler.GetVariable)
			variables.GET("/:id/token", variableHandler.GetVariableToken)
		}

		// Purchase settings routes
		purchase := v1.Group("/purchase")
		{
			purchase.POST("/payout", purchaseHandler.ComputePayout)
		}

		// Media upload routes
		uploads := v1.Group("/uploads")
		{
			uploads.POST("", uploadHandler.Upload)
			uploads.GET("", uploadHandler.ListUploads)
			uploads.GET("/:id", uploadHandler.ServeUpload)
			uploads.DELETE("/:id", uploadHandler.DeleteUpload)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}

		entry := logger.WithFields(fields)

		if len(c.Errors) > 0 {
			for i, err := range c.Errors {
				entry = entry.WithField(fmt.Sprintf("error_%d", i), err.Error())
			}
			entry.Error("Request failed with errors")
			return
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
