// File: /main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tripplanner-api/config"
	"tripplanner-api/database"
	"tripplanner-api/middleware"
	"tripplanner-api/routes"
)

func main() {
	// Load .env if present, otherwise rely on real environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	router.Use(routes.SetupCORS())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 30))
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, cfg)

	// Start server
	log.Printf("Starting Trip Planner API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)
	log.Printf("Routing provider: %s", cfg.OSRMBaseURL)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
