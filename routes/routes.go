// File: /routes/routes.go
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tripplanner-api/config"
	"tripplanner-api/controllers"
	"tripplanner-api/middleware"
	"tripplanner-api/osrm"
	"tripplanner-api/repositories"
	"tripplanner-api/services"
)

func SetupCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	return cors.New(corsConfig)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories and services
	tripRepo := repositories.NewTripRepository(db)
	routeRepo := repositories.NewRouteRepository(db)
	osrmClient := osrm.NewClient(cfg.OSRMBaseURL, time.Duration(cfg.OSRMTimeoutSeconds)*time.Second)

	emailService := services.NewEmailService(cfg)
	tripService := services.NewTripService(tripRepo)
	routeService := services.NewRouteService(tripRepo, routeRepo, osrmClient)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	tripController := controllers.NewTripController(db, tripService, emailService, cfg.ShareBaseURL)
	preferenceController := controllers.NewPreferenceController(db)
	waypointController := controllers.NewWaypointController(db)
	routeController := controllers.NewRouteController(db, routeService)
	reviewController := controllers.NewReviewController(db)
	photoController := controllers.NewPhotoController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Share-token access (public, the token is the credential)
	v1.GET("/shared/:token", tripController.GetSharedTrip)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/profile", authController.GetProfile)
		protected.GET("/profile/preferences", preferenceController.GetPreferences)
		protected.PUT("/profile/preferences", preferenceController.UpdatePreferences)

		// Trip routes
		trips := protected.Group("/trips")
		{
			trips.GET("/", tripController.GetTrips)
			trips.POST("/", tripController.CreateTrip)
			trips.GET("/:id", tripController.GetTrip)
			trips.PUT("/:id", tripController.UpdateTrip)
			trips.DELETE("/:id", tripController.DeleteTrip)
			trips.POST("/:id/clone", tripController.CloneTrip)
			trips.POST("/:id/share", tripController.ShareTrip)

			// Waypoints scoped to a trip
			trips.GET("/:id/waypoints", waypointController.GetWaypoints)
			trips.POST("/:id/waypoints", waypointController.CreateWaypoint)
			trips.PUT("/:id/waypoints/reorder", waypointController.ReorderWaypoints)

			// Route computation and feasibility
			trips.GET("/:id/route", routeController.GetRoute)
			trips.POST("/:id/route/calculate", routeController.CalculateRoute)
			trips.GET("/:id/feasibility", routeController.GetFeasibility)

			// Reviews and photos scoped to a trip
			trips.GET("/:id/reviews", reviewController.GetReviews)
			trips.POST("/:id/reviews", reviewController.CreateReview)
			trips.GET("/:id/photos", photoController.GetPhotos)
			trips.POST("/:id/photos", photoController.CreatePhoto)
		}

		// Waypoint routes addressed by waypoint id
		waypoints := protected.Group("/waypoints")
		{
			waypoints.PUT("/:id", waypointController.UpdateWaypoint)
			waypoints.DELETE("/:id", waypointController.DeleteWaypoint)
		}

		// Review routes addressed by review id
		reviews := protected.Group("/reviews")
		{
			reviews.PUT("/:id", reviewController.UpdateReview)
			reviews.DELETE("/:id", reviewController.DeleteReview)
		}

		// Photo routes addressed by photo id
		photos := protected.Group("/photos")
		{
			photos.DELETE("/:id", photoController.DeletePhoto)
		}
	}
}
