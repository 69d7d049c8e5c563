package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pickngo/pickngo-backend/internal/database"
	"github.com/pickngo/pickngo-backend/internal/handlers"
	"github.com/pickngo/pickngo-backend/internal/middleware"
	"github.com/pickngo/pickngo-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	// Initialize database with better error handling
	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Initialize Redis
	if err := services.InitRedis(); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Serve locally stored uploads
	r.Static("/uploads", "/app/uploads")

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(db))
			auth.POST("/login", handlers.Login(db))
		}

		// Driver applicants have no account yet
		api.POST("/drivers/apply", handlers.SubmitDriverApplication(db, hub))

		// WebSocket connection
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocketHandler(hub))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile routes
			profile := protected.Group("/auth/profile")
			{
				profile.GET("", handlers.GetProfile(db))
				profile.PUT("", handlers.UpdateProfile(db))
				profile.POST("/image", handlers.UploadProfileImage(db))
				profile.PUT("/password", handlers.ChangePassword(db))
				profile.DELETE("", handlers.DeleteAccount(db))
			}

			// Vehicle owners submit listings for review
			protected.POST("/vehicles/apply", handlers.SubmitVehicleApplication(db, hub))

			// Review routes (business owners only)
			review := protected.Group("/")
			review.Use(middleware.RequireBusinessOwner())
			{
				drivers := review.Group("/drivers")
				{
					drivers.GET("", handlers.GetDrivers(db))
					drivers.GET("/pending", handlers.GetPendingDrivers(db))
					drivers.GET("/pending/count", handlers.GetPendingDriverCount(db))
					drivers.GET("/:driverId", handlers.GetDriver(db))
					drivers.PUT("/approve/:driverId", handlers.ReviewDriver(db, hub))
				}

				vehicles := review.Group("/vehicles")
				{
					vehicles.GET("", handlers.GetVehicles(db))
					vehicles.GET("/pending", handlers.GetPendingVehicles(db))
					vehicles.GET("/pending/count", handlers.GetPendingVehicleCount(db))
					vehicles.GET("/:vehicleId", handlers.GetVehicle(db))
					vehicles.PUT("/approve/:vehicleId", handlers.ApproveVehicle(db, hub))
					vehicles.PUT("/reject/:vehicleId", handlers.RejectVehicle(db, hub))
				}

				review.GET("/stats/approvals", handlers.GetApprovalStats(db))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
