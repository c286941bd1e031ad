package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"potholetrack/config"
	"potholetrack/database"
	"potholetrack/routes"
	"potholetrack/services"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	// Connect the store (PostgreSQL or local JSON file)
	store, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	// External collaborators
	uploadDir := config.GetEnv("UPLOAD_DIR", "uploads")
	detector := services.NewDetectorService(
		config.GetEnv("ML_SERVICE_URL", "http://localhost:5001"),
		uploadDir,
	)
	geocoder := services.NewGeocodeService(
		config.GetEnv("GEOCODER_URL", "https://us1.locationiq.com"),
		config.GetEnv("LOCATIONIQ_API_KEY", ""),
	)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
	}))

	// Static preview for uploaded media
	router.Static("/uploads", uploadDir)

	routes.SetupRoutes(router, store, detector, geocoder)

	port := config.GetEnv("PORT", "3000")
	log.Printf("🚀 Pothole Detection Server is running!")
	log.Printf("📍 Server: http://localhost:%s", port)
	log.Printf("📊 API: http://localhost:%s/api", port)
	log.Printf("🔐 Admin Login: admin / admin123")
	log.Printf("👤 User Login: user@demo.com / user123")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
