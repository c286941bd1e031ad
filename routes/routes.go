package routes

import (
	"github.com/gin-gonic/gin"

	"potholetrack/controllers"
	"potholetrack/middleware"
	"potholetrack/repositories"
	"potholetrack/services"
)

// SetupRoutes wires the services over the store and attaches all API
// endpoints to the router.
func SetupRoutes(router *gin.Engine, store *repositories.Store, detector *services.DetectorService, geocoder *services.GeocodeService) {
	authController := controllers.NewAuthController(services.NewAuthService(store))
	reportController := controllers.NewReportController(services.NewReportService(store))
	statisticsController := controllers.NewStatisticsController(services.NewStatisticsService(store))
	mediaController := controllers.NewMediaController(detector, geocoder)

	api := router.Group("/api")

	// Public routes
	api.GET("/health", controllers.HealthCheck)
	api.POST("/signup", authController.Signup)
	api.POST("/login", authController.Login)
	api.POST("/admin/signup", authController.AdminSignup)
	api.POST("/admin/login", authController.AdminLogin)
	api.POST("/locate", mediaController.Locate)

	// Citizen routes - protected by AuthMiddleware
	authenticated := api.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		authenticated.POST("/analyze", mediaController.Analyze)
		authenticated.POST("/reports", reportController.Create)
		authenticated.GET("/reports/user/:userId", reportController.ListByUser)
	}

	// Admin routes - protected by AuthMiddleware + AdminMiddleware
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/reports", reportController.ListAll)
		admin.PUT("/reports/:reportId", reportController.UpdateStatus)
		admin.GET("/users", authController.ListUsers)
		admin.GET("/statistics", statisticsController.Overview)
		admin.GET("/statistics/timeseries", statisticsController.TimeSeries)
		admin.GET("/statistics/severity", statisticsController.SeverityDistribution)
	}
}
