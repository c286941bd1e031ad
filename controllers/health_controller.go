package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns the API status
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Server is running",
	})
}
