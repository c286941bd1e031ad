package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"potholetrack/dto"
	"potholetrack/services"
)

// maxUploadBytes caps analyze uploads at 50MB, matching the UI limit
const maxUploadBytes = 50 << 20

// MediaController exposes the external collaborators: the ML detection
// service and the reverse geocoder.
type MediaController struct {
	detector *services.DetectorService
	geocoder *services.GeocodeService
}

// NewMediaController creates a new media controller instance
func NewMediaController(detector *services.DetectorService, geocoder *services.GeocodeService) *MediaController {
	return &MediaController{detector: detector, geocoder: geocoder}
}

// Analyze handles POST /api/analyze: stores the uploaded photo/video
// and forwards it to the detection service.
func (ctl *MediaController) Analyze(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "Please upload a file first")
		return
	}
	if header.Size > maxUploadBytes {
		fail(c, http.StatusBadRequest, "File size exceeds 50MB. Please upload a smaller file")
		return
	}

	file, err := header.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer file.Close()

	detection, imageURL, err := ctl.detector.Analyze(file, header)
	if err != nil {
		serviceError(c, err, "Detection service unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"detection": detection,
		"imageUrl":  imageURL,
	})
}

// Locate handles POST /api/locate: reverse geocoding for the location
// picker.
func (ctl *MediaController) Locate(c *gin.Context) {
	var req dto.LocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Latitude and longitude are required")
		return
	}

	address, err := ctl.geocoder.ReverseGeocode(req.Lat, req.Lon)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Could not resolve address")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"address": address,
	})
}
