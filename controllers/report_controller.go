package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"potholetrack/dto"
	"potholetrack/services"
)

// ReportController exposes report submission, listing and triage
type ReportController struct {
	reports *services.ReportService
}

// NewReportController creates a new report controller instance
func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// Create handles POST /api/reports
func (ctl *ReportController) Create(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	report, err := ctl.reports.Submit(req)
	if err != nil {
		serviceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Report submitted successfully",
		"report":  report,
	})
}

// ListByUser handles GET /api/reports/user/:userId
func (ctl *ReportController) ListByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	reports, err := ctl.reports.ListByUser(userID)
	if err != nil {
		serviceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reports": reports,
	})
}

// ListAll handles GET /api/reports
func (ctl *ReportController) ListAll(c *gin.Context) {
	reports, err := ctl.reports.ListAll()
	if err != nil {
		serviceError(c, err, "Report not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reports": reports,
	})
}

// UpdateStatus handles PUT /api/reports/:reportId
func (ctl *ReportController) UpdateStatus(c *gin.Context) {
	reportID, err := strconv.Atoi(c.Param("reportId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid report id")
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Status is required")
		return
	}

	report, err := ctl.reports.UpdateStatus(reportID, req.Status)
	if err != nil {
		serviceError(c, err, "Report not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Report updated successfully",
		"report":  report,
	})
}
