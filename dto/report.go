package dto

import (
	"potholetrack/models"
)

// CreateReportRequest is the JSON body for POST /api/reports
type CreateReportRequest struct {
	UserID       int             `json:"userId" binding:"required"`
	Location     string          `json:"location"`
	Street       string          `json:"street"`
	Description  string          `json:"description"`
	Count        int             `json:"count"`
	Severity     models.Severity `json:"severity"`
	Confidence   int             `json:"confidence"`
	Urgency      models.Urgency  `json:"urgency"`
	Image        string          `json:"image"`
	Latitude     *float64        `json:"latitude"`
	Longitude    *float64        `json:"longitude"`
	Observations string          `json:"observations"`
}

// UpdateStatusRequest is the JSON body for PUT /api/reports/:reportId
type UpdateStatusRequest struct {
	Status models.ReportStatus `json:"status" binding:"required"`
}
