package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"potholetrack/services"
)

// StatisticsController exposes the dashboard aggregates
type StatisticsController struct {
	stats *services.StatisticsService
}

// NewStatisticsController creates a new statistics controller instance
func NewStatisticsController(stats *services.StatisticsService) *StatisticsController {
	return &StatisticsController{stats: stats}
}

// Overview handles GET /api/statistics
func (ctl *StatisticsController) Overview(c *gin.Context) {
	overview, err := ctl.stats.Overview()
	if err != nil {
		serviceError(c, err, "Statistics unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"statistics": overview,
	})
}

// TimeSeries handles GET /api/statistics/timeseries?days=n
func (ctl *StatisticsController) TimeSeries(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			fail(c, http.StatusBadRequest, "Invalid days value")
			return
		}
		days = parsed
	}

	series, err := ctl.stats.TimeSeries(days)
	if err != nil {
		serviceError(c, err, "Statistics unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"series":  series,
	})
}

// SeverityDistribution handles GET /api/statistics/severity
func (ctl *StatisticsController) SeverityDistribution(c *gin.Context) {
	distribution, err := ctl.stats.SeverityDistribution()
	if err != nil {
		serviceError(c, err, "Statistics unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"distribution": distribution,
	})
}
