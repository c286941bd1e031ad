package services

import (
	"math"
	"strings"
	"time"

	"potholetrack/dto"
	"potholetrack/models"
	"potholetrack/repositories"
)

// timeSeriesLabel matches the dashboard's short-month day format, e.g. "Jan 2"
const timeSeriesLabel = "Jan 2"

// StatisticsService computes read-only aggregates over the live
// collections. Everything is recomputed in full on every call; the
// collections are small enough that caching would buy nothing.
type StatisticsService struct {
	store *repositories.Store
}

// NewStatisticsService creates a new statistics service instance
func NewStatisticsService(store *repositories.Store) *StatisticsService {
	return &StatisticsService{store: store}
}

// Overview returns the dashboard counters: report totals by status,
// user total and per-severity counts.
func (s *StatisticsService) Overview() (dto.Overview, error) {
	reports, err := s.store.Reports.FindAll()
	if err != nil {
		return dto.Overview{}, err
	}
	users, err := s.store.Users.FindAll()
	if err != nil {
		return dto.Overview{}, err
	}

	overview := dto.Overview{
		TotalReports: len(reports),
		TotalUsers:   len(users),
	}
	for _, r := range reports {
		switch r.Status {
		case models.StatusPending:
			overview.PendingReports++
		case models.StatusResolved:
			overview.ResolvedReports++
		}
		switch r.Severity {
		case models.SeverityLow:
			overview.SeverityStats.Low++
		case models.SeverityMedium:
			overview.SeverityStats.Medium++
		case models.SeverityHigh:
			overview.SeverityStats.High++
		}
	}
	return overview, nil
}

// TimeSeries buckets reports by calendar day of creation for the
// trailing days, ending today. The result always has exactly `days`
// entries in chronological order, zero-filled for days without reports.
func (s *StatisticsService) TimeSeries(days int) ([]dto.TimeSeriesPoint, error) {
	if days < 1 {
		days = 1
	}

	reports, err := s.store.Reports.FindAll()
	if err != nil {
		return nil, err
	}

	series := make([]dto.TimeSeriesPoint, 0, days)
	index := make(map[string]int, days)
	now := time.Now()
	for i := days - 1; i >= 0; i-- {
		label := now.AddDate(0, 0, -i).Format(timeSeriesLabel)
		index[label] = len(series)
		series = append(series, dto.TimeSeriesPoint{Label: label})
	}

	for _, r := range reports {
		label := r.CreatedAt.Format(timeSeriesLabel)
		if i, ok := index[label]; ok {
			series[i].Count++
		}
	}
	return series, nil
}

// severityBuckets fixes the distribution order used by the dashboard chart
var severityBuckets = []models.Severity{
	models.SeverityLow,
	models.SeverityMedium,
	models.SeverityHigh,
	models.SeverityCritical,
}

// SeverityDistribution returns per-severity counts with percentages
// rounded to one decimal. Reports with an unknown or missing severity
// count as medium. An empty collection yields all-zero percentages.
func (s *StatisticsService) SeverityDistribution() ([]dto.SeverityBucket, error) {
	reports, err := s.store.Reports.FindAll()
	if err != nil {
		return nil, err
	}

	counts := make(map[models.Severity]int, len(severityBuckets))
	for _, r := range reports {
		severity := models.Severity(strings.ToLower(string(r.Severity)))
		switch severity {
		case models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical:
		default:
			severity = models.SeverityMedium
		}
		counts[severity]++
	}

	total := len(reports)
	buckets := make([]dto.SeverityBucket, 0, len(severityBuckets))
	for _, severity := range severityBuckets {
		bucket := dto.SeverityBucket{
			Severity: string(severity),
			Count:    counts[severity],
		}
		if total > 0 {
			bucket.Percentage = math.Round(float64(bucket.Count)/float64(total)*1000) / 10
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}
