package dto

// SeverityStats holds per-severity report counts for the overview
type SeverityStats struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Overview is the dashboard aggregate returned by GET /api/statistics.
// It is recomputed from the live collections on every call.
type Overview struct {
	TotalReports    int           `json:"totalReports"`
	PendingReports  int           `json:"pendingReports"`
	ResolvedReports int           `json:"resolvedReports"`
	TotalUsers      int           `json:"totalUsers"`
	SeverityStats   SeverityStats `json:"severityStats"`
}

// TimeSeriesPoint is one calendar-day bucket of report submissions
type TimeSeriesPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SeverityBucket is one slice of the severity distribution chart
type SeverityBucket struct {
	Severity   string  `json:"severity"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}
