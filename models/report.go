package models

import (
	"time"
)

// Severity represents the detector-assigned damage level
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
	// SeverityCritical only appears in analytics buckets, never on stored reports
	SeverityCritical Severity = "critical"
)

// Urgency represents the reporter-assigned priority, independent of severity
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ReportStatus represents a report's lifecycle state
type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusResolved ReportStatus = "resolved"
)

// ValidSeverity reports whether s is one of the storable severity levels
func ValidSeverity(s Severity) bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// ValidUrgency reports whether u is a known urgency level
func ValidUrgency(u Urgency) bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

// ValidStatus reports whether s is a known lifecycle state
func ValidStatus(s ReportStatus) bool {
	return s == StatusPending || s == StatusResolved
}

// Report represents a citizen-submitted pothole observation with
// detection metadata and a lifecycle status.
//
// UserName and UserEmail are a point-in-time snapshot taken when the
// report is created. They are never re-derived from the user record.
type Report struct {
	ID           int          `json:"id" gorm:"primaryKey"`
	UserID       int          `json:"userId" gorm:"index;not null"`
	UserName     string       `json:"userName"`
	UserEmail    string       `json:"userEmail"`
	Location     string       `json:"location" gorm:"not null"`
	Street       string       `json:"street"`
	Description  string       `json:"description"`
	Count        int          `json:"count"`
	Severity     Severity     `json:"severity" gorm:"type:varchar(10)"`
	Confidence   int          `json:"confidence"`
	Urgency      Urgency      `json:"urgency" gorm:"type:varchar(10)"`
	Image        string       `json:"image"`
	Latitude     *float64     `json:"latitude,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
	Observations string       `json:"observations,omitempty"`
	Status       ReportStatus `json:"status" gorm:"type:varchar(10);default:'pending'"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
