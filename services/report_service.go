package services

import (
	"time"

	"potholetrack/dto"
	"potholetrack/models"
	"potholetrack/repositories"
)

// ReportService enforces report creation and status transition rules
type ReportService struct {
	store *repositories.Store
}

// NewReportService creates a new report service instance
func NewReportService(store *repositories.Store) *ReportService {
	return &ReportService{store: store}
}

// Submit validates and creates a new report. The submitting user must
// exist; the requester's name and email are snapshotted onto the report
// and never re-derived afterwards. New reports always start pending.
func (s *ReportService) Submit(req dto.CreateReportRequest) (models.Report, error) {
	if err := validateSubmission(req); err != nil {
		return models.Report{}, err
	}

	user, err := s.store.Users.FindByID(req.UserID)
	if err != nil {
		return models.Report{}, err
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = models.UrgencyMedium
	}

	now := time.Now()
	report := models.Report{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		Location:     req.Location,
		Street:       req.Street,
		Description:  req.Description,
		Count:        req.Count,
		Severity:     req.Severity,
		Confidence:   req.Confidence,
		Urgency:      urgency,
		Image:        req.Image,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Observations: req.Observations,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.store.Reports.Create(report)
}

func validateSubmission(req dto.CreateReportRequest) error {
	if req.Location == "" {
		return invalid("Location is required")
	}
	if req.Image == "" {
		return invalid("Please upload a photo or video and run analysis before submitting")
	}
	if req.Street == "" {
		return invalid("Please provide the street/road name")
	}
	if req.Description == "" {
		return invalid("Please provide a description of the pothole condition")
	}
	if req.Count < 0 {
		return invalid("Pothole count cannot be negative")
	}
	if req.Confidence < 0 || req.Confidence > 100 {
		return invalid("Confidence must be between 0 and 100")
	}
	if !models.ValidSeverity(req.Severity) {
		return invalid("Invalid severity value")
	}
	if req.Urgency != "" && !models.ValidUrgency(req.Urgency) {
		return invalid("Invalid urgency value")
	}
	return nil
}

// UpdateStatus transitions a report to the given lifecycle state and
// refreshes updatedAt. Both directions between pending and resolved are
// allowed; there is no terminal state.
func (s *ReportService) UpdateStatus(reportID int, status models.ReportStatus) (models.Report, error) {
	if !models.ValidStatus(status) {
		return models.Report{}, invalid("Invalid status value")
	}

	report, err := s.store.Reports.FindByID(reportID)
	if err != nil {
		return models.Report{}, err
	}

	report.Status = status
	report.UpdatedAt = time.Now()
	return s.store.Reports.Update(report)
}

// ListByUser returns all reports submitted by the given user, in
// insertion order
func (s *ReportService) ListByUser(userID int) ([]models.Report, error) {
	return s.store.Reports.FindByUserID(userID)
}

// ListAll returns the entire report collection, in insertion order
func (s *ReportService) ListAll() ([]models.Report, error) {
	return s.store.Reports.FindAll()
}
