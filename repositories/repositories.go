package repositories

import (
	"errors"

	"potholetrack/models"
)

// Sentinel errors returned by repository implementations. Services and
// controllers match on these with errors.Is to pick the HTTP status.
var (
	ErrNotFound      = errors.New("record not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository handles storage operations for citizen accounts
type UserRepository interface {
	// FindAll retrieves all users in insertion order
	FindAll() ([]models.User, error)

	// FindByID retrieves a user by its ID, returning ErrNotFound if absent
	FindByID(id int) (models.User, error)

	// FindByEmail retrieves a user by exact email match
	FindByEmail(email string) (models.User, error)

	// Create assigns the next monotonic id, persists the user and
	// returns it. Fails with ErrEmailTaken on a duplicate email.
	Create(user models.User) (models.User, error)
}

// AdminRepository handles storage operations for staff accounts
type AdminRepository interface {
	FindByID(id int) (models.Admin, error)
	FindByUsername(username string) (models.Admin, error)

	// Create assigns the next monotonic id within the admin collection
	// and persists the admin. Fails with ErrUsernameTaken on a duplicate.
	Create(admin models.Admin) (models.Admin, error)
}

// ReportRepository handles storage operations for pothole reports
type ReportRepository interface {
	// FindAll retrieves all reports in insertion order
	FindAll() ([]models.Report, error)

	// FindByID retrieves a report by its ID, returning ErrNotFound if absent
	FindByID(id int) (models.Report, error)

	// FindByUserID retrieves all reports submitted by a user, in insertion order
	FindByUserID(userID int) ([]models.Report, error)

	// Create assigns the next monotonic id, persists the report and returns it
	Create(report models.Report) (models.Report, error)

	// Update persists changes to an existing report, keyed by report.ID.
	// Returns ErrNotFound if the report does not exist.
	Update(report models.Report) (models.Report, error)
}

// Store bundles the three collections behind one handle that is passed
// explicitly into services. Every write is persisted before the call
// returns, and writes within a collection are serialized so ids stay
// unique and gapless under concurrent requests.
type Store struct {
	Users   UserRepository
	Admins  AdminRepository
	Reports ReportRepository
}
