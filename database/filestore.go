package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"potholetrack/models"
	"potholetrack/repositories"
)

// fileData is the on-disk shape of the data file: three keyed
// collections in one JSON document.
type fileData struct {
	Users   []models.User   `json:"users"`
	Admins  []models.Admin  `json:"admins"`
	Reports []models.Report `json:"reports"`
}

// FileStore keeps all collections in a single JSON file that is
// rewritten synchronously on every mutation. A single mutex serializes
// access, so id assignment (max existing id + 1) stays unique and
// gapless under concurrent requests.
type FileStore struct {
	mu   sync.Mutex
	path string
	data fileData
}

// NewFileStore opens or creates the data file at path and returns a
// store handle over it. A fresh file is seeded with the demo accounts.
func NewFileStore(path string) (*repositories.Store, error) {
	fs := &FileStore{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &fs.data); err != nil {
			return nil, fmt.Errorf("parse data file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err := fs.seed(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("read data file %s: %w", path, err)
	}

	return &repositories.Store{
		Users:   &fileUsers{fs},
		Admins:  &fileAdmins{fs},
		Reports: &fileReports{fs},
	}, nil
}

// seed initializes a fresh data file with the demo user and admin
// accounts (user@demo.com / user123, admin / admin123).
func (s *FileStore) seed() error {
	userPw, err := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminPw, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	s.data = fileData{
		Users: []models.User{{
			ID:        1,
			Name:      "Demo User",
			Email:     "user@demo.com",
			Phone:     "1234567890",
			Password:  string(userPw),
			CreatedAt: now,
		}},
		Admins: []models.Admin{{
			ID:        1,
			Username:  "admin",
			Password:  string(adminPw),
			CreatedAt: now,
		}},
		Reports: []models.Report{},
	}
	return s.save()
}

// save writes the whole document back to disk. Callers must hold mu.
func (s *FileStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("persist data file: %w", err)
	}
	return nil
}

// fileUsers implements repositories.UserRepository over the data file

type fileUsers struct{ s *FileStore }

func (r *fileUsers) FindAll() ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := make([]models.User, len(r.s.data.Users))
	copy(users, r.s.data.Users)
	return users, nil
}

func (r *fileUsers) FindByID(id int) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.data.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (r *fileUsers) FindByEmail(email string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.data.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (r *fileUsers) Create(user models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.data.Users {
		if u.Email == user.Email {
			return models.User{}, repositories.ErrEmailTaken
		}
	}

	user.ID = nextID(r.s.data.Users, func(u models.User) int { return u.ID })
	r.s.data.Users = append(r.s.data.Users, user)
	if err := r.s.save(); err != nil {
		r.s.data.Users = r.s.data.Users[:len(r.s.data.Users)-1]
		return models.User{}, err
	}
	return user, nil
}

// fileAdmins implements repositories.AdminRepository over the data file

type fileAdmins struct{ s *FileStore }

func (r *fileAdmins) FindByID(id int) (models.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.data.Admins {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Admin{}, repositories.ErrNotFound
}

func (r *fileAdmins) FindByUsername(username string) (models.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.data.Admins {
		if a.Username == username {
			return a, nil
		}
	}
	return models.Admin{}, repositories.ErrNotFound
}

func (r *fileAdmins) Create(admin models.Admin) (models.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.data.Admins {
		if a.Username == admin.Username {
			return models.Admin{}, repositories.ErrUsernameTaken
		}
	}

	admin.ID = nextID(r.s.data.Admins, func(a models.Admin) int { return a.ID })
	r.s.data.Admins = append(r.s.data.Admins, admin)
	if err := r.s.save(); err != nil {
		r.s.data.Admins = r.s.data.Admins[:len(r.s.data.Admins)-1]
		return models.Admin{}, err
	}
	return admin, nil
}

// fileReports implements repositories.ReportRepository over the data file

type fileReports struct{ s *FileStore }

func (r *fileReports) FindAll() ([]models.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	reports := make([]models.Report, len(r.s.data.Reports))
	copy(reports, r.s.data.Reports)
	return reports, nil
}

func (r *fileReports) FindByID(id int) (models.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rep := range r.s.data.Reports {
		if rep.ID == id {
			return rep, nil
		}
	}
	return models.Report{}, repositories.ErrNotFound
}

func (r *fileReports) FindByUserID(userID int) ([]models.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	reports := []models.Report{}
	for _, rep := range r.s.data.Reports {
		if rep.UserID == userID {
			reports = append(reports, rep)
		}
	}
	return reports, nil
}

func (r *fileReports) Create(report models.Report) (models.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	report.ID = nextID(r.s.data.Reports, func(rep models.Report) int { return rep.ID })
	r.s.data.Reports = append(r.s.data.Reports, report)
	if err := r.s.save(); err != nil {
		r.s.data.Reports = r.s.data.Reports[:len(r.s.data.Reports)-1]
		return models.Report{}, err
	}
	return report, nil
}

func (r *fileReports) Update(report models.Report) (models.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, rep := range r.s.data.Reports {
		if rep.ID == report.ID {
			prev := r.s.data.Reports[i]
			r.s.data.Reports[i] = report
			if err := r.s.save(); err != nil {
				r.s.data.Reports[i] = prev
				return models.Report{}, err
			}
			return report, nil
		}
	}
	return models.Report{}, repositories.ErrNotFound
}

// nextID returns 1 for an empty collection, else max existing id + 1
func nextID[T any](records []T, id func(T) int) int {
	max := 0
	for _, rec := range records {
		if id(rec) > max {
			max = id(rec)
		}
	}
	return max + 1
}
