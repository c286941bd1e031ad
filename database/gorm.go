package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"potholetrack/models"
	"potholetrack/repositories"
)

// GormStore backs the collections with PostgreSQL. Writes run inside a
// transaction that recomputes max(id)+1, guarded by a store-wide mutex,
// so the gapless id contract holds here too.
type GormStore struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewGormStore connects to PostgreSQL and migrates the schema
func NewGormStore(dbURL string) (*repositories.Store, error) {
	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure the underlying connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&models.User{}, &models.Admin{}, &models.Report{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	log.Println("✅ Connected to database")

	gs := &GormStore{db: db}
	return &repositories.Store{
		Users:   &gormUsers{gs},
		Admins:  &gormAdmins{gs},
		Reports: &gormReports{gs},
	}, nil
}

// nextTableID computes max(id)+1 for the model's table inside tx
func nextTableID(tx *gorm.DB, model interface{}) (int, error) {
	var max int
	if err := tx.Model(model).Select("COALESCE(MAX(id), 0)").Scan(&max).Error; err != nil {
		return 0, err
	}
	return max + 1, nil
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return err
}

// gormUsers implements repositories.UserRepository over PostgreSQL

type gormUsers struct{ s *GormStore }

func (r *gormUsers) FindAll() ([]models.User, error) {
	var users []models.User
	result := r.s.db.Order("id asc").Find(&users)
	return users, result.Error
}

func (r *gormUsers) FindByID(id int) (models.User, error) {
	var user models.User
	result := r.s.db.First(&user, "id = ?", id)
	return user, translateErr(result.Error)
}

func (r *gormUsers) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := r.s.db.First(&user, "email = ?", email)
	return user, translateErr(result.Error)
}

func (r *gormUsers) Create(user models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	err := r.s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return repositories.ErrEmailTaken
		}

		id, err := nextTableID(tx, &models.User{})
		if err != nil {
			return err
		}
		user.ID = id
		return tx.Create(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// gormAdmins implements repositories.AdminRepository over PostgreSQL

type gormAdmins struct{ s *GormStore }

func (r *gormAdmins) FindByID(id int) (models.Admin, error) {
	var admin models.Admin
	result := r.s.db.First(&admin, "id = ?", id)
	return admin, translateErr(result.Error)
}

func (r *gormAdmins) FindByUsername(username string) (models.Admin, error) {
	var admin models.Admin
	result := r.s.db.First(&admin, "username = ?", username)
	return admin, translateErr(result.Error)
}

func (r *gormAdmins) Create(admin models.Admin) (models.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	err := r.s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Admin{}).Where("username = ?", admin.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return repositories.ErrUsernameTaken
		}

		id, err := nextTableID(tx, &models.Admin{})
		if err != nil {
			return err
		}
		admin.ID = id
		return tx.Create(&admin).Error
	})
	if err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

// gormReports implements repositories.ReportRepository over PostgreSQL

type gormReports struct{ s *GormStore }

func (r *gormReports) FindAll() ([]models.Report, error) {
	var reports []models.Report
	result := r.s.db.Order("id asc").Find(&reports)
	return reports, result.Error
}

func (r *gormReports) FindByID(id int) (models.Report, error) {
	var report models.Report
	result := r.s.db.First(&report, "id = ?", id)
	return report, translateErr(result.Error)
}

func (r *gormReports) FindByUserID(userID int) ([]models.Report, error) {
	var reports []models.Report
	result := r.s.db.Where("user_id = ?", userID).Order("id asc").Find(&reports)
	return reports, result.Error
}

func (r *gormReports) Create(report models.Report) (models.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	err := r.s.db.Transaction(func(tx *gorm.DB) error {
		id, err := nextTableID(tx, &models.Report{})
		if err != nil {
			return err
		}
		report.ID = id
		return tx.Create(&report).Error
	})
	if err != nil {
		return models.Report{}, err
	}
	return report, nil
}

func (r *gormReports) Update(report models.Report) (models.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := r.s.db.Model(&models.Report{}).Where("id = ?", report.ID).Updates(map[string]interface{}{
		"status":     report.Status,
		"updated_at": report.UpdatedAt,
	})
	if result.Error != nil {
		return models.Report{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Report{}, repositories.ErrNotFound
	}
	return report, nil
}
