package models

import (
	"time"
)

// User represents a citizen account that can submit pothole reports
type User struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string    `json:"phone,omitempty"`
	Password  string    `json:"-" gorm:"not null"` // Password is not exposed in JSON
	CreatedAt time.Time `json:"createdAt"`
}
