package models

import (
	"time"
)

// Admin represents a municipal staff account that triages reports.
// Admins live in their own id space, independent of users.
type Admin struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	Username   string    `json:"username" gorm:"uniqueIndex;not null"`
	Email      string    `json:"email,omitempty"`
	Department string    `json:"department,omitempty"`
	Password   string    `json:"-" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
}
