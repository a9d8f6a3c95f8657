package model

import "time"

// User represents an account that owns portfolios.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	HashedPassword string    `json:"-" gorm:"column:hashed_password;size:255;not null"` // Never expose in JSON
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}
