package models

import "time"

// DateNight represents a planned date night.
type DateNight struct {
	Base
	UserID uint      `gorm:"not null;index" json:"user_id"`
	Title  string    `gorm:"not null" json:"title"`
	Date   time.Time `gorm:"not null;index" json:"date"`
}
