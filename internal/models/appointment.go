package models

import "time"

// Appointment represents a scheduled appointment.
type Appointment struct {
	Base
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	Title    string    `gorm:"not null" json:"title"`
	Location string    `json:"location,omitempty"`
	Date     time.Time `gorm:"not null;index" json:"date"`
}
