package models

import "time"

// Expense represents money spent by a user. Windowed by CreatedAt. A
// recurring expense renews until EndDate, which doubles as its next
// occurrence when projecting upcoming events.
type Expense struct {
	Base
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Name        string     `gorm:"not null" json:"name"`
	Amount      int64      `gorm:"type:bigint;not null" json:"amount"`
	IsRecurring bool       `gorm:"default:false" json:"is_recurring"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}
