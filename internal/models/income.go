package models

import "time"

// Income represents money received by a user. Windowed by ReceiveDate, the
// date the money actually arrived, not when the record was entered.
type Income struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Amount      int64     `gorm:"type:bigint;not null" json:"amount"`
	ReceiveDate time.Time `gorm:"not null;index" json:"receive_date"`
}
