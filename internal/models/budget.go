package models

// Budget represents a spending ceiling. Windowed by CreatedAt.
type Budget struct {
	Base
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Amount int64  `gorm:"type:bigint;not null" json:"amount"`
}
