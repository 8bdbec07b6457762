package models

import "time"

// SavingGoal represents a savings target. An unfinished goal claims its
// MonthlyTarget in the rollup regardless of when it was created; a goal is
// finished once CompleteDate has passed. CompletionRatio is SavedMoney over
// TotalAmount and is recomputed whenever progress is recorded.
type SavingGoal struct {
	Base
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	Name            string    `gorm:"not null" json:"name"`
	Amount          int64     `gorm:"type:bigint;not null" json:"amount"`
	SavedMoney      int64     `gorm:"type:bigint;default:0" json:"saved_money"`
	TotalAmount     int64     `gorm:"type:bigint;default:0" json:"total_amount"`
	MonthlyTarget   int64     `gorm:"type:bigint;default:0" json:"monthly_target"`
	CompletionRatio float64   `gorm:"default:0" json:"completion_ratio"`
	CompleteDate    time.Time `gorm:"not null;index" json:"complete_date"`
}
