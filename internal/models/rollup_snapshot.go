package models

import "time"

// RollupSnapshot is a point-in-time copy of a user's current-month rollup,
// recorded by the nightly snapshot job. One row per user per RecordedAt.
type RollupSnapshot struct {
	Base
	UserID                   uint      `gorm:"not null;index:idx_snapshot_user_recorded" json:"user_id"`
	RecordedAt               time.Time `gorm:"not null;index:idx_snapshot_user_recorded" json:"recorded_at"`
	TotalIncome              int64     `gorm:"type:bigint;default:0" json:"total_income"`
	TotalExpenses            int64     `gorm:"type:bigint;default:0" json:"total_expenses"`
	TotalBudget              int64     `gorm:"type:bigint;default:0" json:"total_budget"`
	DisposableAmount         int64     `gorm:"type:bigint;default:0" json:"disposable_amount"`
	SavingGoalCompletionRate float64   `gorm:"default:0" json:"saving_goal_completion_rate"`
	TotalSavedMoney          int64     `gorm:"type:bigint;default:0" json:"total_saved_money"`
}
