package models

import "time"

// User represents an account holder. Every financial record is owned by
// exactly one user.
type User struct {
	Base
	Email            string       `gorm:"uniqueIndex;not null" json:"email"`
	Password         string       `gorm:"not null" json:"-"`
	FirstName        string       `json:"first_name"`
	LastName         string       `json:"last_name"`
	IsActive         bool         `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string       `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time   `json:"last_login_at,omitempty"`
	Incomes          []Income     `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Expenses         []Expense    `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Budgets          []Budget     `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	SavingGoals      []SavingGoal `gorm:"foreignKey:UserID" json:"saving_goals,omitempty"`
	Debts            []Debt       `gorm:"foreignKey:UserID" json:"debts,omitempty"`
}
