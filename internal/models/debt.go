package models

import "time"

// Debt represents an outstanding liability. MonthlyPayment decomposes into
// CapitalRepayment and InterestRepayment; the decomposition is what drives
// the derived interest rate used for payoff prioritization.
type Debt struct {
	Base
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	Name              string    `gorm:"not null" json:"name"`
	Amount            int64     `gorm:"type:bigint;not null" json:"amount"`
	MonthlyPayment    int64     `gorm:"type:bigint;default:0" json:"monthly_payment"`
	AdHocPayment      int64     `gorm:"type:bigint;default:0" json:"ad_hoc_payment"`
	CapitalRepayment  int64     `gorm:"type:bigint;default:0" json:"capital_repayment"`
	InterestRepayment int64     `gorm:"type:bigint;default:0" json:"interest_repayment"`
	PayDueDate        time.Time `gorm:"not null" json:"pay_due_date"`
}
