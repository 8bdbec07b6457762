package services

import (
	"time"

	"finch/internal/models"
	"finch/internal/pagination"
	"finch/internal/timewindow"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	Exists(id uint) (bool, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID uint, tokenHash string) error
}

// RollupSummary combines per-entity sums for one user and window into a
// single view. All fields default to zero when no records match; absent
// data is not an error.
type RollupSummary struct {
	TotalIncome              int64   `json:"total_income"`
	TotalExpenses            int64   `json:"total_expenses"`
	TotalBudget              int64   `json:"total_budget"`
	DisposableAmount         int64   `json:"disposable_amount"`
	SavingGoalCompletionRate float64 `json:"saving_goal_completion_rate"`
	TotalSavedMoney          int64   `json:"total_saved_money"`
}

// RollupServicer defines the contract for the rollup aggregator.
type RollupServicer interface {
	ComputeRollup(userID uint, window timewindow.Window) (*RollupSummary, error)
}

// DebtBreakdown is the full per-debt view returned for the prioritized
// debts, including the derived interest rate.
type DebtBreakdown struct {
	Name           string    `json:"name"`
	Amount         int64     `json:"amount"`
	MonthlyPayment int64     `json:"monthly_payment"`
	InterestRate   float64   `json:"interest_rate"`
	PayDueDate     time.Time `json:"pay_due_date"`
}

// DebtRank is a debt's position in the suggested payoff order.
type DebtRank struct {
	Name         string  `json:"name"`
	InterestRate float64 `json:"interest_rate"`
}

// DebtSummary aggregates across ALL of a user's debts, not just the
// prioritized slice.
type DebtSummary struct {
	TotalDebt       int64   `json:"total_debt"`
	AvgInterestRate float64 `json:"avg_interest_rate"`
	MonthlyPayment  int64   `json:"monthly_payment"`
}

// DebtInsight is the debt-prioritization result. Debts and SuggestedOrder
// cover the same top slice in the same order; a user with no debts gets
// empty lists and a zero summary.
type DebtInsight struct {
	Debts          []DebtBreakdown `json:"debts"`
	SuggestedOrder []DebtRank      `json:"suggested_order"`
	Summary        DebtSummary     `json:"summary"`
}

// DebtInsightServicer defines the contract for the debt-prioritization engine.
type DebtInsightServicer interface {
	ComputeDebtInsights(userID uint) (*DebtInsight, error)
}

// UpcomingEvents holds the nearest future occurrences of each event type.
// The three lists are filled independently of one another.
type UpcomingEvents struct {
	Appointments []models.Appointment `json:"appointments"`
	DateNights   []models.DateNight   `json:"date_nights"`
	Expenses     []models.Expense     `json:"expenses"`
}

// UpcomingServicer defines the contract for the upcoming events projector.
type UpcomingServicer interface {
	ComputeUpcoming(userID uint) (*UpcomingEvents, error)
}

// DebtServicer defines the contract for debt record management.
type DebtServicer interface {
	CreateDebt(userID uint, name string, amount, monthlyPayment, adHocPayment, capitalRepayment, interestRepayment int64, payDueDate time.Time) (*models.Debt, error)
	GetUserDebts(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Debt], error)
	GetDebtByID(userID, debtID uint) (*models.Debt, error)
	UpdateDebt(userID, debtID uint, name string, amount, monthlyPayment, capitalRepayment, interestRepayment *int64, payDueDate *time.Time) (*models.Debt, error)
	DeleteDebt(userID, debtID uint) error
}

// SavingGoalServicer defines the contract for saving goal management.
type SavingGoalServicer interface {
	CreateSavingGoal(userID uint, name string, amount, totalAmount, monthlyTarget int64, completeDate time.Time) (*models.SavingGoal, error)
	GetUserSavingGoals(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.SavingGoal], error)
	GetSavingGoalByID(userID, goalID uint) (*models.SavingGoal, error)
	RecordProgress(userID, goalID uint, savedMoney int64) (*models.SavingGoal, error)
	DeleteSavingGoal(userID, goalID uint) error
}

// SnapshotServicer defines the contract for rollup snapshot recording.
type SnapshotServicer interface {
	ComputeAndRecordSnapshots(recordedAt time.Time) (int, error)
	GetSnapshots(userID uint, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.RollupSnapshot], error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
