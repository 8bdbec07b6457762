package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finch/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestIncome creates an income record received at the given date (amount in cents).
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, amount int64, receiveDate time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Income %d", nextID()),
		Amount:      amount,
		ReceiveDate: receiveDate,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestExpense creates a non-recurring expense (amount in cents).
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, amount int64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID: userID,
		Name:   fmt.Sprintf("Test Expense %d", nextID()),
		Amount: amount,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestRecurringExpense creates a recurring expense renewing at endDate.
func CreateTestRecurringExpense(t *testing.T, db *gorm.DB, userID uint, amount int64, endDate time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Subscription %d", nextID()),
		Amount:      amount,
		IsRecurring: true,
		EndDate:     &endDate,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test recurring expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a budget ceiling (amount in cents).
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, amount int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID: userID,
		Name:   fmt.Sprintf("Test Budget %d", nextID()),
		Amount: amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestSavingGoal creates a saving goal with the given monthly target,
// total amount, completion ratio, and complete date.
func CreateTestSavingGoal(t *testing.T, db *gorm.DB, userID uint, monthlyTarget, totalAmount int64, ratio float64, completeDate time.Time) *models.SavingGoal {
	t.Helper()

	goal := &models.SavingGoal{
		UserID:          userID,
		Name:            fmt.Sprintf("Test Goal %d", nextID()),
		Amount:          totalAmount,
		TotalAmount:     totalAmount,
		MonthlyTarget:   monthlyTarget,
		CompletionRatio: ratio,
		CompleteDate:    completeDate,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test saving goal: %v", err)
	}
	return goal
}

// CreateTestDebt creates a debt with the given principal and payment
// decomposition (all in cents).
func CreateTestDebt(t *testing.T, db *gorm.DB, userID uint, amount, monthlyPayment, capital, interest int64) *models.Debt {
	t.Helper()

	debt := &models.Debt{
		UserID:            userID,
		Name:              fmt.Sprintf("Test Debt %d", nextID()),
		Amount:            amount,
		MonthlyPayment:    monthlyPayment,
		CapitalRepayment:  capital,
		InterestRepayment: interest,
		PayDueDate:        time.Now().AddDate(0, 1, 0),
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

// CreateTestAppointment creates an appointment on the given date.
func CreateTestAppointment(t *testing.T, db *gorm.DB, userID uint, date time.Time) *models.Appointment {
	t.Helper()

	appt := &models.Appointment{
		UserID: userID,
		Title:  fmt.Sprintf("Test Appointment %d", nextID()),
		Date:   date,
	}
	if err := db.Create(appt).Error; err != nil {
		t.Fatalf("failed to create test appointment: %v", err)
	}
	return appt
}

// CreateTestDateNight creates a date night on the given date.
func CreateTestDateNight(t *testing.T, db *gorm.DB, userID uint, date time.Time) *models.DateNight {
	t.Helper()

	night := &models.DateNight{
		UserID: userID,
		Title:  fmt.Sprintf("Test Date Night %d", nextID()),
		Date:   date,
	}
	if err := db.Create(night).Error; err != nil {
		t.Fatalf("failed to create test date night: %v", err)
	}
	return night
}
