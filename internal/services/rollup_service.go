package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finch/internal/errors"
	"finch/internal/models"
	"finch/internal/timewindow"
)

// rollupService aggregates a user's financial records into a single
// windowed summary. It is read-only and keeps no state between calls.
type rollupService struct {
	db *gorm.DB
}

// NewRollupService creates a new RollupServicer.
func NewRollupService(db *gorm.DB) RollupServicer {
	return &rollupService{db: db}
}

// ComputeRollup sums active income, expense, and budget records inside the
// window, plus the monthly targets of saving goals that have not reached
// their complete date. The user is verified once up front; after that,
// every missing sub-aggregate resolves to zero rather than an error.
func (s *rollupService) ComputeRollup(userID uint, window timewindow.Window) (*RollupSummary, error) {
	if err := s.checkUserExists(userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	totalIncome, err := s.sumInWindow(&models.Income{}, "receive_date", userID, window)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := s.sumInWindow(&models.Expense{}, "created_at", userID, window)
	if err != nil {
		return nil, err
	}

	budgetCeilings, err := s.sumInWindow(&models.Budget{}, "created_at", userID, window)
	if err != nil {
		return nil, err
	}

	// Saving goal commitment is deliberately not windowed: an unfinished
	// goal claims its monthly target no matter when it was created.
	var goalTargets int64
	if err := s.db.Model(&models.SavingGoal{}).
		Select("COALESCE(SUM(monthly_target), 0)").
		Where("user_id = ? AND complete_date > ?", userID, now).
		Scan(&goalTargets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	completionRate, totalSaved, err := s.goalCompletion(userID)
	if err != nil {
		return nil, err
	}

	return &RollupSummary{
		TotalIncome:              totalIncome,
		TotalExpenses:            totalExpenses,
		TotalBudget:              budgetCeilings + goalTargets,
		DisposableAmount:         totalIncome - totalExpenses,
		SavingGoalCompletionRate: completionRate,
		TotalSavedMoney:          totalSaved,
	}, nil
}

// checkUserExists resolves the user once per rollup call.
func (s *rollupService) checkUserExists(userID uint) error {
	var user models.User
	if err := s.db.Select("id").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// sumInWindow sums amount across the user's active records of one entity
// whose windowing field falls inside the window, boundaries included.
// COALESCE keeps an empty match set at zero instead of NULL.
func (s *rollupService) sumInWindow(model interface{}, dateColumn string, userID uint, window timewindow.Window) (int64, error) {
	var total int64
	err := s.db.Model(model).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND "+dateColumn+" BETWEEN ? AND ?", userID, window.Start, window.End).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// goalCompletion computes the amount-weighted average completion ratio and
// the total saved money across all of the user's active saving goals, with
// no time window. A zero total amount yields a zero rate.
func (s *rollupService) goalCompletion(userID uint) (float64, int64, error) {
	var goals []models.SavingGoal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var totalSaved int64
	weighted := decimal.Zero
	totalAmount := decimal.Zero
	for i := range goals {
		totalSaved += goals[i].SavedMoney
		weight := decimal.NewFromInt(goals[i].TotalAmount)
		weighted = weighted.Add(decimal.NewFromFloat(goals[i].CompletionRatio).Mul(weight))
		totalAmount = totalAmount.Add(weight)
	}

	if totalAmount.IsZero() {
		return 0, totalSaved, nil
	}
	rate, _ := weighted.Div(totalAmount).Float64()
	return rate, totalSaved, nil
}
