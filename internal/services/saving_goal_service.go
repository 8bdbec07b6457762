package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finch/internal/errors"
	"finch/internal/models"
	"finch/internal/pagination"
)

// savingGoalService handles saving goal management.
type savingGoalService struct {
	db *gorm.DB
}

// NewSavingGoalService creates a new SavingGoalServicer.
func NewSavingGoalService(db *gorm.DB) SavingGoalServicer {
	return &savingGoalService{db: db}
}

// CreateSavingGoal creates a new saving goal.
func (s *savingGoalService) CreateSavingGoal(
	userID uint,
	name string,
	amount, totalAmount, monthlyTarget int64,
	completeDate time.Time,
) (*models.SavingGoal, error) {
	goal := &models.SavingGoal{
		UserID:        userID,
		Name:          name,
		Amount:        amount,
		TotalAmount:   totalAmount,
		MonthlyTarget: monthlyTarget,
		CompleteDate:  completeDate,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserSavingGoals returns a paginated list of the user's saving goals.
func (s *savingGoalService) GetUserSavingGoals(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.SavingGoal], error) {
	page.Defaults()

	base := s.db.Model(&models.SavingGoal{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.SavingGoal
	if err := base.Order("complete_date ASC").Scopes(pagination.Paginate(page)).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetSavingGoalByID returns a saving goal by ID if it belongs to the user.
func (s *savingGoalService) GetSavingGoalByID(userID, goalID uint) (*models.SavingGoal, error) {
	var goal models.SavingGoal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSavingGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// RecordProgress sets the goal's saved amount and recomputes its
// completion ratio. A zero total amount leaves the ratio at zero.
func (s *savingGoalService) RecordProgress(userID, goalID uint, savedMoney int64) (*models.SavingGoal, error) {
	goal, err := s.GetSavingGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	ratio := 0.0
	if goal.TotalAmount > 0 {
		ratio, _ = decimal.NewFromInt(savedMoney).
			Div(decimal.NewFromInt(goal.TotalAmount)).
			Round(4).
			Float64()
	}

	if err := s.db.Model(goal).Updates(map[string]interface{}{
		"saved_money":      savedMoney,
		"completion_ratio": ratio,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// DeleteSavingGoal soft-deletes a saving goal.
func (s *savingGoalService) DeleteSavingGoal(userID, goalID uint) error {
	goal, err := s.GetSavingGoalByID(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
