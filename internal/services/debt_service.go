package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finch/internal/errors"
	"finch/internal/models"
	"finch/internal/pagination"
)

// debtService handles debt record management.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// CreateDebt creates a new debt record.
func (s *debtService) CreateDebt(
	userID uint,
	name string,
	amount, monthlyPayment, adHocPayment, capitalRepayment, interestRepayment int64,
	payDueDate time.Time,
) (*models.Debt, error) {
	debt := &models.Debt{
		UserID:            userID,
		Name:              name,
		Amount:            amount,
		MonthlyPayment:    monthlyPayment,
		AdHocPayment:      adHocPayment,
		CapitalRepayment:  capitalRepayment,
		InterestRepayment: interestRepayment,
		PayDueDate:        payDueDate,
	}

	if err := s.db.Create(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return debt, nil
}

// GetUserDebts returns a paginated list of the user's debts.
func (s *debtService) GetUserDebts(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Debt], error) {
	page.Defaults()

	base := s.db.Model(&models.Debt{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var debts []models.Debt
	if err := base.Order("pay_due_date ASC").Scopes(pagination.Paginate(page)).Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(debts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetDebtByID returns a debt by ID if it belongs to the user.
func (s *debtService) GetDebtByID(userID, debtID uint) (*models.Debt, error) {
	var debt models.Debt
	if err := s.db.Where("id = ? AND user_id = ?", debtID, userID).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}

// UpdateDebt updates an existing debt's fields.
func (s *debtService) UpdateDebt(
	userID, debtID uint,
	name string,
	amount, monthlyPayment, capitalRepayment, interestRepayment *int64,
	payDueDate *time.Time,
) (*models.Debt, error) {
	debt, err := s.GetDebtByID(userID, debtID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if monthlyPayment != nil {
		updates["monthly_payment"] = *monthlyPayment
	}
	if capitalRepayment != nil {
		updates["capital_repayment"] = *capitalRepayment
	}
	if interestRepayment != nil {
		updates["interest_repayment"] = *interestRepayment
	}
	if payDueDate != nil {
		updates["pay_due_date"] = payDueDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(debt).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return debt, nil
}

// DeleteDebt soft-deletes a debt. The row stays in storage for audit but
// drops out of all aggregation and ranking.
func (s *debtService) DeleteDebt(userID, debtID uint) error {
	debt, err := s.GetDebtByID(userID, debtID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(debt).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
