package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "finch/internal/errors"
	"finch/internal/models"
	"finch/internal/pagination"
	"finch/internal/timewindow"
)

// snapshotService records point-in-time copies of each user's
// current-month rollup.
type snapshotService struct {
	db     *gorm.DB
	rollup RollupServicer
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB, rollup RollupServicer) SnapshotServicer {
	return &snapshotService{db: db, rollup: rollup}
}

// ComputeAndRecordSnapshots computes and stores a current-month rollup
// snapshot for every active user. Re-running for the same recordedAt
// updates the existing rows instead of duplicating them.
func (s *snapshotService) ComputeAndRecordSnapshots(recordedAt time.Time) (int, error) {
	var userIDs []uint
	if err := s.db.Model(&models.User{}).
		Where("is_active = ?", true).
		Pluck("id", &userIDs).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	window := timewindow.MonthOf(recordedAt)

	count := 0
	for _, userID := range userIDs {
		summary, err := s.rollup.ComputeRollup(userID, window)
		if err != nil {
			return count, err
		}

		fields := map[string]interface{}{
			"total_income":                summary.TotalIncome,
			"total_expenses":              summary.TotalExpenses,
			"total_budget":                summary.TotalBudget,
			"disposable_amount":           summary.DisposableAmount,
			"saving_goal_completion_rate": summary.SavingGoalCompletionRate,
			"total_saved_money":           summary.TotalSavedMoney,
		}

		var existing models.RollupSnapshot
		result := s.db.Where("user_id = ? AND recorded_at = ?", userID, recordedAt).First(&existing)
		if result.Error == nil {
			if err := s.db.Model(&existing).Updates(fields).Error; err != nil {
				return count, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		} else {
			snapshot := &models.RollupSnapshot{
				UserID:                   userID,
				RecordedAt:               recordedAt,
				TotalIncome:              summary.TotalIncome,
				TotalExpenses:            summary.TotalExpenses,
				TotalBudget:              summary.TotalBudget,
				DisposableAmount:         summary.DisposableAmount,
				SavingGoalCompletionRate: summary.SavingGoalCompletionRate,
				TotalSavedMoney:          summary.TotalSavedMoney,
			}
			if err := s.db.Create(snapshot).Error; err != nil {
				return count, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		count++
	}

	return count, nil
}

// GetSnapshots returns paginated snapshots for a user within a date range.
func (s *snapshotService) GetSnapshots(
	userID uint,
	from, to time.Time,
	page pagination.PageRequest,
) (*pagination.PageResponse[models.RollupSnapshot], error) {
	page.Defaults()

	base := s.db.Model(&models.RollupSnapshot{}).
		Where("user_id = ? AND recorded_at >= ? AND recorded_at <= ?", userID, from, to)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.RollupSnapshot
	if err := base.Order("recorded_at DESC").Scopes(pagination.Paginate(page)).Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}
