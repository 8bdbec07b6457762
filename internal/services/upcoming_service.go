package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "finch/internal/errors"
	"finch/internal/models"
	"finch/internal/timewindow"
)

// upcomingLimit bounds each upcoming-events list.
const upcomingLimit = 2

// upcomingService projects the nearest future occurrences of three
// unrelated event types. Each type is queried and limited on its own, so
// an empty result in one never affects the others.
type upcomingService struct {
	db *gorm.DB
}

// NewUpcomingService creates a new UpcomingServicer.
func NewUpcomingService(db *gorm.DB) UpcomingServicer {
	return &upcomingService{db: db}
}

// ComputeUpcoming returns up to two appointments, date nights, and
// recurring-expense renewals on or after the start of the current UTC day,
// each sorted by its date field ascending.
func (s *upcomingService) ComputeUpcoming(userID uint) (*UpcomingEvents, error) {
	today := timewindow.StartOfDay(time.Now())
	events := &UpcomingEvents{
		Appointments: []models.Appointment{},
		DateNights:   []models.DateNight{},
		Expenses:     []models.Expense{},
	}

	if err := s.db.
		Where("user_id = ? AND date >= ?", userID, today).
		Order("date ASC").
		Limit(upcomingLimit).
		Find(&events.Appointments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.
		Where("user_id = ? AND date >= ?", userID, today).
		Order("date ASC").
		Limit(upcomingLimit).
		Find(&events.DateNights).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.
		Where("user_id = ? AND is_recurring = ? AND end_date >= ?", userID, true, today).
		Order("end_date ASC").
		Limit(upcomingLimit).
		Find(&events.Expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return events, nil
}
