package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finch/internal/errors"
	"finch/internal/models"
	"finch/internal/pagination"
	"finch/internal/services"
)

type mockSavingGoalService struct {
	createSavingGoalFn   func(userID uint, name string, amount, totalAmount, monthlyTarget int64, completeDate time.Time) (*models.SavingGoal, error)
	getUserSavingGoalsFn func(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.SavingGoal], error)
	getSavingGoalByIDFn  func(userID, goalID uint) (*models.SavingGoal, error)
	recordProgressFn     func(userID, goalID uint, savedMoney int64) (*models.SavingGoal, error)
	deleteSavingGoalFn   func(userID, goalID uint) error
}

func (m *mockSavingGoalService) CreateSavingGoal(userID uint, name string, amount, totalAmount, monthlyTarget int64, completeDate time.Time) (*models.SavingGoal, error) {
	if m.createSavingGoalFn != nil {
		return m.createSavingGoalFn(userID, name, amount, totalAmount, monthlyTarget, completeDate)
	}
	return &models.SavingGoal{}, nil
}

func (m *mockSavingGoalService) GetUserSavingGoals(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.SavingGoal], error) {
	if m.getUserSavingGoalsFn != nil {
		return m.getUserSavingGoalsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.SavingGoal{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

func (m *mockSavingGoalService) GetSavingGoalByID(userID, goalID uint) (*models.SavingGoal, error) {
	if m.getSavingGoalByIDFn != nil {
		return m.getSavingGoalByIDFn(userID, goalID)
	}
	return &models.SavingGoal{}, nil
}

func (m *mockSavingGoalService) RecordProgress(userID, goalID uint, savedMoney int64) (*models.SavingGoal, error) {
	if m.recordProgressFn != nil {
		return m.recordProgressFn(userID, goalID, savedMoney)
	}
	return &models.SavingGoal{}, nil
}

func (m *mockSavingGoalService) DeleteSavingGoal(userID, goalID uint) error {
	if m.deleteSavingGoalFn != nil {
		return m.deleteSavingGoalFn(userID, goalID)
	}
	return nil
}

var _ services.SavingGoalServicer = (*mockSavingGoalService)(nil)

func setupSavingGoalRouter(handler *SavingGoalHandler) *gin.Engine {
	r := gin.New()
	goals := r.Group("/saving-goals", injectUserID(1))
	goals.POST("", handler.CreateSavingGoal)
	goals.GET("", handler.GetSavingGoals)
	goals.GET("/:id", handler.GetSavingGoal)
	goals.PUT("/:id/progress", handler.RecordProgress)
	goals.DELETE("/:id", handler.DeleteSavingGoal)
	return r
}

func TestSavingGoalHandler_CreateSavingGoal(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		goalSvc := &mockSavingGoalService{
			createSavingGoalFn: func(userID uint, name string, amount, totalAmount, monthlyTarget int64, completeDate time.Time) (*models.SavingGoal, error) {
				return &models.SavingGoal{
					Base:          models.Base{ID: 1},
					UserID:        userID,
					Name:          name,
					Amount:        amount,
					TotalAmount:   totalAmount,
					MonthlyTarget: monthlyTarget,
					CompleteDate:  completeDate,
				}, nil
			},
		}
		handler := NewSavingGoalHandler(goalSvc, &mockAuditService{})
		r := setupSavingGoalRouter(handler)

		future := time.Now().AddDate(1, 0, 0).UTC().Format(time.RFC3339)
		rec := doRequest(r, "POST", "/saving-goals",
			fmt.Sprintf(`{"name":"Holiday","amount":200000,"total_amount":200000,"monthly_target":20000,"complete_date":%q}`, future))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != "Holiday" {
			t.Errorf("expected name Holiday, got %v", result["name"])
		}
	})

	t.Run("returns 400 on past complete date", func(t *testing.T) {
		handler := NewSavingGoalHandler(&mockSavingGoalService{}, &mockAuditService{})
		r := setupSavingGoalRouter(handler)

		rec := doRequest(r, "POST", "/saving-goals",
			`{"name":"Holiday","amount":200000,"complete_date":"2020-01-01T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewSavingGoalHandler(&mockSavingGoalService{}, &mockAuditService{})
		r := setupSavingGoalRouter(handler)

		rec := doRequest(r, "POST", "/saving-goals", `{"amount":1000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSavingGoalHandler_RecordProgress(t *testing.T) {
	t.Run("returns 200 with updated goal", func(t *testing.T) {
		goalSvc := &mockSavingGoalService{
			recordProgressFn: func(_, goalID uint, savedMoney int64) (*models.SavingGoal, error) {
				return &models.SavingGoal{
					Base:            models.Base{ID: goalID},
					SavedMoney:      savedMoney,
					TotalAmount:     20000,
					CompletionRatio: 0.25,
				}, nil
			},
		}
		handler := NewSavingGoalHandler(goalSvc, &mockAuditService{})
		r := setupSavingGoalRouter(handler)

		rec := doRequest(r, "PUT", "/saving-goals/1/progress", `{"saved_money":5000}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["completion_ratio"] != 0.25 {
			t.Errorf("expected ratio 0.25, got %v", result["completion_ratio"])
		}
	})

	t.Run("returns 404 when goal not found", func(t *testing.T) {
		goalSvc := &mockSavingGoalService{
			recordProgressFn: func(_, _ uint, _ int64) (*models.SavingGoal, error) {
				return nil, apperrors.ErrSavingGoalNotFound
			},
		}
		handler := NewSavingGoalHandler(goalSvc, &mockAuditService{})
		r := setupSavingGoalRouter(handler)

		rec := doRequest(r, "PUT", "/saving-goals/99/progress", `{"saved_money":5000}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SAVING_GOAL_NOT_FOUND")
	})
}

func TestSavingGoalHandler_DeleteSavingGoal(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewSavingGoalHandler(&mockSavingGoalService{}, &mockAuditService{})
		r := setupSavingGoalRouter(handler)

		rec := doRequest(r, "DELETE", "/saving-goals/1", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})
}
