package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finch/internal/errors"
	"finch/internal/models"
	"finch/internal/pagination"
	"finch/internal/services"
	"finch/internal/timewindow"
)

// --- mock services ---

type mockRollupService struct {
	computeRollupFn func(userID uint, window timewindow.Window) (*services.RollupSummary, error)
}

func (m *mockRollupService) ComputeRollup(userID uint, window timewindow.Window) (*services.RollupSummary, error) {
	if m.computeRollupFn != nil {
		return m.computeRollupFn(userID, window)
	}
	return &services.RollupSummary{}, nil
}

type mockInsightService struct {
	computeDebtInsightsFn func(userID uint) (*services.DebtInsight, error)
}

func (m *mockInsightService) ComputeDebtInsights(userID uint) (*services.DebtInsight, error) {
	if m.computeDebtInsightsFn != nil {
		return m.computeDebtInsightsFn(userID)
	}
	return &services.DebtInsight{
		Debts:          []services.DebtBreakdown{},
		SuggestedOrder: []services.DebtRank{},
	}, nil
}

type mockUpcomingService struct {
	computeUpcomingFn func(userID uint) (*services.UpcomingEvents, error)
}

func (m *mockUpcomingService) ComputeUpcoming(userID uint) (*services.UpcomingEvents, error) {
	if m.computeUpcomingFn != nil {
		return m.computeUpcomingFn(userID)
	}
	return &services.UpcomingEvents{
		Appointments: []models.Appointment{},
		DateNights:   []models.DateNight{},
		Expenses:     []models.Expense{},
	}, nil
}

type mockSnapshotService struct {
	computeAndRecordFn func(recordedAt time.Time) (int, error)
	getSnapshotsFn     func(userID uint, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.RollupSnapshot], error)
}

func (m *mockSnapshotService) ComputeAndRecordSnapshots(recordedAt time.Time) (int, error) {
	if m.computeAndRecordFn != nil {
		return m.computeAndRecordFn(recordedAt)
	}
	return 0, nil
}

func (m *mockSnapshotService) GetSnapshots(userID uint, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.RollupSnapshot], error) {
	if m.getSnapshotsFn != nil {
		return m.getSnapshotsFn(userID, from, to, page)
	}
	resp := pagination.NewPageResponse([]models.RollupSnapshot{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

var (
	_ services.RollupServicer      = (*mockRollupService)(nil)
	_ services.DebtInsightServicer = (*mockInsightService)(nil)
	_ services.UpcomingServicer    = (*mockUpcomingService)(nil)
	_ services.SnapshotServicer    = (*mockSnapshotService)(nil)
)

func setupInsightsRouter(handler *InsightsHandler) *gin.Engine {
	r := gin.New()
	insights := r.Group("/insights", injectUserID(1))
	insights.GET("/rollup", handler.GetRollup)
	insights.GET("/debts", handler.GetDebtInsights)
	insights.GET("/upcoming", handler.GetUpcoming)
	insights.GET("/snapshots", handler.GetSnapshots)
	return r
}

func newInsightsHandler(
	rollup services.RollupServicer,
	insight services.DebtInsightServicer,
	upcoming services.UpcomingServicer,
	snapshot services.SnapshotServicer,
) *InsightsHandler {
	if rollup == nil {
		rollup = &mockRollupService{}
	}
	if insight == nil {
		insight = &mockInsightService{}
	}
	if upcoming == nil {
		upcoming = &mockUpcomingService{}
	}
	if snapshot == nil {
		snapshot = &mockSnapshotService{}
	}
	return NewInsightsHandler(rollup, insight, upcoming, snapshot)
}

// --- tests ---

func TestInsightsHandler_GetRollup(t *testing.T) {
	t.Run("returns 200 with summary and window", func(t *testing.T) {
		var gotWindow timewindow.Window
		rollupSvc := &mockRollupService{
			computeRollupFn: func(_ uint, window timewindow.Window) (*services.RollupSummary, error) {
				gotWindow = window
				return &services.RollupSummary{
					TotalIncome:      5000,
					TotalExpenses:    1200,
					DisposableAmount: 3800,
				}, nil
			},
		}
		handler := newInsightsHandler(rollupSvc, nil, nil, nil)
		r := setupInsightsRouter(handler)

		rec := doRequest(r, "GET", "/insights/rollup?window=month&at=2026-03-15T10:00:00Z", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		summary := result["summary"].(map[string]interface{})
		if summary["total_income"] != float64(5000) {
			t.Errorf("expected total_income 5000, got %v", summary["total_income"])
		}
		if summary["disposable_amount"] != float64(3800) {
			t.Errorf("expected disposable_amount 3800, got %v", summary["disposable_amount"])
		}

		wantStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		if !gotWindow.Start.Equal(wantStart) {
			t.Errorf("expected window start %v, got %v", wantStart, gotWindow.Start)
		}
	})

	t.Run("returns 400 on missing window", func(t *testing.T) {
		handler := newInsightsHandler(nil, nil, nil, nil)
		r := setupInsightsRouter(handler)

		rec := doRequest(r, "GET", "/insights/rollup", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_WINDOW")
	})

	t.Run("returns 400 on unknown window kind", func(t *testing.T) {
		handler := newInsightsHandler(nil, nil, nil, nil)
		r := setupInsightsRouter(handler)

		rec := doRequest(r, "GET", "/insights/rollup?window=week", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_WINDOW")
	})

	t.Run("returns 400 on malformed reference", func(t *testing.T) {
		handler := newInsightsHandler(nil, nil, nil, nil)
		r := setupInsightsRouter(handler)

		rec := doRequest(r, "GET", "/insights/rollup?window=month&at=march-15", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_REFERENCE")
	})

	t.Run("returns 404 when user not found", func(t *testing.T) {
		rollupSvc := &mockRollupService{
			computeRollupFn: func(_ uint, _ timewindow.Window) (*services.RollupSummary, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		handler := newInsightsHandler(rollupSvc, nil, nil, nil)
		r := setupInsightsRouter(handler)

		rec := doRequest(r, "GET", "/insights/rollup?window=month", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "USER_NOT_FOUND")
	})

	t.Run("defaults reference to now", func(t *testing.T) {
		var gotWindow timewindow.Window
		rollupSvc := &mockRollupService{
			computeRollupFn: func(_ uint, window timewindow.Window) (*services.RollupSummary, error) {
				gotWindow = window
				return &services.RollupSummary{}, nil
			},
		}
		handler := newInsightsHandler(rollupSvc, nil, nil, nil)
		r := setupInsightsRouter(handler)

		rec := doRequest(r, "GET", "/insights/rollup?window=day", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !gotWindow.Contains(time.Now().UTC()) {
			t.Errorf("expected window to contain now, got %v", gotWindow)
		}
	})
}

func TestInsightsHandler_GetDebtInsights(t *testing.T) {
	t.Run("returns 200 with insight", func(t *testing.T) {
		insightSvc := &mockInsightService{
			computeDebtInsightsFn: func(_ uint) (*services.DebtInsight, error) {
				return &services.DebtInsight{
					Debts: []services.DebtBreakdown{
						{Name: "Car loan", Amount: 1200000, InterestRate: 14.29},
					},
					SuggestedOrder: []services.DebtRank{
						{Name: "Car loan", InterestRate: 14.29},
					},
					Summary: services.DebtSummary{TotalDebt: 1200000, AvgInterestRate: 14.29, MonthlyPayment: 35000},
				}, nil
			},
		}
		handler := newInsightsHandler(nil, insightSvc, nil, nil)
		r := setupInsightsRouter(handler)

		rec := doRequest(r, "GET", "/insights/debts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		order := result["suggested_order"].([]interface{})
		if len(order) != 1 {
			t.Fatalf("expected 1 ranked debt, got %d", len(order))
		}
		first := order[0].(map[string]interface{})
		if first["name"] != "Car loan" {
			t.Errorf("expected Car loan first, got %v", first["name"])
		}
	})

	t.Run("returns empty lists for debt-free user", func(t *testing.T) {
		handler := newInsightsHandler(nil, nil, nil, nil)
		r := setupInsightsRouter(handler)

		rec := doRequest(r, "GET", "/insights/debts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if debts := result["debts"].([]interface{}); len(debts) != 0 {
			t.Errorf("expected empty debts, got %v", debts)
		}
	})
}

func TestInsightsHandler_GetUpcoming(t *testing.T) {
	t.Run("returns 200 with events", func(t *testing.T) {
		upcomingSvc := &mockUpcomingService{
			computeUpcomingFn: func(_ uint) (*services.UpcomingEvents, error) {
				return &services.UpcomingEvents{
					Appointments: []models.Appointment{{Title: "Dentist", Date: time.Now().Add(24 * time.Hour)}},
					DateNights:   []models.DateNight{},
					Expenses:     []models.Expense{},
				}, nil
			},
		}
		handler := newInsightsHandler(nil, nil, upcomingSvc, nil)
		r := setupInsightsRouter(handler)

		rec := doRequest(r, "GET", "/insights/upcoming", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		appts := result["appointments"].([]interface{})
		if len(appts) != 1 {
			t.Fatalf("expected 1 appointment, got %d", len(appts))
		}
	})
}

func TestInsightsHandler_GetSnapshots(t *testing.T) {
	t.Run("returns 200 with page", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		snapshotSvc := &mockSnapshotService{
			getSnapshotsFn: func(_ uint, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.RollupSnapshot], error) {
				gotFrom, gotTo = from, to
				resp := pagination.NewPageResponse([]models.RollupSnapshot{{UserID: 1}}, page.Page, page.PageSize, 1)
				return &resp, nil
			},
		}
		handler := newInsightsHandler(nil, nil, nil, snapshotSvc)
		r := setupInsightsRouter(handler)

		rec := doRequest(r, "GET", "/insights/snapshots?from=2026-01-01T00:00:00Z&to=2026-02-01T00:00:00Z", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_items"] != float64(1) {
			t.Errorf("expected 1 total item, got %v", result["total_items"])
		}
		if gotFrom != time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC) {
			t.Errorf("unexpected from: %v", gotFrom)
		}
		if gotTo != time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC) {
			t.Errorf("unexpected to: %v", gotTo)
		}
	})

	t.Run("returns 400 on malformed range", func(t *testing.T) {
		handler := newInsightsHandler(nil, nil, nil, nil)
		r := setupInsightsRouter(handler)

		rec := doRequest(r, "GET", "/insights/snapshots?from=yesterday", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_REFERENCE")
	})
}
