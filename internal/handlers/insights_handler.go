package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finch/internal/errors"
	"finch/internal/pagination"
	"finch/internal/services"
	"finch/internal/timewindow"
)

// InsightsHandler handles insight and projection requests
type InsightsHandler struct {
	rollupService   services.RollupServicer
	insightService  services.DebtInsightServicer
	upcomingService services.UpcomingServicer
	snapshotService services.SnapshotServicer
}

// NewInsightsHandler creates a new InsightsHandler
func NewInsightsHandler(
	rollupService services.RollupServicer,
	insightService services.DebtInsightServicer,
	upcomingService services.UpcomingServicer,
	snapshotService services.SnapshotServicer,
) *InsightsHandler {
	return &InsightsHandler{
		rollupService:   rollupService,
		insightService:  insightService,
		upcomingService: upcomingService,
		snapshotService: snapshotService,
	}
}

// RollupQuery represents the rollup query parameters
type RollupQuery struct {
	Window string `form:"window" binding:"required,window_kind"`
	At     string `form:"at" binding:"omitempty"`
}

// RollupResponse represents the rollup summary response
type RollupResponse struct {
	Window  timewindow.Window      `json:"window"`
	Summary services.RollupSummary `json:"summary"`
}

// GetRollup returns the financial rollup for a calendar window
// @Summary     Get financial rollup
// @Description Aggregate incomes, expenses, budgets, saving goals and debts for the calendar window containing the reference instant
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       window query string true "Window kind" Enums(month, year, day)
// @Param       at query string false "Reference instant (RFC 3339, defaults to now)"
// @Success     200 {object} RollupResponse "Rollup summary"
// @Failure     400 {object} ErrorResponse "Invalid window or reference"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/rollup [get]
func (h *InsightsHandler) GetRollup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query RollupQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidWindow, err.Error()))
		return
	}

	ref, err := timewindow.ParseReference(query.At)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidReference, err))
		return
	}

	window, err := timewindow.For(timewindow.Kind(query.Window), ref)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidWindow, err))
		return
	}

	summary, err := h.rollupService.ComputeRollup(userID, window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window":  window,
		"summary": summary,
	})
}

// GetDebtInsights returns the prioritized debt insights
// @Summary     Get debt insights
// @Description Rank debts by derived interest rate and return the suggested payoff order with a portfolio summary
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DebtInsight "Debt insights"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/debts [get]
func (h *InsightsHandler) GetDebtInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	insight, err := h.insightService.ComputeDebtInsights(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, insight)
}

// GetUpcoming returns the nearest future events per type
// @Summary     Get upcoming events
// @Description Return the nearest future appointments, date nights and recurring expenses, up to two per type
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.UpcomingEvents "Upcoming events"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/upcoming [get]
func (h *InsightsHandler) GetUpcoming(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	events, err := h.upcomingService.ComputeUpcoming(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// SnapshotQuery represents the snapshot listing query parameters
type SnapshotQuery struct {
	From string `form:"from" binding:"omitempty"`
	To   string `form:"to" binding:"omitempty"`
	pagination.PageRequest
}

// GetSnapshots returns recorded rollup snapshots within a time range
// @Summary     List rollup snapshots
// @Description List nightly rollup snapshots recorded for the user, optionally filtered by time range
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Range start (RFC 3339, defaults to 30 days ago)"
// @Param       to query string false "Range end (RFC 3339, defaults to now)"
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.RollupSnapshot] "Snapshots"
// @Failure     400 {object} ErrorResponse "Invalid range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/snapshots [get]
func (h *InsightsHandler) GetSnapshots(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query SnapshotQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	query.Defaults()

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now
	if query.From != "" {
		from, err = timewindow.ParseReference(query.From)
		if err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidReference, err))
			return
		}
	}
	if query.To != "" {
		to, err = timewindow.ParseReference(query.To)
		if err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidReference, err))
			return
		}
	}

	result, err := h.snapshotService.GetSnapshots(userID, from, to, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
