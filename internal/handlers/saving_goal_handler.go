package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finch/internal/errors"
	"finch/internal/pagination"
	"finch/internal/services"
)

// SavingGoalHandler handles saving goal requests
type SavingGoalHandler struct {
	goalService  services.SavingGoalServicer
	auditService services.AuditServicer
}

// NewSavingGoalHandler creates a new SavingGoalHandler
func NewSavingGoalHandler(goalService services.SavingGoalServicer, auditService services.AuditServicer) *SavingGoalHandler {
	return &SavingGoalHandler{goalService: goalService, auditService: auditService}
}

// CreateSavingGoalRequest represents the saving goal creation payload
type CreateSavingGoalRequest struct {
	Name          string    `json:"name" binding:"required,max=255"`
	Amount        int64     `json:"amount" binding:"required,min=1"`
	TotalAmount   int64     `json:"total_amount" binding:"min=0"`
	MonthlyTarget int64     `json:"monthly_target" binding:"min=0"`
	CompleteDate  time.Time `json:"complete_date" binding:"required,future_date"`
}

// RecordProgressRequest represents a progress update payload
type RecordProgressRequest struct {
	SavedMoney int64 `json:"saved_money" binding:"min=0"`
}

// CreateSavingGoal creates a new saving goal
// @Summary     Create saving goal
// @Description Create a new saving goal with a monthly target and completion date
// @Tags        saving-goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSavingGoalRequest true "Saving goal data"
// @Success     201 {object} models.SavingGoal "Saving goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /saving-goals [post]
func (h *SavingGoalHandler) CreateSavingGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSavingGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateSavingGoal(userID, req.Name, req.Amount,
		req.TotalAmount, req.MonthlyTarget, req.CompleteDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "saving_goal", goal.ID, c.ClientIP(), map[string]interface{}{
		"name":   goal.Name,
		"amount": goal.Amount,
	})

	c.JSON(http.StatusCreated, goal)
}

// GetSavingGoals lists the user's saving goals
// @Summary     List saving goals
// @Description List the authenticated user's saving goals
// @Tags        saving-goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.SavingGoal] "Saving goals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /saving-goals [get]
func (h *SavingGoalHandler) GetSavingGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	result, err := h.goalService.GetUserSavingGoals(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSavingGoal returns a single saving goal
// @Summary     Get saving goal
// @Description Get a saving goal by ID
// @Tags        saving-goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Saving goal ID"
// @Success     200 {object} models.SavingGoal "Saving goal"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Saving goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /saving-goals/{id} [get]
func (h *SavingGoalHandler) GetSavingGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetSavingGoalByID(userID, goalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// RecordProgress updates a saving goal's saved money
// @Summary     Record saving progress
// @Description Update the amount saved so far; the completion ratio is recomputed
// @Tags        saving-goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Saving goal ID"
// @Param       request body RecordProgressRequest true "Progress data"
// @Success     200 {object} models.SavingGoal "Saving goal updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Saving goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /saving-goals/{id}/progress [put]
func (h *SavingGoalHandler) RecordProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.RecordProgress(userID, goalID, req.SavedMoney)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "saving_goal", goal.ID, c.ClientIP(), map[string]interface{}{
		"saved_money": goal.SavedMoney,
	})

	c.JSON(http.StatusOK, goal)
}

// DeleteSavingGoal removes a saving goal
// @Summary     Delete saving goal
// @Description Soft-delete a saving goal
// @Tags        saving-goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Saving goal ID"
// @Success     204 "Saving goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Saving goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /saving-goals/{id} [delete]
func (h *SavingGoalHandler) DeleteSavingGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteSavingGoal(userID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "saving_goal", goalID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
