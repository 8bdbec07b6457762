package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finch/internal/errors"
	"finch/internal/pagination"
	"finch/internal/services"
)

// DebtHandler handles debt record requests
type DebtHandler struct {
	debtService  services.DebtServicer
	auditService services.AuditServicer
}

// NewDebtHandler creates a new DebtHandler
func NewDebtHandler(debtService services.DebtServicer, auditService services.AuditServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService, auditService: auditService}
}

// CreateDebtRequest represents the debt creation payload
type CreateDebtRequest struct {
	Name              string    `json:"name" binding:"required,max=255"`
	Amount            int64     `json:"amount" binding:"required,min=1"`
	MonthlyPayment    int64     `json:"monthly_payment" binding:"min=0"`
	AdHocPayment      int64     `json:"ad_hoc_payment" binding:"min=0"`
	CapitalRepayment  int64     `json:"capital_repayment" binding:"min=0"`
	InterestRepayment int64     `json:"interest_repayment" binding:"min=0"`
	PayDueDate        time.Time `json:"pay_due_date" binding:"required"`
}

// UpdateDebtRequest represents the debt update payload. Nil fields are left
// unchanged.
type UpdateDebtRequest struct {
	Name              string     `json:"name" binding:"omitempty,max=255"`
	Amount            *int64     `json:"amount" binding:"omitempty,min=1"`
	MonthlyPayment    *int64     `json:"monthly_payment" binding:"omitempty,min=0"`
	CapitalRepayment  *int64     `json:"capital_repayment" binding:"omitempty,min=0"`
	InterestRepayment *int64     `json:"interest_repayment" binding:"omitempty,min=0"`
	PayDueDate        *time.Time `json:"pay_due_date" binding:"omitempty"`
}

// CreateDebt creates a new debt record
// @Summary     Create debt
// @Description Create a new debt record with its monthly payment decomposition
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDebtRequest true "Debt data"
// @Success     201 {object} models.Debt "Debt created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.debtService.CreateDebt(userID, req.Name, req.Amount, req.MonthlyPayment,
		req.AdHocPayment, req.CapitalRepayment, req.InterestRepayment, req.PayDueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "debt", debt.ID, c.ClientIP(), map[string]interface{}{
		"name":   debt.Name,
		"amount": debt.Amount,
	})

	c.JSON(http.StatusCreated, debt)
}

// GetDebts lists the user's debts
// @Summary     List debts
// @Description List the authenticated user's debt records
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.Debt] "Debts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [get]
func (h *DebtHandler) GetDebts(c *gin.Context) {
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

	result, err := h.debtService.GetUserDebts(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDebt returns a single debt record
// @Summary     Get debt
// @Description Get a debt record by ID
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Debt ID"
// @Success     200 {object} models.Debt "Debt"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [get]
func (h *DebtHandler) GetDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.GetDebtByID(userID, debtID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, debt)
}

// UpdateDebt updates a debt record
// @Summary     Update debt
// @Description Update a debt record; omitted fields are left unchanged
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Debt ID"
// @Param       request body UpdateDebtRequest true "Fields to update"
// @Success     200 {object} models.Debt "Debt updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [put]
func (h *DebtHandler) UpdateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.debtService.UpdateDebt(userID, debtID, req.Name, req.Amount,
		req.MonthlyPayment, req.CapitalRepayment, req.InterestRepayment, req.PayDueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "debt", debt.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, debt)
}

// DeleteDebt removes a debt record
// @Summary     Delete debt
// @Description Soft-delete a debt record
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Debt ID"
// @Success     204 "Debt deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debtService.DeleteDebt(userID, debtID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "debt", debtID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
