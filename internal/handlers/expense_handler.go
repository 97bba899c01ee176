package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/config"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/upload"
)

// ExpenseHandler handles expense requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// AddExpenseRequest represents the multipart form fields of an expense entry.
type AddExpenseRequest struct {
	Amount      int64   `form:"amount" binding:"required,gt=0"`
	Source      string  `form:"source" binding:"required,expense_source"`
	Description string  `form:"description" binding:"max=500"`
	BankName    *string `form:"bank_name"`
	WalletName  *string `form:"wallet_name"`
}

// UpdateExpenseRequest represents a partial expense update
type UpdateExpenseRequest struct {
	Amount      *int64  `json:"amount" binding:"omitempty,gt=0"`
	Source      *string `json:"source" binding:"omitempty,expense_source"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// Add records an expense entry with its receipt
// @Summary     Add expense
// @Description Record a money-out entry with a mandatory receipt attachment
// @Tags        expense
// @Accept      multipart/form-data
// @Produce     json
// @Security    TokenAuth
// @Param       amount formData integer true "Amount in cents"
// @Param       source formData string true "Expense source"
// @Param       description formData string false "Description"
// @Param       bank_name formData string false "Paying bank name"
// @Param       wallet_name formData string false "Paying wallet name"
// @Param       file formData file true "Receipt image (max 5MB)"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     413 {object} ErrorResponse "Missing or oversized attachment"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/add [post]
func (h *ExpenseHandler) Add(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddExpenseRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.ErrAttachmentRequired)
		return
	}

	path, err := upload.Save(c, file, config.Get().UploadDir)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.AddExpense(userID, services.ExpenseInput{
		Amount:      req.Amount,
		Source:      req.Source,
		Description: req.Description,
		Attachment:  path,
		BankName:    req.BankName,
		WalletName:  req.WalletName,
	})
	if err != nil {
		upload.Remove(path)
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount, "source": req.Source})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// Update applies a partial update to an expense entry
// @Summary     Update expense
// @Tags        expense
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       id path int true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to update"
// @Success     200 {object} map[string]int64 "Rows updated"
// @Failure     400 {object} ErrorResponse "Invalid input or no fields"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/update/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updated, err := h.expenseService.UpdateExpense(userID, expenseID, services.ExpenseUpdateFields{
		Amount:      req.Amount,
		Source:      req.Source,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// Delete removes an expense entry and its receipt file
// @Summary     Delete expense
// @Tags        expense
// @Produce     json
// @Security    TokenAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} map[string]string "Deletion confirmation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/delete/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// Total returns the sum of all expense amounts
// @Summary     Get expense total
// @Tags        expense
// @Produce     json
// @Security    TokenAuth
// @Success     200 {object} map[string]int64 "Total expenses in cents"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/get [get]
func (h *ExpenseHandler) Total(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.expenseService.GetTotal(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}

// History returns the paginated expense history
// @Summary     List expense history
// @Tags        expense
// @Produce     json
// @Security    TokenAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Expense page"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/getAll [get]
func (h *ExpenseHandler) History(c *gin.Context) {
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

	history, err := h.expenseService.GetHistory(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// Stats returns time-bucketed spending aggregates
// @Summary     Get expense statistics
// @Description Summary sums plus per-bucket frequency series for today, week, month, and year
// @Tags        expense
// @Produce     json
// @Security    TokenAuth
// @Success     200 {object} services.ExpenseStats "Expense statistics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/stats [get]
func (h *ExpenseHandler) Stats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.expenseService.GetStats(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
