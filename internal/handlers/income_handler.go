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

// IncomeHandler handles income requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
	auditService  services.AuditServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer, auditService services.AuditServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService, auditService: auditService}
}

// AddIncomeRequest represents the multipart form fields of an income entry.
// The receipt file travels alongside as the "file" part.
type AddIncomeRequest struct {
	Amount      int64   `form:"amount" binding:"required,gt=0"`
	Source      string  `form:"source" binding:"required,income_source"`
	Description string  `form:"description" binding:"max=500"`
	BankName    *string `form:"bank_name"`
	WalletName  *string `form:"wallet_name"`
}

// UpdateIncomeRequest represents a partial income update
type UpdateIncomeRequest struct {
	Amount      *int64  `json:"amount" binding:"omitempty,gt=0"`
	Source      *string `json:"source" binding:"omitempty,income_source"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// Add records an income entry with its receipt
// @Summary     Add income
// @Description Record a money-in entry with a mandatory receipt attachment
// @Tags        income
// @Accept      multipart/form-data
// @Produce     json
// @Security    TokenAuth
// @Param       amount formData integer true "Amount in cents"
// @Param       source formData string true "Income source"
// @Param       description formData string false "Description"
// @Param       bank_name formData string false "Funding bank name"
// @Param       wallet_name formData string false "Funding wallet name"
// @Param       file formData file true "Receipt image (max 5MB)"
// @Success     201 {object} models.Income "Income created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     413 {object} ErrorResponse "Missing or oversized attachment"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/add [post]
func (h *IncomeHandler) Add(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddIncomeRequest
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

	income, err := h.incomeService.AddIncome(userID, services.IncomeInput{
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

	h.auditService.Log(userID, "ADD_INCOME", "income", income.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount, "source": req.Source})

	c.JSON(http.StatusCreated, gin.H{"income": income})
}

// Update applies a partial update to an income entry
// @Summary     Update income
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       id path int true "Income ID"
// @Param       request body UpdateIncomeRequest true "Fields to update"
// @Success     200 {object} map[string]int64 "Rows updated"
// @Failure     400 {object} ErrorResponse "Invalid input or no fields"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/update/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updated, err := h.incomeService.UpdateIncome(userID, incomeID, services.IncomeUpdateFields{
		Amount:      req.Amount,
		Source:      req.Source,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_INCOME", "income", incomeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// Delete removes an income entry and its receipt file
// @Summary     Delete income
// @Tags        income
// @Produce     json
// @Security    TokenAuth
// @Param       id path int true "Income ID"
// @Success     200 {object} map[string]string "Deletion confirmation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/delete/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncome(userID, incomeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_INCOME", "income", incomeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted"})
}

// Total returns the sum of all income amounts
// @Summary     Get income total
// @Tags        income
// @Produce     json
// @Security    TokenAuth
// @Success     200 {object} map[string]int64 "Total income in cents"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/get [get]
func (h *IncomeHandler) Total(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.incomeService.GetTotal(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}

// History returns the paginated income history
// @Summary     List income history
// @Tags        income
// @Produce     json
// @Security    TokenAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Income] "Income page"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/all [get]
func (h *IncomeHandler) History(c *gin.Context) {
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

	history, err := h.incomeService.GetHistory(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
