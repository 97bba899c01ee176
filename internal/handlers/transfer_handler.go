package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// TransferHandler handles transfer requests.
type TransferHandler struct {
	transferService services.TransferServicer
	auditService    services.AuditServicer
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferService services.TransferServicer, auditService services.AuditServicer) *TransferHandler {
	return &TransferHandler{transferService: transferService, auditService: auditService}
}

// AddTransferRequest represents the request payload for recording a transfer
type AddTransferRequest struct {
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Sender    string `json:"sender" binding:"required,min=1,max=100"`
	Receiver  string `json:"receiver" binding:"required,min=1,max=100"`
	IsExpense bool   `json:"is_expense"`
}

// UpdateTransferRequest represents a partial transfer update
type UpdateTransferRequest struct {
	Amount    *int64  `json:"amount" binding:"omitempty,gt=0"`
	Sender    *string `json:"sender" binding:"omitempty,min=1,max=100"`
	Receiver  *string `json:"receiver" binding:"omitempty,min=1,max=100"`
	IsExpense *bool   `json:"is_expense"`
}

// Add records a transfer
// @Summary     Add transfer
// @Description Record a movement of money between two parties
// @Tags        transfer
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       request body AddTransferRequest true "Transfer details"
// @Success     201 {object} models.Transfer "Transfer created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transfer/add [post]
func (h *TransferHandler) Add(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transfer, err := h.transferService.AddTransfer(userID, req.Amount, req.Sender, req.Receiver, req.IsExpense)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_TRANSFER", "transfer", transfer.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount, "sender": req.Sender, "receiver": req.Receiver})

	c.JSON(http.StatusCreated, gin.H{"transfer": transfer})
}

// Update applies a partial update to a transfer
// @Summary     Update transfer
// @Tags        transfer
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       id path int true "Transfer ID"
// @Param       request body UpdateTransferRequest true "Fields to update"
// @Success     200 {object} map[string]int64 "Rows updated"
// @Failure     400 {object} ErrorResponse "Invalid input or no fields"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transfer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transfer/update/{id} [put]
func (h *TransferHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transferID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updated, err := h.transferService.UpdateTransfer(userID, transferID, services.TransferUpdateFields{
		Amount:    req.Amount,
		Sender:    req.Sender,
		Receiver:  req.Receiver,
		IsExpense: req.IsExpense,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TRANSFER", "transfer", transferID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// Delete removes a transfer
// @Summary     Delete transfer
// @Tags        transfer
// @Produce     json
// @Security    TokenAuth
// @Param       id path int true "Transfer ID"
// @Success     200 {object} map[string]string "Deletion confirmation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transfer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transfer/delete/{id} [delete]
func (h *TransferHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transferID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transferService.DeleteTransfer(userID, transferID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRANSFER", "transfer", transferID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transfer deleted"})
}

// GetAll returns the paginated transfer history
// @Summary     List transfers
// @Tags        transfer
// @Produce     json
// @Security    TokenAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Transfer] "Transfer page"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transfer/getall [get]
func (h *TransferHandler) GetAll(c *gin.Context) {
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

	transfers, err := h.transferService.GetTransfers(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transfers)
}
