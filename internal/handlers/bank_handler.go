package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// BankHandler handles bank-account requests.
type BankHandler struct {
	bankService  services.BankServicer
	auditService services.AuditServicer
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(bankService services.BankServicer, auditService services.AuditServicer) *BankHandler {
	return &BankHandler{bankService: bankService, auditService: auditService}
}

// CreateBankRequest represents the request payload for linking a bank account
type CreateBankRequest struct {
	Name   string `json:"name" binding:"required,bank_name"`
	Amount int64  `json:"amount" binding:"gte=0"`
}

// UpdateBankRequest represents the request payload for updating a bank balance
type UpdateBankRequest struct {
	Name   string `json:"name" binding:"required,bank_name"`
	Amount int64  `json:"amount" binding:"gte=0"`
}

// TransactionsRequest selects a bank or wallet by name
type TransactionsRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create links a bank account
// @Summary     Link a bank account
// @Description Add one of the supported banks to the authenticated user
// @Tags        bank
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       request body CreateBankRequest true "Bank account details"
// @Success     201 {object} models.BankAccount "Bank account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Bank already linked"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bank/create [post]
func (h *BankHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.bankService.CreateBankAccount(userID, req.Name, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BANK", "bank_account", account.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusCreated, gin.H{"bank": account})
}

// Get lists the user's bank accounts
// @Summary     List bank accounts
// @Tags        bank
// @Produce     json
// @Security    TokenAuth
// @Success     200 {array} models.BankAccount "Bank accounts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bank/get [get]
func (h *BankHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accounts, err := h.bankService.GetUserBankAccounts(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"banks": accounts})
}

// Update sets the balance of a linked bank
// @Summary     Update a bank balance
// @Tags        bank
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       request body UpdateBankRequest true "Bank name and new balance"
// @Success     200 {object} map[string]int64 "Rows updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bank not linked"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bank/update [put]
func (h *BankHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updated, err := h.bankService.UpdateBankAccount(userID, req.Name, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BANK", "bank_account", 0, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "amount": req.Amount})

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// Delete unlinks a bank account
// @Summary     Delete a bank account
// @Tags        bank
// @Produce     json
// @Security    TokenAuth
// @Param       name query string true "Bank name"
// @Success     200 {object} map[string]string "Deletion confirmation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bank not linked"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bank/delete [delete]
func (h *BankHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	name := c.Query("name")
	if name == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Bank name is required"))
		return
	}

	if err := h.bankService.DeleteBankAccount(userID, name); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BANK", "bank_account", 0, c.ClientIP(),
		map[string]interface{}{"name": name})

	c.JSON(http.StatusOK, gin.H{"message": "Bank account deleted"})
}

// Balance returns the combined balance of all linked banks
// @Summary     Get total bank balance
// @Tags        bank
// @Produce     json
// @Security    TokenAuth
// @Success     200 {object} map[string]int64 "Total balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bank/balance [get]
func (h *BankHandler) Balance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.bankService.GetBalance(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// Transactions lists incomes and expenses tied to one bank
// @Summary     Get bank transactions
// @Description List the incomes and expenses that reference a linked bank
// @Tags        bank
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       request body TransactionsRequest true "Bank name"
// @Success     200 {object} services.OriginTransactions "Incomes and expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bank not linked"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bank/transactions [post]
func (h *BankHandler) Transactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if !models.ValidBankName(req.Name) {
		respondWithError(c, apperrors.ErrInvalidBankName)
		return
	}

	transactions, err := h.bankService.GetTransactions(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}
