package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// WalletHandler handles wallet requests.
type WalletHandler struct {
	walletService services.WalletServicer
	auditService  services.AuditServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer, auditService services.AuditServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService, auditService: auditService}
}

// CreateWalletRequest represents the request payload for creating a wallet
type CreateWalletRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Amount int64  `json:"amount" binding:"gte=0"`
}

// UpdateWalletRequest represents the request payload for updating a wallet balance
type UpdateWalletRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Amount int64  `json:"amount" binding:"gte=0"`
}

// Create opens a new wallet
// @Summary     Create a wallet
// @Description Open a named wallet; the wallet number is assigned server-side
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       request body CreateWalletRequest true "Wallet details"
// @Success     201 {object} models.Wallet "Wallet created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Wallet name taken"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/create [post]
func (h *WalletHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	wallet, err := h.walletService.CreateWallet(userID, req.Name, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_WALLET", "wallet", wallet.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "wallet_number": wallet.WalletNumber})

	c.JSON(http.StatusCreated, gin.H{"wallet": wallet})
}

// GetAll lists the user's wallets
// @Summary     List wallets
// @Tags        wallet
// @Produce     json
// @Security    TokenAuth
// @Success     200 {array} models.Wallet "Wallets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/getall [get]
func (h *WalletHandler) GetAll(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	wallets, err := h.walletService.GetUserWallets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallets": wallets})
}

// Names lists just the wallet names, for origin pickers
// @Summary     List wallet names
// @Tags        wallet
// @Produce     json
// @Security    TokenAuth
// @Success     200 {array} string "Wallet names"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/wallets [get]
func (h *WalletHandler) Names(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	names, err := h.walletService.GetWalletNames(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallets": names})
}

// Update sets the balance of a wallet addressed by name
// @Summary     Update a wallet balance
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       request body UpdateWalletRequest true "Wallet name and new balance"
// @Success     200 {object} map[string]int64 "Rows updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/update [put]
func (h *WalletHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updated, err := h.walletService.UpdateWallet(userID, req.Name, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_WALLET", "wallet", 0, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "amount": req.Amount})

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// Delete removes a wallet addressed by its wallet number
// @Summary     Delete a wallet
// @Tags        wallet
// @Produce     json
// @Security    TokenAuth
// @Param       number query string true "Wallet number"
// @Success     200 {object} map[string]string "Deletion confirmation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/delete [delete]
func (h *WalletHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	number := c.Query("number")
	if number == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Wallet number is required"))
		return
	}

	if err := h.walletService.DeleteWallet(userID, number); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_WALLET", "wallet", 0, c.ClientIP(),
		map[string]interface{}{"wallet_number": number})

	c.JSON(http.StatusOK, gin.H{"message": "Wallet deleted"})
}

// Balance returns the combined balance across wallets
// @Summary     Get total wallet balance
// @Tags        wallet
// @Produce     json
// @Security    TokenAuth
// @Success     200 {object} map[string]int64 "Total balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/balance [get]
func (h *WalletHandler) Balance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.walletService.GetBalance(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// Transactions lists incomes and expenses tied to one wallet
// @Summary     Get wallet transactions
// @Description List the incomes and expenses that reference a wallet
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       request body TransactionsRequest true "Wallet name"
// @Success     200 {object} services.OriginTransactions "Incomes and expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/transactions [post]
func (h *WalletHandler) Transactions(c *gin.Context) {
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

	transactions, err := h.walletService.GetTransactions(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}
