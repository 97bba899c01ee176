// Package errors provides custom error types for the API. All service-layer
// errors should use AppError to ensure consistent, secure error responses
// that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Invalid or expired token", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User does not exist", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrImageNotFound  = &AppError{Code: "IMAGE_NOT_FOUND", Message: "No profile image uploaded", StatusCode: http.StatusNotFound}
)

// Bank account errors.
var (
	ErrInvalidBankName = &AppError{Code: "INVALID_BANK_NAME", Message: "Invalid bank name", StatusCode: http.StatusBadRequest}
	ErrDuplicateBank   = &AppError{Code: "DUPLICATE_BANK", Message: "Bank account already exists", StatusCode: http.StatusConflict}
	ErrBankNotFound    = &AppError{Code: "BANK_NOT_FOUND", Message: "No bank account found", StatusCode: http.StatusNotFound}
)

// Wallet errors.
var (
	ErrDuplicateWallet = &AppError{Code: "DUPLICATE_WALLET", Message: "Wallet with this name already exists", StatusCode: http.StatusConflict}
	ErrWalletNotFound  = &AppError{Code: "WALLET_NOT_FOUND", Message: "No wallet found", StatusCode: http.StatusNotFound}
)

// Income and expense errors.
var (
	ErrInvalidIncomeSource  = &AppError{Code: "INVALID_INCOME_SOURCE", Message: "Invalid income source", StatusCode: http.StatusBadRequest}
	ErrInvalidExpenseSource = &AppError{Code: "INVALID_EXPENSE_SOURCE", Message: "Invalid expense source", StatusCode: http.StatusBadRequest}
	ErrIncomeNotFound       = &AppError{Code: "INCOME_NOT_FOUND", Message: "Income not found", StatusCode: http.StatusNotFound}
	ErrExpenseNotFound      = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrAttachmentRequired   = &AppError{Code: "ATTACHMENT_REQUIRED", Message: "File not uploaded! Please attach a jpeg/png file under 5 MB", StatusCode: http.StatusRequestEntityTooLarge}
)

// Transfer errors.
var (
	ErrTransferNotFound = &AppError{Code: "TRANSFER_NOT_FOUND", Message: "Transfer not found", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
	ErrNoUpdateFields = &AppError{Code: "NO_UPDATE_FIELDS", Message: "No fields to update", StatusCode: http.StatusBadRequest}
)

// Upload errors.
var (
	ErrInvalidFileType = &AppError{Code: "INVALID_FILE_TYPE", Message: "Only jpeg and png images are accepted", StatusCode: http.StatusBadRequest}
	ErrFileTooLarge    = &AppError{Code: "FILE_TOO_LARGE", Message: "File exceeds the 5 MB limit", StatusCode: http.StatusRequestEntityTooLarge}
)

// Export errors.
var (
	ErrNoExportData    = &AppError{Code: "NO_EXPORT_DATA", Message: "No data available for export", StatusCode: http.StatusNotFound}
	ErrInvalidFormat   = &AppError{Code: "INVALID_EXPORT_FORMAT", Message: "Unsupported export format", StatusCode: http.StatusBadRequest}
	ErrInvalidDataType = &AppError{Code: "INVALID_EXPORT_TYPE", Message: "Unsupported export data type", StatusCode: http.StatusBadRequest}
)
