package services

import (
	"io"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password, pin string, image *string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	SetImage(userID uint, path string) error
	GetImage(userID uint) (string, error)
}

// BankServicer defines the contract for bank-account business logic.
type BankServicer interface {
	CreateBankAccount(userID uint, name string, amount int64) (*models.BankAccount, error)
	GetUserBankAccounts(userID uint) ([]models.BankAccount, error)
	UpdateBankAccount(userID uint, name string, amount int64) (int64, error)
	DeleteBankAccount(userID uint, name string) error
	GetBalance(userID uint) (int64, error)
	GetTransactions(userID uint, bankName string) (*OriginTransactions, error)
}

// WalletServicer defines the contract for wallet business logic.
type WalletServicer interface {
	CreateWallet(userID uint, name string, amount int64) (*models.Wallet, error)
	GetUserWallets(userID uint) ([]models.Wallet, error)
	GetWalletNames(userID uint) ([]string, error)
	UpdateWallet(userID uint, name string, amount int64) (int64, error)
	DeleteWallet(userID uint, walletNumber string) error
	GetBalance(userID uint) (int64, error)
	GetTransactions(userID uint, walletName string) (*OriginTransactions, error)
}

// IncomeInput carries a validated income creation request.
type IncomeInput struct {
	Amount      int64
	Source      string
	Description string
	Attachment  string
	BankName    *string
	WalletName  *string
}

// IncomeUpdateFields holds the optional fields of a partial income update.
type IncomeUpdateFields struct {
	Amount      *int64
	Source      *string
	Description *string
}

// IncomeServicer defines the contract for income business logic.
type IncomeServicer interface {
	AddIncome(userID uint, in IncomeInput) (*models.Income, error)
	UpdateIncome(userID, incomeID uint, fields IncomeUpdateFields) (int64, error)
	DeleteIncome(userID, incomeID uint) error
	GetTotal(userID uint) (int64, error)
	GetHistory(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
}

// ExpenseInput carries a validated expense creation request.
type ExpenseInput struct {
	Amount      int64
	Source      string
	Description string
	Attachment  string
	BankName    *string
	WalletName  *string
}

// ExpenseUpdateFields holds the optional fields of a partial expense update.
type ExpenseUpdateFields struct {
	Amount      *int64
	Source      *string
	Description *string
}

// ExpenseServicer defines the contract for expense business logic.
type ExpenseServicer interface {
	AddExpense(userID uint, in ExpenseInput) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, fields ExpenseUpdateFields) (int64, error)
	DeleteExpense(userID, expenseID uint) error
	GetTotal(userID uint) (int64, error)
	GetHistory(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetStats(userID uint) (*ExpenseStats, error)
}

// TransferUpdateFields holds the optional fields of a partial transfer update.
type TransferUpdateFields struct {
	Amount    *int64
	Sender    *string
	Receiver  *string
	IsExpense *bool
}

// TransferServicer defines the contract for transfer business logic.
type TransferServicer interface {
	AddTransfer(userID uint, amount int64, sender, receiver string, isExpense bool) (*models.Transfer, error)
	UpdateTransfer(userID, transferID uint, fields TransferUpdateFields) (int64, error)
	DeleteTransfer(userID, transferID uint) error
	GetTransfers(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transfer], error)
}

// BudgetUpdateFields holds the optional fields of a partial budget update.
type BudgetUpdateFields struct {
	Name        *string
	TotalBudget *int64
	Current     *int64
}

// BudgetServicer defines the contract for budget business logic.
type BudgetServicer interface {
	CreateBudget(userID uint, name string, totalBudget int64) (*models.Budget, error)
	UpdateBudget(userID, budgetID uint, fields BudgetUpdateFields) (int64, error)
	DeleteBudget(userID, budgetID uint) error
	GetBudgets(userID uint) ([]models.Budget, error)
	GetBudgetsByMonth(userID uint, month, year int) ([]models.Budget, error)
}

// ExportServicer defines the contract for report generation.
type ExportServicer interface {
	Export(user *models.User, dataType, dateRange, format string, w io.Writer) (*ExportResult, error)
}

// AuditServicer defines the contract for audit log recording.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any)
}
