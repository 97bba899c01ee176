package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"fintrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
		Pin:      "1234",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBankAccount links a bank account with the given balance (in cents).
func CreateTestBankAccount(t *testing.T, db *gorm.DB, userID uint, name string, amount int64) *models.BankAccount {
	t.Helper()

	account := &models.BankAccount{
		UserID: userID,
		Name:   models.BankName(name),
		Amount: amount,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test bank account: %v", err)
	}
	return account
}

// CreateTestWallet creates a wallet with the given balance (in cents).
func CreateTestWallet(t *testing.T, db *gorm.DB, userID uint, name string, amount int64) *models.Wallet {
	t.Helper()

	wallet := &models.Wallet{
		UserID:       userID,
		Name:         name,
		Amount:       amount,
		WalletNumber: fmt.Sprintf("W-TEST%06d", nextID()),
	}
	if err := db.Create(wallet).Error; err != nil {
		t.Fatalf("failed to create test wallet: %v", err)
	}
	return wallet
}

// CreateTestIncome creates an income record with a placeholder attachment.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, amount int64) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:     userID,
		Amount:     amount,
		Source:     "salary",
		Attachment: fmt.Sprintf("uploads/receipt-%d.jpg", nextID()),
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestExpense creates an expense record with a placeholder attachment.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, amount int64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:     userID,
		Amount:     amount,
		Source:     "food",
		Attachment: fmt.Sprintf("uploads/receipt-%d.jpg", nextID()),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestTransfer creates a transfer record.
func CreateTestTransfer(t *testing.T, db *gorm.DB, userID uint, amount int64, isExpense bool) *models.Transfer {
	t.Helper()

	transfer := &models.Transfer{
		UserID:    userID,
		Amount:    amount,
		Sender:    fmt.Sprintf("Sender %d", nextID()),
		Receiver:  fmt.Sprintf("Receiver %d", nextID()),
		IsExpense: isExpense,
	}
	if err := db.Create(transfer).Error; err != nil {
		t.Fatalf("failed to create test transfer: %v", err)
	}
	return transfer
}

// CreateTestBudget creates a budget with the given total (in cents).
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, totalBudget int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Budget %d", nextID()),
		TotalBudget: totalBudget,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
