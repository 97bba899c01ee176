package services

import (
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// bankService handles bank-account business logic.
type bankService struct {
	db *gorm.DB
}

// NewBankService creates a new BankServicer.
func NewBankService(db *gorm.DB) BankServicer {
	return &bankService{db: db}
}

// CreateBankAccount opens an account at one of the supported banks for a
// user. A second account at the same bank is a Conflict, enforced by the
// (user_id, name) unique constraint.
func (s *bankService) CreateBankAccount(userID uint, name string, amount int64) (*models.BankAccount, error) {
	if !models.ValidBankName(name) {
		return nil, apperrors.ErrInvalidBankName
	}

	account := &models.BankAccount{
		UserID: userID,
		Name:   models.BankName(name),
		Amount: amount,
	}

	if err := s.db.Create(account).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, apperrors.ErrDuplicateBank
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return account, nil
}

// GetUserBankAccounts returns all accounts owned by a user.
func (s *bankService) GetUserBankAccounts(userID uint) ([]models.BankAccount, error) {
	var accounts []models.BankAccount
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// UpdateBankAccount sets the amount on the account addressed by its bank
// name. Returns the number of rows affected.
func (s *bankService) UpdateBankAccount(userID uint, name string, amount int64) (int64, error) {
	if !models.ValidBankName(name) {
		return 0, apperrors.ErrInvalidBankName
	}

	result := s.db.Model(&models.BankAccount{}).
		Where("user_id = ? AND name = ?", userID, name).
		Update("amount", amount)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.ErrBankNotFound
	}
	return result.RowsAffected, nil
}

// DeleteBankAccount removes the account addressed by its bank name.
func (s *bankService) DeleteBankAccount(userID uint, name string) error {
	if !models.ValidBankName(name) {
		return apperrors.ErrInvalidBankName
	}

	result := s.db.Where("user_id = ? AND name = ?", userID, name).Delete(&models.BankAccount{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.WithMessage(apperrors.ErrBankNotFound, "No bank account found to delete")
	}
	return nil
}

// GetBalance returns the sum of all account amounts for a user. A user with
// no accounts has a balance of zero.
func (s *bankService) GetBalance(userID uint) (int64, error) {
	var balance int64
	err := s.db.Model(&models.BankAccount{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return balance, nil
}

// GetTransactions returns the income and expense rows funded through the
// given bank. The two queries are independent and issued concurrently; the
// results are joined only in the response struct.
func (s *bankService) GetTransactions(userID uint, bankName string) (*OriginTransactions, error) {
	if !models.ValidBankName(bankName) {
		return nil, apperrors.ErrInvalidBankName
	}

	var txns OriginTransactions
	var g errgroup.Group

	g.Go(func() error {
		return s.db.Where("user_id = ? AND bank_name = ?", userID, bankName).
			Order("created_at DESC").
			Find(&txns.Incomes).Error
	})
	g.Go(func() error {
		return s.db.Where("user_id = ? AND bank_name = ?", userID, bankName).
			Order("created_at DESC").
			Find(&txns.Expenses).Error
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &txns, nil
}
