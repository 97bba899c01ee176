package services

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// walletService handles wallet business logic.
type walletService struct {
	db *gorm.DB
}

// NewWalletService creates a new WalletServicer.
func NewWalletService(db *gorm.DB) WalletServicer {
	return &walletService{db: db}
}

// newWalletNumber derives a short, collision-resistant wallet number.
func newWalletNumber() string {
	u := uuid.New()
	return fmt.Sprintf("W-%X%X%X%X", u[0], u[1], u[2], u[3])
}

// CreateWallet creates a named wallet and assigns its wallet number. A
// duplicate (owner, name) pair is a Conflict via the unique constraint.
func (s *walletService) CreateWallet(userID uint, name string, amount int64) (*models.Wallet, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Wallet name is required")
	}

	wallet := &models.Wallet{
		UserID:       userID,
		Name:         name,
		Amount:       amount,
		WalletNumber: newWalletNumber(),
	}

	if err := s.db.Create(wallet).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, apperrors.ErrDuplicateWallet
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return wallet, nil
}

// GetUserWallets returns all wallets owned by a user.
func (s *walletService) GetUserWallets(userID uint) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&wallets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return wallets, nil
}

// GetWalletNames returns just the wallet names for a user, for origin pickers.
func (s *walletService) GetWalletNames(userID uint) ([]string, error) {
	var names []string
	err := s.db.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return names, nil
}

// UpdateWallet sets the amount on the wallet addressed by name. Returns the
// number of rows affected.
func (s *walletService) UpdateWallet(userID uint, name string, amount int64) (int64, error) {
	if name == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Wallet name is required")
	}

	result := s.db.Model(&models.Wallet{}).
		Where("user_id = ? AND name = ?", userID, name).
		Update("amount", amount)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.ErrWalletNotFound
	}
	return result.RowsAffected, nil
}

// DeleteWallet removes the wallet addressed by its wallet number.
func (s *walletService) DeleteWallet(userID uint, walletNumber string) error {
	if walletNumber == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Wallet number is required")
	}

	result := s.db.Where("user_id = ? AND wallet_number = ?", userID, walletNumber).Delete(&models.Wallet{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.WithMessage(apperrors.ErrWalletNotFound, "No wallet found to delete")
	}
	return nil
}

// GetBalance returns the sum of all wallet amounts for a user.
func (s *walletService) GetBalance(userID uint) (int64, error) {
	var balance int64
	err := s.db.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return balance, nil
}

// GetTransactions returns the income and expense rows funded through the
// given wallet, fetched concurrently.
func (s *walletService) GetTransactions(userID uint, walletName string) (*OriginTransactions, error) {
	if walletName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Wallet name is required")
	}

	var txns OriginTransactions
	var g errgroup.Group

	g.Go(func() error {
		return s.db.Where("user_id = ? AND wallet_name = ?", userID, walletName).
			Order("created_at DESC").
			Find(&txns.Incomes).Error
	})
	g.Go(func() error {
		return s.db.Where("user_id = ? AND wallet_name = ?", userID, walletName).
			Order("created_at DESC").
			Find(&txns.Expenses).Error
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &txns, nil
}
