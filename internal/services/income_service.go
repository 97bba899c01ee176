package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/upload"
)

// incomeService handles income business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// validateOrigin checks the optional funding-origin reference on an income or
// expense: at most one of bank/wallet may be set, a bank must be in the
// allow-list, and a wallet must belong to the owner.
func validateOrigin(db *gorm.DB, userID uint, bankName, walletName *string) error {
	if bankName != nil && walletName != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "provide at most one of bank_name and wallet_name")
	}

	if bankName != nil && !models.ValidBankName(*bankName) {
		return apperrors.ErrInvalidBankName
	}

	if walletName != nil {
		var count int64
		if err := db.Model(&models.Wallet{}).
			Where("user_id = ? AND name = ?", userID, *walletName).
			Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			return apperrors.WithMessage(apperrors.ErrWalletNotFound, "Wallet name not found")
		}
	}

	return nil
}

// AddIncome records a money-in entry. The attachment is mandatory; origin
// references are validated against the allow-list / the owner's wallets.
func (s *incomeService) AddIncome(userID uint, in IncomeInput) (*models.Income, error) {
	if !models.ValidIncomeSource(in.Source) {
		return nil, apperrors.ErrInvalidIncomeSource
	}
	if in.Attachment == "" {
		return nil, apperrors.ErrAttachmentRequired
	}
	if err := validateOrigin(s.db, userID, in.BankName, in.WalletName); err != nil {
		return nil, err
	}

	income := &models.Income{
		UserID:      userID,
		Amount:      in.Amount,
		Source:      models.IncomeSource(in.Source),
		Attachment:  in.Attachment,
		Description: in.Description,
		BankName:    in.BankName,
		WalletName:  in.WalletName,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// UpdateIncome applies the provided fields to an owned income row. Returns
// the number of rows affected.
func (s *incomeService) UpdateIncome(userID, incomeID uint, fields IncomeUpdateFields) (int64, error) {
	updates := make(map[string]interface{})
	if fields.Amount != nil {
		updates["amount"] = *fields.Amount
	}
	if fields.Source != nil {
		if !models.ValidIncomeSource(*fields.Source) {
			return 0, apperrors.ErrInvalidIncomeSource
		}
		updates["source"] = *fields.Source
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if len(updates) == 0 {
		return 0, apperrors.ErrNoUpdateFields
	}

	result := s.db.Model(&models.Income{}).
		Where("id = ? AND user_id = ?", incomeID, userID).
		Updates(updates)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.ErrIncomeNotFound
	}
	return result.RowsAffected, nil
}

// DeleteIncome removes an owned income row and then its attachment file.
// The file removal is best-effort; the row deletion stands either way.
func (s *incomeService) DeleteIncome(userID, incomeID uint) error {
	var income models.Income
	if err := s.db.Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrIncomeNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := s.db.Where("id = ? AND user_id = ?", incomeID, userID).Delete(&models.Income{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrIncomeNotFound
	}

	upload.Remove(income.Attachment)
	return nil
}

// GetTotal returns the sum of all income amounts for a user.
func (s *incomeService) GetTotal(userID uint) (int64, error) {
	var total int64
	err := s.db.Model(&models.Income{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// GetHistory returns the user's income rows, newest first.
func (s *incomeService) GetHistory(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Income{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}
