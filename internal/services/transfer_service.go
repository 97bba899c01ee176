package services

import (
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// transferService handles transfer business logic.
type transferService struct {
	db *gorm.DB
}

// NewTransferService creates a new TransferServicer.
func NewTransferService(db *gorm.DB) TransferServicer {
	return &transferService{db: db}
}

// AddTransfer records a movement of money between two free-text parties.
// isExpense marks whether the owner is the paying side.
func (s *transferService) AddTransfer(userID uint, amount int64, sender, receiver string, isExpense bool) (*models.Transfer, error) {
	if sender == "" || receiver == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Sender and receiver are required")
	}

	transfer := &models.Transfer{
		UserID:    userID,
		Amount:    amount,
		Sender:    sender,
		Receiver:  receiver,
		IsExpense: isExpense,
	}

	if err := s.db.Create(transfer).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transfer, nil
}

// UpdateTransfer applies the provided fields to an owned transfer row.
func (s *transferService) UpdateTransfer(userID, transferID uint, fields TransferUpdateFields) (int64, error) {
	updates := make(map[string]interface{})
	if fields.Amount != nil {
		updates["amount"] = *fields.Amount
	}
	if fields.Sender != nil {
		updates["sender"] = *fields.Sender
	}
	if fields.Receiver != nil {
		updates["receiver"] = *fields.Receiver
	}
	if fields.IsExpense != nil {
		updates["is_expense"] = *fields.IsExpense
	}
	if len(updates) == 0 {
		return 0, apperrors.ErrNoUpdateFields
	}

	result := s.db.Model(&models.Transfer{}).
		Where("id = ? AND user_id = ?", transferID, userID).
		Updates(updates)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.ErrTransferNotFound
	}
	return result.RowsAffected, nil
}

// DeleteTransfer removes an owned transfer row.
func (s *transferService) DeleteTransfer(userID, transferID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", transferID, userID).Delete(&models.Transfer{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransferNotFound
	}
	return nil
}

// GetTransfers returns the user's transfer rows, newest first.
func (s *transferService) GetTransfers(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transfer], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Transfer{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transfers []models.Transfer
	if err := base.Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transfers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transfers, page.Page, page.PageSize, totalItems)
	return &result, nil
}
