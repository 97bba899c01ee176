package services

import (
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// budgetService handles budget business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget opens a named spending envelope. Current starts at zero.
func (s *budgetService) CreateBudget(userID uint, name string, totalBudget int64) (*models.Budget, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Budget name is required")
	}

	budget := &models.Budget{
		UserID:      userID,
		Name:        name,
		TotalBudget: totalBudget,
		Current:     0,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// UpdateBudget applies the provided fields to an owned budget row.
func (s *budgetService) UpdateBudget(userID, budgetID uint, fields BudgetUpdateFields) (int64, error) {
	updates := make(map[string]interface{})
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}
	if fields.TotalBudget != nil {
		updates["total_budget"] = *fields.TotalBudget
	}
	if fields.Current != nil {
		updates["current"] = *fields.Current
	}
	if len(updates) == 0 {
		return 0, apperrors.ErrNoUpdateFields
	}

	result := s.db.Model(&models.Budget{}).
		Where("id = ? AND user_id = ?", budgetID, userID).
		Updates(updates)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.ErrBudgetNotFound
	}
	return result.RowsAffected, nil
}

// DeleteBudget removes an owned budget row.
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", budgetID, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}

// GetBudgets returns all of the user's budgets, newest first.
func (s *budgetService) GetBudgets(userID uint) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetsByMonth returns budgets created within a given calendar month.
func (s *budgetService) GetBudgetsByMonth(userID uint, month, year int) ([]models.Budget, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Month must be between 1 and 12")
	}
	if year < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Year must be positive")
	}

	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Filter in Go rather than with EXTRACT so the query plan stays
	// identical across postgres and the sqlite test database.
	filtered := make([]models.Budget, 0, len(budgets))
	for _, b := range budgets {
		if int(b.CreatedAt.Month()) == month && b.CreatedAt.Year() == year {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}
