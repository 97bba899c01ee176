package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/upload"
)

// expenseService handles expense business logic.
type expenseService struct {
	db *gorm.DB

	// now is swappable in tests to pin the stats reference instant.
	now func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db, now: time.Now}
}

// AddExpense records a money-out entry. Same validation rules as income:
// mandatory attachment, source allow-list, at most one funding origin.
func (s *expenseService) AddExpense(userID uint, in ExpenseInput) (*models.Expense, error) {
	if !models.ValidExpenseSource(in.Source) {
		return nil, apperrors.ErrInvalidExpenseSource
	}
	if in.Attachment == "" {
		return nil, apperrors.ErrAttachmentRequired
	}
	if err := validateOrigin(s.db, userID, in.BankName, in.WalletName); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:      userID,
		Amount:      in.Amount,
		Source:      models.ExpenseSource(in.Source),
		Attachment:  in.Attachment,
		Description: in.Description,
		BankName:    in.BankName,
		WalletName:  in.WalletName,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// UpdateExpense applies the provided fields to an owned expense row.
func (s *expenseService) UpdateExpense(userID, expenseID uint, fields ExpenseUpdateFields) (int64, error) {
	updates := make(map[string]interface{})
	if fields.Amount != nil {
		updates["amount"] = *fields.Amount
	}
	if fields.Source != nil {
		if !models.ValidExpenseSource(*fields.Source) {
			return 0, apperrors.ErrInvalidExpenseSource
		}
		updates["source"] = *fields.Source
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if len(updates) == 0 {
		return 0, apperrors.ErrNoUpdateFields
	}

	result := s.db.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", expenseID, userID).
		Updates(updates)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.ErrExpenseNotFound
	}
	return result.RowsAffected, nil
}

// DeleteExpense removes an owned expense row and then its attachment file
// (best-effort).
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrExpenseNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := s.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}

	upload.Remove(expense.Attachment)
	return nil
}

// GetTotal returns the sum of all expense amounts for a user.
func (s *expenseService) GetTotal(userID uint) (int64, error) {
	var total int64
	err := s.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// GetHistory returns the user's expense rows, newest first.
func (s *expenseService) GetHistory(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// StatsPoint is one bar of a frequency series.
type StatsPoint struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// StatsSummary holds the aggregate sums per time window. The windows
// overlap by design: today's spend is part of the week, month, and year
// figures as well.
type StatsSummary struct {
	Today int64 `json:"today"`
	Week  int64 `json:"week"`
	Month int64 `json:"month"`
	Year  int64 `json:"year"`
}

// StatsFrequency holds the per-bucket breakdown series. Unlike the summary,
// each row lands in exactly one series, chosen by precedence
// today > week > month > year, so no row double-counts.
type StatsFrequency struct {
	Today []StatsPoint `json:"today"`
	Week  []StatsPoint `json:"week"`
	Month []StatsPoint `json:"month"`
	Year  []StatsPoint `json:"year"`
}

// ExpenseStats is the /expense/stats payload.
type ExpenseStats struct {
	Summary   StatsSummary   `json:"summary"`
	Frequency StatsFrequency `json:"frequency"`
}

// GetStats computes the time-bucketed expense aggregates. Bucketing happens
// in Go over a single owner-scoped fetch so the same code path runs against
// every supported database.
func (s *expenseService) GetStats(userID uint) (*ExpenseStats, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -6)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	// The week window can reach into the previous year in early January.
	fetchFrom := yearStart
	if weekStart.Before(fetchFrom) {
		fetchFrom = weekStart
	}

	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND created_at >= ?", userID, fetchFrom).
		Order("created_at").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats := &ExpenseStats{}
	todayTotals := make(map[string]int64)
	weekTotals := make(map[string]int64)
	monthTotals := make(map[string]int64)
	yearTotals := make(map[string]int64)

	for _, e := range expenses {
		t := e.CreatedAt
		sameDay := !t.Before(dayStart)
		inWeek := !t.Before(weekStart)
		sameMonth := t.Year() == now.Year() && t.Month() == now.Month()
		sameYear := t.Year() == now.Year()

		// Overlapping summary windows.
		if sameDay {
			stats.Summary.Today += e.Amount
		}
		if inWeek {
			stats.Summary.Week += e.Amount
		}
		if sameMonth {
			stats.Summary.Month += e.Amount
		}
		if sameYear {
			stats.Summary.Year += e.Amount
		}

		// Disjoint frequency series with bucket precedence.
		switch {
		case sameDay:
			todayTotals[t.Format("15:00")] += e.Amount
		case inWeek:
			weekTotals[t.Format("Monday")] += e.Amount
		case sameMonth:
			monthTotals[t.Format("02")] += e.Amount
		case sameYear:
			yearTotals[t.Format("01")] += e.Amount
		}
	}

	stats.Frequency.Today = toSeries(todayTotals)
	stats.Frequency.Week = toSeries(weekTotals)
	stats.Frequency.Month = toSeries(monthTotals)
	stats.Frequency.Year = toSeries(yearTotals)
	return stats, nil
}

// toSeries flattens a label->total map into a label-ordered series.
func toSeries(totals map[string]int64) []StatsPoint {
	series := make([]StatsPoint, 0, len(totals))
	for label, total := range totals {
		series = append(series, StatsPoint{Label: label, Total: total})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Label < series[j].Label })
	return series
}
