package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"fintrack/internal/models"
)

// OriginTransactions groups the income and expense rows referencing one
// funding origin (a bank or wallet name). The two lists are fetched by
// independent queries and joined only here.
type OriginTransactions struct {
	Incomes  []models.Income  `json:"incomes"`
	Expenses []models.Expense `json:"expenses"`
}

// isDuplicateErr reports whether err is a unique-constraint violation.
// Creates rely on the constraint instead of a pre-check, so two concurrent
// inserts for the same natural key cannot both succeed; the loser's error is
// translated to a Conflict by the caller.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || // postgres
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite (tests)
}
