// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fintrack/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bank_name", validateBankName)
		_ = v.RegisterValidation("income_source", validateIncomeSource)
		_ = v.RegisterValidation("expense_source", validateExpenseSource)
		_ = v.RegisterValidation("export_format", validateExportFormat)
		_ = v.RegisterValidation("export_range", validateExportRange)
		_ = v.RegisterValidation("export_type", validateExportType)
	}
}

func validateBankName(fl validator.FieldLevel) bool {
	return models.ValidBankName(fl.Field().String())
}

func validateIncomeSource(fl validator.FieldLevel) bool {
	return models.ValidIncomeSource(fl.Field().String())
}

func validateExpenseSource(fl validator.FieldLevel) bool {
	return models.ValidExpenseSource(fl.Field().String())
}

func validateExportFormat(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "csv", "pdf":
		return true
	}
	return false
}

// Unknown range selectors deliberately pass validation; the export pipeline
// falls back to one month for anything it does not recognize.
func validateExportRange(fl validator.FieldLevel) bool {
	return fl.Field().String() != ""
}

func validateExportType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "all", "income", "expense", "transfer", "budget":
		return true
	}
	return false
}
