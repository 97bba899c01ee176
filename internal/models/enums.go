package models

// BankName is the closed set of banks a bank account can be opened against.
// Free-text bank names never make it past the validation boundary.
type BankName string

// SupportedBankNames lists every accepted bank, in display order.
var SupportedBankNames = []BankName{
	"Chase",
	"Bank of America",
	"Wells Fargo",
	"Citibank",
	"Capital One",
	"US Bank",
	"PNC",
	"Truist",
}

// ValidBankName reports whether name is in the supported set.
func ValidBankName(name string) bool {
	for _, b := range SupportedBankNames {
		if string(b) == name {
			return true
		}
	}
	return false
}

// IncomeSource is the closed set of funding origins for an income record.
type IncomeSource string

// IncomeSources lists every accepted income source.
var IncomeSources = []IncomeSource{
	"salary",
	"freelance",
	"business",
	"investment",
	"rental",
	"gift",
	"other",
}

// ValidIncomeSource reports whether source is in the allow-list.
func ValidIncomeSource(source string) bool {
	for _, s := range IncomeSources {
		if string(s) == source {
			return true
		}
	}
	return false
}

// ExpenseSource is the closed set of spending categories for an expense record.
type ExpenseSource string

// ExpenseSources lists every accepted expense source.
var ExpenseSources = []ExpenseSource{
	"food",
	"rent",
	"travel",
	"shopping",
	"entertainment",
	"utilities",
	"health",
	"education",
	"other",
}

// ValidExpenseSource reports whether source is in the allow-list.
func ValidExpenseSource(source string) bool {
	for _, s := range ExpenseSources {
		if string(s) == source {
			return true
		}
	}
	return false
}
