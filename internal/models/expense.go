package models

// Expense is a money-out record, same shape as Income with its own source
// allow-list. The attachment is required at creation.
type Expense struct {
	Base
	UserID      uint          `gorm:"not null;index" json:"user_id"`
	Amount      int64         `gorm:"type:bigint;not null" json:"amount"`
	Source      ExpenseSource `gorm:"not null" json:"source"`
	Attachment  string        `gorm:"not null" json:"attachment"`
	Description string        `json:"description"`
	BankName    *string       `json:"bank_name,omitempty"`
	WalletName  *string       `json:"wallet_name,omitempty"`
}
