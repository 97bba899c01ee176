package models

// Income is a money-in record. At most one of BankName/WalletName references
// the funding origin; the attachment is a receipt image owned by this row,
// deleted from disk when the row is deleted.
type Income struct {
	Base
	UserID      uint         `gorm:"not null;index" json:"user_id"`
	Amount      int64        `gorm:"type:bigint;not null" json:"amount"`
	Source      IncomeSource `gorm:"not null" json:"source"`
	Attachment  string       `gorm:"not null" json:"attachment"`
	Description string       `json:"description"`
	BankName    *string      `json:"bank_name,omitempty"`
	WalletName  *string      `json:"wallet_name,omitempty"`
}
