package models

// BankAccount is a user's account at one of the supported banks. A user can
// hold at most one account per bank name; the unique index backs the
// Conflict translation on create.
type BankAccount struct {
	Base
	UserID uint     `gorm:"not null;uniqueIndex:idx_bank_owner_name" json:"user_id"`
	Name   BankName `gorm:"not null;uniqueIndex:idx_bank_owner_name" json:"name"`
	Amount int64    `gorm:"type:bigint;not null;default:0" json:"amount"`
}

// TableName overrides the default pluralization to match the migration schema.
func (BankAccount) TableName() string { return "bank_accounts" }
