package models

// Wallet is a named cash wallet. Names are unique per owner; the wallet
// number is assigned at creation and identifies the wallet for deletion.
type Wallet struct {
	Base
	UserID       uint   `gorm:"not null;uniqueIndex:idx_wallet_owner_name" json:"user_id"`
	Name         string `gorm:"not null;uniqueIndex:idx_wallet_owner_name" json:"name"`
	Amount       int64  `gorm:"type:bigint;not null;default:0" json:"amount"`
	WalletNumber string `gorm:"uniqueIndex;not null" json:"wallet_number"`
}
