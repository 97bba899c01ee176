package models

// Transfer records money moved between two free-text account identifiers.
// Sender and receiver are not foreign keys.
type Transfer struct {
	Base
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Amount    int64  `gorm:"type:bigint;not null" json:"amount"`
	Sender    string `gorm:"not null" json:"sender"`
	Receiver  string `gorm:"not null" json:"receiver"`
	IsExpense bool   `gorm:"not null;default:false" json:"is_expense"`
}
