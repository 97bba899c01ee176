package models

// User represents a registered user. The password hash and PIN are never
// serialized into responses.
type User struct {
	Base
	Name     string  `gorm:"not null" json:"name"`
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Pin      string  `gorm:"not null" json:"-"`
	Image    *string `json:"image,omitempty"`

	BankAccounts []BankAccount `gorm:"foreignKey:UserID" json:"bank_accounts,omitempty"`
	Wallets      []Wallet      `gorm:"foreignKey:UserID" json:"wallets,omitempty"`
	Incomes      []Income      `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Expenses     []Expense     `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Transfers    []Transfer    `gorm:"foreignKey:UserID" json:"transfers,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
}
