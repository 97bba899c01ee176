package models

// Budget is a named spending plan. Current tracks what has been spent so far;
// current <= total_budget is a soft expectation, not enforced.
type Budget struct {
	Base
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	TotalBudget int64  `gorm:"type:bigint;not null" json:"total_budget"`
	Current     int64  `gorm:"type:bigint;not null;default:0" json:"current"`
}
