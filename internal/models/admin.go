package models

import "gorm.io/gorm"

// Admin is the single operator account. Exactly one row is expected; it is
// created at startup if absent.
type Admin struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username     string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	PasswordHash string `gorm:"type:varchar(255)"` // No json tag for security
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
