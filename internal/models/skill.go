package models

import "gorm.io/gorm"

// Skill is a single named skill with a display percentage.
type Skill struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Percentage int    `json:"percentage"`
	Category   string `json:"category" gorm:"type:varchar(50)"`
	gorm.Model
}
