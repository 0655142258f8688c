package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is an earned certification.
type Certificate struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string    `json:"name" gorm:"type:varchar(200)" validate:"required"`
	Issuer     string    `json:"issuer" gorm:"type:varchar(200)"`
	DateEarned time.Time `json:"date_earned"`
	Link       string    `json:"link" gorm:"type:varchar(200)"`
	Image      string    `json:"image" gorm:"type:varchar(200)"` // stored filename in the upload dir
	gorm.Model
}
