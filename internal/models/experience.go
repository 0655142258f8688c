package models

import (
	"time"

	"gorm.io/gorm"
)

// Experience is a work history entry. Current implies EndDate is nil; that
// invariant is enforced on the edit path, not here.
type Experience struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string     `json:"title" gorm:"type:varchar(200)" validate:"required"`
	Company     string     `json:"company" gorm:"type:varchar(200)"`
	Location    string     `json:"location" gorm:"type:varchar(100)"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Current     bool       `json:"current"`
	Description string     `json:"description" gorm:"type:text"`
	gorm.Model
}
