package models

import (
	"time"

	"gorm.io/gorm"
)

// Education is a study history entry, shaped like Experience.
type Education struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Degree      string     `json:"degree" gorm:"type:varchar(200)" validate:"required"`
	Institution string     `json:"institution" gorm:"type:varchar(200)"`
	Location    string     `json:"location" gorm:"type:varchar(100)"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Current     bool       `json:"current"`
	Description string     `json:"description" gorm:"type:text"`
	gorm.Model
}
