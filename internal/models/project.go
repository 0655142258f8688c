package models

import "gorm.io/gorm"

// Project is a portfolio project entry.
type Project struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title        string `json:"title" gorm:"type:varchar(200)" validate:"required"`
	Description  string `json:"description" gorm:"type:text"`
	Image        string `json:"image" gorm:"type:varchar(200)"` // stored filename in the upload dir
	Link         string `json:"link" gorm:"type:varchar(200)"`
	GitHubLink   string `json:"github_link" gorm:"type:varchar(200)"`
	Technologies string `json:"technologies" gorm:"type:varchar(200)"`
	gorm.Model
}
