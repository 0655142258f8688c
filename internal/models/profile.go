package models

import "gorm.io/gorm"

// Profile holds the operator's public identity. By convention the first row
// is "the" profile; nothing enforces uniqueness at the store layer.
type Profile struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Title      string `json:"title" gorm:"type:varchar(200)"`
	About      string `json:"about" gorm:"type:text"`
	Email      string `json:"email" gorm:"type:varchar(120)"`
	Phone      string `json:"phone" gorm:"type:varchar(20)"`
	Location   string `json:"location" gorm:"type:varchar(100)"`
	Photo      string `json:"photo" gorm:"type:varchar(200)"` // stored filename in the upload dir
	LinkedIn   string `json:"linkedin" gorm:"type:varchar(200)"`
	GitHub     string `json:"github" gorm:"type:varchar(200)"`
	Twitter    string `json:"twitter" gorm:"type:varchar(200)"`
	gorm.Model
}
