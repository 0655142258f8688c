package models

import "gorm.io/gorm"

// Resume is an uploaded resume document. FileName is the timestamp-prefixed
// name on disk; OriginalName is what the operator uploaded. The most recently
// uploaded row is the one shown publicly.
type Resume struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FileName     string `json:"file_name" gorm:"type:varchar(200)"`
	OriginalName string `json:"original_name" gorm:"type:varchar(200)"`
	Description  string `json:"description" gorm:"type:text"`
	gorm.Model
}
