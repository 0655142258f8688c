package repositories

import "portfolio/internal/models"

// ResumeRepository defines the interface for resume metadata access. GetAll
// returns rows newest upload first; Latest is the publicly shown resume.
type ResumeRepository interface {
	GetAll() ([]models.Resume, error)
	GetByID(id string) (*models.Resume, error)
	Latest() (*models.Resume, error)
	Create(resume *models.Resume) error
	Delete(id string) error
	Count() (int64, error)
}
