package repositories

import "portfolio/internal/models"

// ExperienceRepository defines the interface for work history data access.
// GetAll returns rows newest start date first; ties keep insertion order.
type ExperienceRepository interface {
	GetAll() ([]models.Experience, error)
	GetByID(id string) (*models.Experience, error)
	Create(experience *models.Experience) error
	Update(experience *models.Experience) error
	Delete(id string) error
	Count() (int64, error)
}
