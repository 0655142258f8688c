package repositories

import "portfolio/internal/models"

// EducationRepository defines the interface for study history data access.
// GetAll returns rows newest start date first; ties keep insertion order.
type EducationRepository interface {
	GetAll() ([]models.Education, error)
	GetByID(id string) (*models.Education, error)
	Create(education *models.Education) error
	Update(education *models.Education) error
	Delete(id string) error
	Count() (int64, error)
}
