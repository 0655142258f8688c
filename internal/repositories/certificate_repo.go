package repositories

import "portfolio/internal/models"

// CertificateRepository defines the interface for certificate data access.
// GetAll returns rows newest earn date first.
type CertificateRepository interface {
	GetAll() ([]models.Certificate, error)
	GetByID(id string) (*models.Certificate, error)
	Create(certificate *models.Certificate) error
	Update(certificate *models.Certificate) error
	Delete(id string) error
	Count() (int64, error)
}
