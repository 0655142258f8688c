package repositories

import (
	"fmt"

	"portfolio/internal/apperr"
	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCertificateRepository is a GORM implementation of CertificateRepository.
type GORMCertificateRepository struct {
	db *gorm.DB
}

// NewGORMCertificateRepository creates a new instance of GORMCertificateRepository.
func NewGORMCertificateRepository(db *gorm.DB) *GORMCertificateRepository {
	return &GORMCertificateRepository{db: db}
}

// GetAll retrieves all certificates, newest earn date first.
func (r *GORMCertificateRepository) GetAll() ([]models.Certificate, error) {
	var certificates []models.Certificate
	if err := r.db.Order("date_earned DESC, created_at ASC").Find(&certificates).Error; err != nil {
		return nil, fmt.Errorf("failed to get all certificates: %w", err)
	}
	return certificates, nil
}

// GetByID retrieves a single certificate by its ID.
func (r *GORMCertificateRepository) GetByID(id string) (*models.Certificate, error) {
	var certificate models.Certificate
	if err := r.db.First(&certificate, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.E(apperr.CodeNotFound, "CertificateRepository.GetByID", "certificate not found", err)
		}
		return nil, fmt.Errorf("failed to get certificate by ID %s: %w", id, err)
	}
	return &certificate, nil
}

// Create creates a new certificate in the database.
func (r *GORMCertificateRepository) Create(certificate *models.Certificate) error {
	if certificate.ID == "" {
		certificate.ID = uuid.New().String()
	}
	if err := r.db.Create(certificate).Error; err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}
	return nil
}

// Update updates an existing certificate in the database.
func (r *GORMCertificateRepository) Update(certificate *models.Certificate) error {
	res := r.db.Save(certificate)
	if res.Error != nil {
		return fmt.Errorf("failed to update certificate: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "CertificateRepository.Update", "certificate not found", nil)
	}
	return nil
}

// Delete deletes a certificate by its ID.
func (r *GORMCertificateRepository) Delete(id string) error {
	res := r.db.Delete(&models.Certificate{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete certificate: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "CertificateRepository.Delete", "certificate not found", nil)
	}
	return nil
}

// Count returns the number of certificates.
func (r *GORMCertificateRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Certificate{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count certificates: %w", err)
	}
	return n, nil
}
