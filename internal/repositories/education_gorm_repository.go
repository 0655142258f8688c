package repositories

import (
	"fmt"

	"portfolio/internal/apperr"
	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEducationRepository is a GORM implementation of EducationRepository.
type GORMEducationRepository struct {
	db *gorm.DB
}

// NewGORMEducationRepository creates a new instance of GORMEducationRepository.
func NewGORMEducationRepository(db *gorm.DB) *GORMEducationRepository {
	return &GORMEducationRepository{db: db}
}

// GetAll retrieves all education rows, newest start date first.
func (r *GORMEducationRepository) GetAll() ([]models.Education, error) {
	var education []models.Education
	if err := r.db.Order("start_date DESC, created_at ASC").Find(&education).Error; err != nil {
		return nil, fmt.Errorf("failed to get all education rows: %w", err)
	}
	return education, nil
}

// GetByID retrieves a single education row by its ID.
func (r *GORMEducationRepository) GetByID(id string) (*models.Education, error) {
	var education models.Education
	if err := r.db.First(&education, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.E(apperr.CodeNotFound, "EducationRepository.GetByID", "education not found", err)
		}
		return nil, fmt.Errorf("failed to get education by ID %s: %w", id, err)
	}
	return &education, nil
}

// Create creates a new education row in the database.
func (r *GORMEducationRepository) Create(education *models.Education) error {
	if education.ID == "" {
		education.ID = uuid.New().String()
	}
	if err := r.db.Create(education).Error; err != nil {
		return fmt.Errorf("failed to create education: %w", err)
	}
	return nil
}

// Update updates an existing education row in the database.
func (r *GORMEducationRepository) Update(education *models.Education) error {
	res := r.db.Save(education)
	if res.Error != nil {
		return fmt.Errorf("failed to update education: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "EducationRepository.Update", "education not found", nil)
	}
	return nil
}

// Delete deletes an education row by its ID.
func (r *GORMEducationRepository) Delete(id string) error {
	res := r.db.Delete(&models.Education{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete education: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "EducationRepository.Delete", "education not found", nil)
	}
	return nil
}

// Count returns the number of education rows.
func (r *GORMEducationRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Education{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count education rows: %w", err)
	}
	return n, nil
}
