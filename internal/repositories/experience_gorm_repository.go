package repositories

import (
	"fmt"

	"portfolio/internal/apperr"
	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMExperienceRepository is a GORM implementation of ExperienceRepository.
type GORMExperienceRepository struct {
	db *gorm.DB
}

// NewGORMExperienceRepository creates a new instance of GORMExperienceRepository.
func NewGORMExperienceRepository(db *gorm.DB) *GORMExperienceRepository {
	return &GORMExperienceRepository{db: db}
}

// GetAll retrieves all experience rows, newest start date first.
func (r *GORMExperienceRepository) GetAll() ([]models.Experience, error) {
	var experiences []models.Experience
	if err := r.db.Order("start_date DESC, created_at ASC").Find(&experiences).Error; err != nil {
		return nil, fmt.Errorf("failed to get all experiences: %w", err)
	}
	return experiences, nil
}

// GetByID retrieves a single experience row by its ID.
func (r *GORMExperienceRepository) GetByID(id string) (*models.Experience, error) {
	var experience models.Experience
	if err := r.db.First(&experience, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.E(apperr.CodeNotFound, "ExperienceRepository.GetByID", "experience not found", err)
		}
		return nil, fmt.Errorf("failed to get experience by ID %s: %w", id, err)
	}
	return &experience, nil
}

// Create creates a new experience row in the database.
func (r *GORMExperienceRepository) Create(experience *models.Experience) error {
	if experience.ID == "" {
		experience.ID = uuid.New().String()
	}
	if err := r.db.Create(experience).Error; err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

// Update updates an existing experience row in the database.
func (r *GORMExperienceRepository) Update(experience *models.Experience) error {
	res := r.db.Save(experience)
	if res.Error != nil {
		return fmt.Errorf("failed to update experience: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "ExperienceRepository.Update", "experience not found", nil)
	}
	return nil
}

// Delete deletes an experience row by its ID.
func (r *GORMExperienceRepository) Delete(id string) error {
	res := r.db.Delete(&models.Experience{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete experience: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "ExperienceRepository.Delete", "experience not found", nil)
	}
	return nil
}

// Count returns the number of experience rows.
func (r *GORMExperienceRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Experience{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count experiences: %w", err)
	}
	return n, nil
}
