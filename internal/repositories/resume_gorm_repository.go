package repositories

import (
	"fmt"

	"portfolio/internal/apperr"
	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMResumeRepository is a GORM implementation of ResumeRepository.
type GORMResumeRepository struct {
	db *gorm.DB
}

// NewGORMResumeRepository creates a new instance of GORMResumeRepository.
func NewGORMResumeRepository(db *gorm.DB) *GORMResumeRepository {
	return &GORMResumeRepository{db: db}
}

// GetAll retrieves all resume rows, newest upload first.
func (r *GORMResumeRepository) GetAll() ([]models.Resume, error) {
	var resumes []models.Resume
	if err := r.db.Order("created_at DESC").Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all resumes: %w", err)
	}
	return resumes, nil
}

// GetByID retrieves a single resume row by its ID.
func (r *GORMResumeRepository) GetByID(id string) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.First(&resume, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.E(apperr.CodeNotFound, "ResumeRepository.GetByID", "resume not found", err)
		}
		return nil, fmt.Errorf("failed to get resume by ID %s: %w", id, err)
	}
	return &resume, nil
}

// Latest retrieves the most recently uploaded resume.
func (r *GORMResumeRepository) Latest() (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Order("created_at DESC").First(&resume).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.E(apperr.CodeNotFound, "ResumeRepository.Latest", "resume not found", err)
		}
		return nil, fmt.Errorf("failed to get latest resume: %w", err)
	}
	return &resume, nil
}

// Create creates a new resume row in the database.
func (r *GORMResumeRepository) Create(resume *models.Resume) error {
	if resume.ID == "" {
		resume.ID = uuid.New().String()
	}
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

// Delete deletes a resume row by its ID.
func (r *GORMResumeRepository) Delete(id string) error {
	res := r.db.Delete(&models.Resume{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete resume: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "ResumeRepository.Delete", "resume not found", nil)
	}
	return nil
}

// Count returns the number of resume rows.
func (r *GORMResumeRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Resume{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count resumes: %w", err)
	}
	return n, nil
}
