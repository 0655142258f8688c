package repositories

import (
	"fmt"

	"portfolio/internal/apperr"
	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProjectRepository is a GORM implementation of ProjectRepository.
type GORMProjectRepository struct {
	db *gorm.DB
}

// NewGORMProjectRepository creates a new instance of GORMProjectRepository.
func NewGORMProjectRepository(db *gorm.DB) *GORMProjectRepository {
	return &GORMProjectRepository{db: db}
}

// GetAll retrieves all projects in insertion order.
func (r *GORMProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("created_at ASC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to get all projects: %w", err)
	}
	return projects, nil
}

// GetByID retrieves a single project by its ID.
func (r *GORMProjectRepository) GetByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.E(apperr.CodeNotFound, "ProjectRepository.GetByID", "project not found", err)
		}
		return nil, fmt.Errorf("failed to get project by ID %s: %w", id, err)
	}
	return &project, nil
}

// Create creates a new project in the database.
func (r *GORMProjectRepository) Create(project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update updates an existing project in the database.
func (r *GORMProjectRepository) Update(project *models.Project) error {
	res := r.db.Save(project)
	if res.Error != nil {
		return fmt.Errorf("failed to update project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "ProjectRepository.Update", "project not found", nil)
	}
	return nil
}

// Delete deletes a project by its ID.
func (r *GORMProjectRepository) Delete(id string) error {
	res := r.db.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "ProjectRepository.Delete", "project not found", nil)
	}
	return nil
}

// Count returns the number of projects.
func (r *GORMProjectRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Project{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return n, nil
}
