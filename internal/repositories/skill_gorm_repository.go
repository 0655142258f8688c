package repositories

import (
	"fmt"

	"portfolio/internal/apperr"
	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSkillRepository is a GORM implementation of SkillRepository.
type GORMSkillRepository struct {
	db *gorm.DB
}

// NewGORMSkillRepository creates a new instance of GORMSkillRepository.
func NewGORMSkillRepository(db *gorm.DB) *GORMSkillRepository {
	return &GORMSkillRepository{db: db}
}

// GetAll retrieves all skills in insertion order.
func (r *GORMSkillRepository) GetAll() ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Order("created_at ASC").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("failed to get all skills: %w", err)
	}
	return skills, nil
}

// GetByID retrieves a single skill by its ID.
func (r *GORMSkillRepository) GetByID(id string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.E(apperr.CodeNotFound, "SkillRepository.GetByID", "skill not found", err)
		}
		return nil, fmt.Errorf("failed to get skill by ID %s: %w", id, err)
	}
	return &skill, nil
}

// Create creates a new skill in the database.
func (r *GORMSkillRepository) Create(skill *models.Skill) error {
	if skill.ID == "" {
		skill.ID = uuid.New().String()
	}
	if err := r.db.Create(skill).Error; err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

// Update updates an existing skill in the database.
func (r *GORMSkillRepository) Update(skill *models.Skill) error {
	res := r.db.Save(skill)
	if res.Error != nil {
		return fmt.Errorf("failed to update skill: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "SkillRepository.Update", "skill not found", nil)
	}
	return nil
}

// Delete deletes a skill by its ID.
func (r *GORMSkillRepository) Delete(id string) error {
	res := r.db.Delete(&models.Skill{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete skill: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "SkillRepository.Delete", "skill not found", nil)
	}
	return nil
}

// Count returns the number of skills.
func (r *GORMSkillRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Skill{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count skills: %w", err)
	}
	return n, nil
}
