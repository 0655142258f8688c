package repositories

import "portfolio/internal/models"

// SkillRepository defines the interface for skill data access.
type SkillRepository interface {
	GetAll() ([]models.Skill, error)
	GetByID(id string) (*models.Skill, error)
	Create(skill *models.Skill) error
	Update(skill *models.Skill) error
	Delete(id string) error
	Count() (int64, error)
}
