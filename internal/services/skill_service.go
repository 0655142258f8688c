package services

import (
	"strconv"
	"strings"

	"portfolio/internal/apperr"
	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// SkillInput is the skill form. Percentage arrives as form text and is
// parsed here; the 0-100 range is a display convention, not validated.
type SkillInput struct {
	Name       string `validate:"required"`
	Percentage string
	Category   string
}

// SkillService handles business logic for skills.
type SkillService struct {
	repo     repositories.SkillRepository
	validate *validator.Validate
}

// NewSkillService creates a new SkillService.
func NewSkillService(repo repositories.SkillRepository) *SkillService {
	return &SkillService{repo: repo, validate: validator.New()}
}

// List retrieves all skills.
func (s *SkillService) List() ([]models.Skill, error) {
	return s.repo.GetAll()
}

// Get retrieves a single skill by its ID.
func (s *SkillService) Get(id string) (*models.Skill, error) {
	return s.repo.GetByID(id)
}

// Create validates the form and stores a new skill.
func (s *SkillService) Create(in SkillInput) (*models.Skill, error) {
	const op = "SkillService.Create"

	skill, err := s.fromInput(op, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// Update replaces the editable fields of an existing skill.
func (s *SkillService) Update(id string, in SkillInput) (*models.Skill, error) {
	const op = "SkillService.Update"

	parsed, err := s.fromInput(op, in)
	if err != nil {
		return nil, err
	}

	skill, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	skill.Name = parsed.Name
	skill.Percentage = parsed.Percentage
	skill.Category = parsed.Category

	if err := s.repo.Update(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// Delete removes a skill by its ID.
func (s *SkillService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Count returns the number of skills.
func (s *SkillService) Count() (int64, error) {
	return s.repo.Count()
}

func (s *SkillService) fromInput(op string, in SkillInput) (*models.Skill, error) {
	if err := validateInput(s.validate, op, in); err != nil {
		return nil, err
	}

	percentage := 0
	if strings.TrimSpace(in.Percentage) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(in.Percentage))
		if err != nil {
			return nil, apperr.E(apperr.CodeInvalidArgument, op, "percentage must be a number", err)
		}
		percentage = n
	}

	return &models.Skill{
		Name:       in.Name,
		Percentage: percentage,
		Category:   in.Category,
	}, nil
}
