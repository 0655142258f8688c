package services

import (
	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ExperienceInput is the work history form. Dates arrive as form text in the
// fixed layout; Current wins over EndDate.
type ExperienceInput struct {
	Title       string `validate:"required"`
	Company     string
	Location    string
	StartDate   string `validate:"required"`
	EndDate     string
	Current     bool
	Description string
}

// ExperienceService handles business logic for work history entries.
type ExperienceService struct {
	repo     repositories.ExperienceRepository
	validate *validator.Validate
}

// NewExperienceService creates a new ExperienceService.
func NewExperienceService(repo repositories.ExperienceRepository) *ExperienceService {
	return &ExperienceService{repo: repo, validate: validator.New()}
}

// List retrieves all experience entries, newest start date first.
func (s *ExperienceService) List() ([]models.Experience, error) {
	return s.repo.GetAll()
}

// Get retrieves a single experience entry by its ID.
func (s *ExperienceService) Get(id string) (*models.Experience, error) {
	return s.repo.GetByID(id)
}

// Create validates the form and stores a new experience entry.
func (s *ExperienceService) Create(in ExperienceInput) (*models.Experience, error) {
	const op = "ExperienceService.Create"

	experience := &models.Experience{}
	if err := s.apply(op, experience, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(experience); err != nil {
		return nil, err
	}
	return experience, nil
}

// Update replaces the editable fields of an existing experience entry.
func (s *ExperienceService) Update(id string, in ExperienceInput) (*models.Experience, error) {
	const op = "ExperienceService.Update"

	experience, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(op, experience, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(experience); err != nil {
		return nil, err
	}
	return experience, nil
}

// Delete removes an experience entry by its ID.
func (s *ExperienceService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Count returns the number of experience entries.
func (s *ExperienceService) Count() (int64, error) {
	return s.repo.Count()
}

func (s *ExperienceService) apply(op string, experience *models.Experience, in ExperienceInput) error {
	if err := validateInput(s.validate, op, in); err != nil {
		return err
	}

	start, err := parseDate(op, "start date", in.StartDate)
	if err != nil {
		return err
	}

	experience.Title = in.Title
	experience.Company = in.Company
	experience.Location = in.Location
	experience.StartDate = start
	experience.Description = in.Description

	// A current position has no end date, whatever the form says.
	if in.Current {
		experience.Current = true
		experience.EndDate = nil
		return nil
	}
	end, err := parseOptionalDate(op, "end date", in.EndDate)
	if err != nil {
		return err
	}
	experience.Current = false
	experience.EndDate = end
	return nil
}
