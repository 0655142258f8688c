package services

import (
	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// EducationInput is the study history form, shaped like ExperienceInput.
type EducationInput struct {
	Degree      string `validate:"required"`
	Institution string
	Location    string
	StartDate   string `validate:"required"`
	EndDate     string
	Current     bool
	Description string
}

// EducationService handles business logic for study history entries.
type EducationService struct {
	repo     repositories.EducationRepository
	validate *validator.Validate
}

// NewEducationService creates a new EducationService.
func NewEducationService(repo repositories.EducationRepository) *EducationService {
	return &EducationService{repo: repo, validate: validator.New()}
}

// List retrieves all education entries, newest start date first.
func (s *EducationService) List() ([]models.Education, error) {
	return s.repo.GetAll()
}

// Get retrieves a single education entry by its ID.
func (s *EducationService) Get(id string) (*models.Education, error) {
	return s.repo.GetByID(id)
}

// Create validates the form and stores a new education entry.
func (s *EducationService) Create(in EducationInput) (*models.Education, error) {
	const op = "EducationService.Create"

	education := &models.Education{}
	if err := s.apply(op, education, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(education); err != nil {
		return nil, err
	}
	return education, nil
}

// Update replaces the editable fields of an existing education entry.
func (s *EducationService) Update(id string, in EducationInput) (*models.Education, error) {
	const op = "EducationService.Update"

	education, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(op, education, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(education); err != nil {
		return nil, err
	}
	return education, nil
}

// Delete removes an education entry by its ID.
func (s *EducationService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Count returns the number of education entries.
func (s *EducationService) Count() (int64, error) {
	return s.repo.Count()
}

func (s *EducationService) apply(op string, education *models.Education, in EducationInput) error {
	if err := validateInput(s.validate, op, in); err != nil {
		return err
	}

	start, err := parseDate(op, "start date", in.StartDate)
	if err != nil {
		return err
	}

	education.Degree = in.Degree
	education.Institution = in.Institution
	education.Location = in.Location
	education.StartDate = start
	education.Description = in.Description

	if in.Current {
		education.Current = true
		education.EndDate = nil
		return nil
	}
	end, err := parseOptionalDate(op, "end date", in.EndDate)
	if err != nil {
		return err
	}
	education.Current = false
	education.EndDate = end
	return nil
}
