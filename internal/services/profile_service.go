package services

import (
	"mime/multipart"

	"portfolio/internal/apperr"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/storage"

	"github.com/go-playground/validator/v10"
)

// ProfileInput is the editable profile form.
type ProfileInput struct {
	Name     string `validate:"required"`
	Title    string
	About    string
	Email    string `validate:"omitempty,email"`
	Phone    string
	Location string
	LinkedIn string
	GitHub   string
	Twitter  string
}

// ProfileService manages the singleton operator profile.
type ProfileService struct {
	repo     repositories.ProfileRepository
	files    *storage.FileStore
	validate *validator.Validate
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo repositories.ProfileRepository, files *storage.FileStore) *ProfileService {
	return &ProfileService{
		repo:     repo,
		files:    files,
		validate: validator.New(),
	}
}

// Get returns the profile, creating a placeholder row on first access so the
// edit form always has something to load.
func (s *ProfileService) Get() (*models.Profile, error) {
	profile, err := s.repo.First()
	if err == nil {
		return profile, nil
	}
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		return nil, err
	}

	profile = &models.Profile{Name: "Your Name", Title: "Web Developer"}
	if err := s.repo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update replaces the editable profile fields and optionally stores a new
// photo. A photo with a disallowed extension leaves the stored reference
// untouched; the profile is still saved and the file error is returned
// alongside it. The previous photo file is not removed from disk.
func (s *ProfileService) Update(in ProfileInput, photo *multipart.FileHeader) (*models.Profile, error) {
	const op = "ProfileService.Update"

	if err := validateInput(s.validate, op, in); err != nil {
		return nil, err
	}

	profile, err := s.Get()
	if err != nil {
		return nil, err
	}

	profile.Name = in.Name
	profile.Title = in.Title
	profile.About = in.About
	profile.Email = in.Email
	profile.Phone = in.Phone
	profile.Location = in.Location
	profile.LinkedIn = in.LinkedIn
	profile.GitHub = in.GitHub
	profile.Twitter = in.Twitter

	var fileErr error
	if photo != nil {
		name, err := s.files.SaveImage(photo)
		switch {
		case err == nil:
			profile.Photo = name
		case apperr.IsCode(err, apperr.CodeUnsupportedFile):
			fileErr = err
		default:
			return nil, err
		}
	}

	if err := s.repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, fileErr
}
