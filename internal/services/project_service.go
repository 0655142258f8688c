package services

import (
	"mime/multipart"

	"portfolio/internal/apperr"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/storage"

	"github.com/go-playground/validator/v10"
)

// ProjectInput is the project form.
type ProjectInput struct {
	Title        string `validate:"required"`
	Description  string
	Link         string
	GitHubLink   string
	Technologies string
}

// ProjectService handles business logic for projects.
type ProjectService struct {
	repo     repositories.ProjectRepository
	files    *storage.FileStore
	validate *validator.Validate
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo repositories.ProjectRepository, files *storage.FileStore) *ProjectService {
	return &ProjectService{repo: repo, files: files, validate: validator.New()}
}

// List retrieves all projects.
func (s *ProjectService) List() ([]models.Project, error) {
	return s.repo.GetAll()
}

// Get retrieves a single project by its ID.
func (s *ProjectService) Get(id string) (*models.Project, error) {
	return s.repo.GetByID(id)
}

// Create validates the form and stores a new project. An image with a
// disallowed extension does not block creation: the project is saved without
// an image reference and the file error is returned alongside it.
func (s *ProjectService) Create(in ProjectInput, image *multipart.FileHeader) (*models.Project, error) {
	const op = "ProjectService.Create"

	if err := validateInput(s.validate, op, in); err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:        in.Title,
		Description:  in.Description,
		Link:         in.Link,
		GitHubLink:   in.GitHubLink,
		Technologies: in.Technologies,
	}

	fileErr := s.applyImage(project, image)
	if fileErr != nil && !apperr.IsCode(fileErr, apperr.CodeUnsupportedFile) {
		return nil, fileErr
	}

	if err := s.repo.Create(project); err != nil {
		return nil, err
	}
	return project, fileErr
}

// Update replaces the editable fields of an existing project. A new image
// replaces the stored filename reference; the previous file stays on disk.
func (s *ProjectService) Update(id string, in ProjectInput, image *multipart.FileHeader) (*models.Project, error) {
	const op = "ProjectService.Update"

	if err := validateInput(s.validate, op, in); err != nil {
		return nil, err
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	project.Title = in.Title
	project.Description = in.Description
	project.Link = in.Link
	project.GitHubLink = in.GitHubLink
	project.Technologies = in.Technologies

	fileErr := s.applyImage(project, image)
	if fileErr != nil && !apperr.IsCode(fileErr, apperr.CodeUnsupportedFile) {
		return nil, fileErr
	}

	if err := s.repo.Update(project); err != nil {
		return nil, err
	}
	return project, fileErr
}

// Delete removes a project by its ID. Its image file, if any, stays on disk.
func (s *ProjectService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Count returns the number of projects.
func (s *ProjectService) Count() (int64, error) {
	return s.repo.Count()
}

func (s *ProjectService) applyImage(project *models.Project, image *multipart.FileHeader) error {
	if image == nil {
		return nil
	}
	name, err := s.files.SaveImage(image)
	if err != nil {
		return err
	}
	project.Image = name
	return nil
}
