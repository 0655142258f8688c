package services

import (
	"mime/multipart"

	"portfolio/internal/apperr"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/storage"
)

// ResumeService handles resume uploads. Unlike the image-bearing entities,
// deleting a resume row also deletes its backing file.
type ResumeService struct {
	repo  repositories.ResumeRepository
	files *storage.FileStore
}

// NewResumeService creates a new ResumeService.
func NewResumeService(repo repositories.ResumeRepository, files *storage.FileStore) *ResumeService {
	return &ResumeService{repo: repo, files: files}
}

// List retrieves all resume rows, newest upload first.
func (s *ResumeService) List() ([]models.Resume, error) {
	return s.repo.GetAll()
}

// Get retrieves a single resume row by its ID.
func (s *ResumeService) Get(id string) (*models.Resume, error) {
	return s.repo.GetByID(id)
}

// Latest retrieves the most recently uploaded resume.
func (s *ResumeService) Latest() (*models.Resume, error) {
	return s.repo.Latest()
}

// Upload stores the document under a timestamp-prefixed name and records it.
// A missing file or a disallowed extension rejects the upload outright; a
// resume row without a file would be useless.
func (s *ResumeService) Upload(file *multipart.FileHeader, description string) (*models.Resume, error) {
	const op = "ResumeService.Upload"

	if file == nil || file.Filename == "" {
		return nil, apperr.E(apperr.CodeInvalidArgument, op, "No file selected", nil)
	}

	stored, err := s.files.SaveDocument(file)
	if err != nil {
		return nil, err
	}

	resume := &models.Resume{
		FileName:     stored,
		OriginalName: file.Filename,
		Description:  description,
	}
	if err := s.repo.Create(resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// Delete removes the row and its backing file. A file already missing from
// disk does not fail the delete.
func (s *ResumeService) Delete(id string) error {
	resume, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.files.Remove(resume.FileName); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// Count returns the number of resume rows.
func (s *ResumeService) Count() (int64, error) {
	return s.repo.Count()
}

// FilePath resolves a resume row to its path on disk, reporting whether the
// file is actually present.
func (s *ResumeService) FilePath(resume *models.Resume) (string, bool) {
	return s.files.Path(resume.FileName), s.files.Exists(resume.FileName)
}
