package services

import (
	"mime/multipart"

	"portfolio/internal/apperr"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/storage"

	"github.com/go-playground/validator/v10"
)

// CertificateInput is the certificate form.
type CertificateInput struct {
	Name       string `validate:"required"`
	Issuer     string
	DateEarned string `validate:"required"`
	Link       string
}

// CertificateService handles business logic for certificates.
type CertificateService struct {
	repo     repositories.CertificateRepository
	files    *storage.FileStore
	validate *validator.Validate
}

// NewCertificateService creates a new CertificateService.
func NewCertificateService(repo repositories.CertificateRepository, files *storage.FileStore) *CertificateService {
	return &CertificateService{repo: repo, files: files, validate: validator.New()}
}

// List retrieves all certificates, newest earn date first.
func (s *CertificateService) List() ([]models.Certificate, error) {
	return s.repo.GetAll()
}

// Get retrieves a single certificate by its ID.
func (s *CertificateService) Get(id string) (*models.Certificate, error) {
	return s.repo.GetByID(id)
}

// Create validates the form and stores a new certificate. A badge image with
// a disallowed extension does not block creation.
func (s *CertificateService) Create(in CertificateInput, image *multipart.FileHeader) (*models.Certificate, error) {
	const op = "CertificateService.Create"

	certificate := &models.Certificate{}
	if err := s.apply(op, certificate, in); err != nil {
		return nil, err
	}

	fileErr := s.applyImage(certificate, image)
	if fileErr != nil && !apperr.IsCode(fileErr, apperr.CodeUnsupportedFile) {
		return nil, fileErr
	}

	if err := s.repo.Create(certificate); err != nil {
		return nil, err
	}
	return certificate, fileErr
}

// Update replaces the editable fields of an existing certificate.
func (s *CertificateService) Update(id string, in CertificateInput, image *multipart.FileHeader) (*models.Certificate, error) {
	const op = "CertificateService.Update"

	certificate, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(op, certificate, in); err != nil {
		return nil, err
	}

	fileErr := s.applyImage(certificate, image)
	if fileErr != nil && !apperr.IsCode(fileErr, apperr.CodeUnsupportedFile) {
		return nil, fileErr
	}

	if err := s.repo.Update(certificate); err != nil {
		return nil, err
	}
	return certificate, fileErr
}

// Delete removes a certificate by its ID. Its image file, if any, stays on
// disk.
func (s *CertificateService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Count returns the number of certificates.
func (s *CertificateService) Count() (int64, error) {
	return s.repo.Count()
}

func (s *CertificateService) apply(op string, certificate *models.Certificate, in CertificateInput) error {
	if err := validateInput(s.validate, op, in); err != nil {
		return err
	}
	earned, err := parseDate(op, "date earned", in.DateEarned)
	if err != nil {
		return err
	}
	certificate.Name = in.Name
	certificate.Issuer = in.Issuer
	certificate.DateEarned = earned
	certificate.Link = in.Link
	return nil
}

func (s *CertificateService) applyImage(certificate *models.Certificate, image *multipart.FileHeader) error {
	if image == nil {
		return nil
	}
	name, err := s.files.SaveImage(image)
	if err != nil {
		return err
	}
	certificate.Image = name
	return nil
}
