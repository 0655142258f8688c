package services

import (
	"time"

	"portfolio/internal/apperr"
	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/patrickmn/go-cache"
)

const homeCacheKey = "home"

// HomeData is the read-only aggregate behind the public home page. Profile is
// never nil; a missing row becomes a placeholder. Resume may be nil and the
// slices may be empty.
type HomeData struct {
	Profile      *models.Profile
	Skills       []models.Skill
	Projects     []models.Project
	Experiences  []models.Experience
	Education    []models.Education
	Certificates []models.Certificate
	Resume       *models.Resume
}

// PublicService aggregates all entities for public, read-only views. The
// aggregate is cached briefly; admin mutations flush it.
type PublicService struct {
	profiles     repositories.ProfileRepository
	skills       repositories.SkillRepository
	projects     repositories.ProjectRepository
	experiences  repositories.ExperienceRepository
	education    repositories.EducationRepository
	certificates repositories.CertificateRepository
	resumes      repositories.ResumeRepository
	cache        *cache.Cache
}

// NewPublicService creates a new PublicService.
func NewPublicService(
	profiles repositories.ProfileRepository,
	skills repositories.SkillRepository,
	projects repositories.ProjectRepository,
	experiences repositories.ExperienceRepository,
	education repositories.EducationRepository,
	certificates repositories.CertificateRepository,
	resumes repositories.ResumeRepository,
) *PublicService {
	return &PublicService{
		profiles:     profiles,
		skills:       skills,
		projects:     projects,
		experiences:  experiences,
		education:    education,
		certificates: certificates,
		resumes:      resumes,
		cache:        cache.New(1*time.Minute, 5*time.Minute),
	}
}

// Home builds the home page aggregate. A missing profile or resume is not an
// error; store failures are.
func (s *PublicService) Home() (*HomeData, error) {
	if cached, found := s.cache.Get(homeCacheKey); found {
		return cached.(*HomeData), nil
	}

	data := &HomeData{}

	profile, err := s.profiles.First()
	if err != nil {
		if !apperr.IsCode(err, apperr.CodeNotFound) {
			return nil, err
		}
		// Fresh install: render a placeholder instead of an empty page.
		profile = &models.Profile{Name: "Your Name", Title: "Web Developer"}
	}
	data.Profile = profile

	if data.Skills, err = s.skills.GetAll(); err != nil {
		return nil, err
	}
	if data.Projects, err = s.projects.GetAll(); err != nil {
		return nil, err
	}
	if data.Experiences, err = s.experiences.GetAll(); err != nil {
		return nil, err
	}
	if data.Education, err = s.education.GetAll(); err != nil {
		return nil, err
	}
	if data.Certificates, err = s.certificates.GetAll(); err != nil {
		return nil, err
	}

	resume, err := s.resumes.Latest()
	if err != nil && !apperr.IsCode(err, apperr.CodeNotFound) {
		return nil, err
	}
	data.Resume = resume

	s.cache.Set(homeCacheKey, data, cache.DefaultExpiration)
	return data, nil
}

// Invalidate drops the cached aggregate. Called after any admin mutation.
func (s *PublicService) Invalidate() {
	s.cache.Delete(homeCacheKey)
}
