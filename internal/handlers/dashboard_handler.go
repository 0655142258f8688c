package handlers

import (
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// DashboardHandler renders the admin landing page with per-entity counts.
type DashboardHandler struct {
	profiles     *services.ProfileService
	skills       *services.SkillService
	projects     *services.ProjectService
	experiences  *services.ExperienceService
	education    *services.EducationService
	certificates *services.CertificateService
	resumes      *services.ResumeService
	log          *logrus.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(
	profiles *services.ProfileService,
	skills *services.SkillService,
	projects *services.ProjectService,
	experiences *services.ExperienceService,
	education *services.EducationService,
	certificates *services.CertificateService,
	resumes *services.ResumeService,
	log *logrus.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		profiles:     profiles,
		skills:       skills,
		projects:     projects,
		experiences:  experiences,
		education:    education,
		certificates: certificates,
		resumes:      resumes,
		log:          log,
	}
}

// RegisterRoutes registers the dashboard route on the admin group.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleDashboard)
}

// HandleDashboard shows counts per entity type.
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	profile, err := h.profiles.Get()
	if err != nil {
		h.log.WithError(err).Error("dashboard: could not load profile")
		return fiber.ErrInternalServerError
	}

	counts := fiber.Map{}
	for name, count := range map[string]func() (int64, error){
		"Skills":       h.skills.Count,
		"Projects":     h.projects.Count,
		"Experiences":  h.experiences.Count,
		"Education":    h.education.Count,
		"Certificates": h.certificates.Count,
		"Resumes":      h.resumes.Count,
	} {
		n, err := count()
		if err != nil {
			h.log.WithError(err).Error("dashboard: count failed")
			return fiber.ErrInternalServerError
		}
		counts[name] = n
	}

	return render(c, "admin/dashboard", fiber.Map{
		"Profile": profile,
		"Counts":  counts,
	})
}
