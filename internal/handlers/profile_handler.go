package handlers

import (
	"portfolio/internal/apperr"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProfileHandler handles the singleton profile edit page.
type ProfileHandler struct {
	service *services.ProfileService
	public  *services.PublicService
	log     *logrus.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService, public *services.PublicService, log *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{service: service, public: public, log: log}
}

// RegisterRoutes registers the profile routes on the admin group.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/profile", h.HandleForm)
	router.Post("/profile", h.HandleUpdate)
}

// HandleForm renders the profile edit form.
func (h *ProfileHandler) HandleForm(c *fiber.Ctx) error {
	profile, err := h.service.Get()
	if err != nil {
		h.log.WithError(err).Error("could not load profile")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/profile", fiber.Map{"Profile": profile})
}

// HandleUpdate saves the profile, with an optional photo upload.
func (h *ProfileHandler) HandleUpdate(c *fiber.Ctx) error {
	in := profileInput(c)
	_, err := h.service.Update(in, formFile(c, "photo"))
	switch {
	case err == nil:
		setFlash(c, "success", "Profile updated successfully!")
	case apperr.IsCode(err, apperr.CodeUnsupportedFile):
		setFlash(c, "error", "Profile updated, but the photo was rejected: "+apperr.UserMessage(err))
	case apperr.IsCode(err, apperr.CodeInvalidArgument):
		return render(c, "admin/profile", fiber.Map{
			"Error": apperr.UserMessage(err),
			"Input": in,
		})
	default:
		h.log.WithError(err).Error("could not update profile")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	return c.Redirect("/admin/profile", fiber.StatusSeeOther)
}

func profileInput(c *fiber.Ctx) services.ProfileInput {
	return services.ProfileInput{
		Name:     c.FormValue("name"),
		Title:    c.FormValue("title"),
		About:    c.FormValue("about"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		Location: c.FormValue("location"),
		LinkedIn: c.FormValue("linkedin"),
		GitHub:   c.FormValue("github"),
		Twitter:  c.FormValue("twitter"),
	}
}
