package handlers

import (
	"portfolio/internal/apperr"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ExperienceHandler handles the admin work history CRUD pages.
type ExperienceHandler struct {
	service *services.ExperienceService
	public  *services.PublicService
	log     *logrus.Logger
}

// NewExperienceHandler creates a new ExperienceHandler.
func NewExperienceHandler(service *services.ExperienceService, public *services.PublicService, log *logrus.Logger) *ExperienceHandler {
	return &ExperienceHandler{service: service, public: public, log: log}
}

// RegisterRoutes registers the experience routes on the admin group.
func (h *ExperienceHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/experience")
	routes.Get("/", h.HandleList)
	routes.Get("/add", h.HandleAddForm)
	routes.Post("/add", h.HandleAdd)
	routes.Get("/edit/:id", h.HandleEditForm)
	routes.Post("/edit/:id", h.HandleEdit)
	routes.Get("/delete/:id", h.HandleDelete)
}

// HandleList shows all experience entries, newest start date first.
func (h *ExperienceHandler) HandleList(c *fiber.Ctx) error {
	experiences, err := h.service.List()
	if err != nil {
		h.log.WithError(err).Error("could not list experiences")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/experience", fiber.Map{"Experiences": experiences})
}

// HandleAddForm renders an empty experience form.
func (h *ExperienceHandler) HandleAddForm(c *fiber.Ctx) error {
	return render(c, "admin/experience_form", fiber.Map{"Action": "/admin/experience/add"})
}

// HandleAdd creates an experience entry from the submitted form.
func (h *ExperienceHandler) HandleAdd(c *fiber.Ctx) error {
	in := experienceInput(c)
	if _, err := h.service.Create(in); err != nil {
		if apperr.IsCode(err, apperr.CodeInvalidArgument) {
			return render(c, "admin/experience_form", fiber.Map{
				"Action": "/admin/experience/add",
				"Error":  apperr.UserMessage(err),
				"Input":  in,
			})
		}
		h.log.WithError(err).Error("could not create experience")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	setFlash(c, "success", "Experience added successfully!")
	return c.Redirect("/admin/experience", fiber.StatusSeeOther)
}

// HandleEditForm renders the form pre-filled with an existing entry.
func (h *ExperienceHandler) HandleEditForm(c *fiber.Ctx) error {
	experience, err := h.service.Get(c.Params("id"))
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not load experience")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/experience_form", fiber.Map{
		"Action":     "/admin/experience/edit/" + experience.ID,
		"Experience": experience,
	})
}

// HandleEdit updates an experience entry from the submitted form.
func (h *ExperienceHandler) HandleEdit(c *fiber.Ctx) error {
	id := c.Params("id")
	in := experienceInput(c)
	if _, err := h.service.Update(id, in); err != nil {
		switch {
		case apperr.IsCode(err, apperr.CodeNotFound):
			return fiber.ErrNotFound
		case apperr.IsCode(err, apperr.CodeInvalidArgument):
			return render(c, "admin/experience_form", fiber.Map{
				"Action": "/admin/experience/edit/" + id,
				"Error":  apperr.UserMessage(err),
				"Input":  in,
			})
		default:
			h.log.WithError(err).Error("could not update experience")
			return fiber.ErrInternalServerError
		}
	}
	h.public.Invalidate()
	setFlash(c, "success", "Experience updated successfully!")
	return c.Redirect("/admin/experience", fiber.StatusSeeOther)
}

// HandleDelete removes an experience entry immediately.
func (h *ExperienceHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not delete experience")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	setFlash(c, "success", "Experience deleted successfully!")
	return c.Redirect("/admin/experience", fiber.StatusSeeOther)
}

func experienceInput(c *fiber.Ctx) services.ExperienceInput {
	return services.ExperienceInput{
		Title:       c.FormValue("title"),
		Company:     c.FormValue("company"),
		Location:    c.FormValue("location"),
		StartDate:   c.FormValue("start_date"),
		EndDate:     c.FormValue("end_date"),
		Current:     c.FormValue("current") != "",
		Description: c.FormValue("description"),
	}
}
