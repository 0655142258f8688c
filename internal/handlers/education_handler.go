package handlers

import (
	"portfolio/internal/apperr"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// EducationHandler handles the admin study history CRUD pages.
type EducationHandler struct {
	service *services.EducationService
	public  *services.PublicService
	log     *logrus.Logger
}

// NewEducationHandler creates a new EducationHandler.
func NewEducationHandler(service *services.EducationService, public *services.PublicService, log *logrus.Logger) *EducationHandler {
	return &EducationHandler{service: service, public: public, log: log}
}

// RegisterRoutes registers the education routes on the admin group.
func (h *EducationHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/education")
	routes.Get("/", h.HandleList)
	routes.Get("/add", h.HandleAddForm)
	routes.Post("/add", h.HandleAdd)
	routes.Get("/edit/:id", h.HandleEditForm)
	routes.Post("/edit/:id", h.HandleEdit)
	routes.Get("/delete/:id", h.HandleDelete)
}

// HandleList shows all education entries, newest start date first.
func (h *EducationHandler) HandleList(c *fiber.Ctx) error {
	education, err := h.service.List()
	if err != nil {
		h.log.WithError(err).Error("could not list education")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/education", fiber.Map{"Education": education})
}

// HandleAddForm renders an empty education form.
func (h *EducationHandler) HandleAddForm(c *fiber.Ctx) error {
	return render(c, "admin/education_form", fiber.Map{"Action": "/admin/education/add"})
}

// HandleAdd creates an education entry from the submitted form.
func (h *EducationHandler) HandleAdd(c *fiber.Ctx) error {
	in := educationInput(c)
	if _, err := h.service.Create(in); err != nil {
		if apperr.IsCode(err, apperr.CodeInvalidArgument) {
			return render(c, "admin/education_form", fiber.Map{
				"Action": "/admin/education/add",
				"Error":  apperr.UserMessage(err),
				"Input":  in,
			})
		}
		h.log.WithError(err).Error("could not create education")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	setFlash(c, "success", "Education added successfully!")
	return c.Redirect("/admin/education", fiber.StatusSeeOther)
}

// HandleEditForm renders the form pre-filled with an existing entry.
func (h *EducationHandler) HandleEditForm(c *fiber.Ctx) error {
	education, err := h.service.Get(c.Params("id"))
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not load education")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/education_form", fiber.Map{
		"Action":    "/admin/education/edit/" + education.ID,
		"Education": education,
	})
}

// HandleEdit updates an education entry from the submitted form.
func (h *EducationHandler) HandleEdit(c *fiber.Ctx) error {
	id := c.Params("id")
	in := educationInput(c)
	if _, err := h.service.Update(id, in); err != nil {
		switch {
		case apperr.IsCode(err, apperr.CodeNotFound):
			return fiber.ErrNotFound
		case apperr.IsCode(err, apperr.CodeInvalidArgument):
			return render(c, "admin/education_form", fiber.Map{
				"Action": "/admin/education/edit/" + id,
				"Error":  apperr.UserMessage(err),
				"Input":  in,
			})
		default:
			h.log.WithError(err).Error("could not update education")
			return fiber.ErrInternalServerError
		}
	}
	h.public.Invalidate()
	setFlash(c, "success", "Education updated successfully!")
	return c.Redirect("/admin/education", fiber.StatusSeeOther)
}

// HandleDelete removes an education entry immediately.
func (h *EducationHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not delete education")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	setFlash(c, "success", "Education deleted successfully!")
	return c.Redirect("/admin/education", fiber.StatusSeeOther)
}

func educationInput(c *fiber.Ctx) services.EducationInput {
	return services.EducationInput{
		Degree:      c.FormValue("degree"),
		Institution: c.FormValue("institution"),
		Location:    c.FormValue("location"),
		StartDate:   c.FormValue("start_date"),
		EndDate:     c.FormValue("end_date"),
		Current:     c.FormValue("current") != "",
		Description: c.FormValue("description"),
	}
}
