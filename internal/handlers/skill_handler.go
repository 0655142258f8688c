package handlers

import (
	"portfolio/internal/apperr"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// SkillHandler handles the admin skill CRUD pages.
type SkillHandler struct {
	service *services.SkillService
	public  *services.PublicService
	log     *logrus.Logger
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(service *services.SkillService, public *services.PublicService, log *logrus.Logger) *SkillHandler {
	return &SkillHandler{service: service, public: public, log: log}
}

// RegisterRoutes registers the skill routes on the admin group.
func (h *SkillHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/skills")
	routes.Get("/", h.HandleList)
	routes.Get("/add", h.HandleAddForm)
	routes.Post("/add", h.HandleAdd)
	routes.Get("/edit/:id", h.HandleEditForm)
	routes.Post("/edit/:id", h.HandleEdit)
	routes.Get("/delete/:id", h.HandleDelete)
}

// HandleList shows all skills.
func (h *SkillHandler) HandleList(c *fiber.Ctx) error {
	skills, err := h.service.List()
	if err != nil {
		h.log.WithError(err).Error("could not list skills")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/skills", fiber.Map{"Skills": skills})
}

// HandleAddForm renders an empty skill form.
func (h *SkillHandler) HandleAddForm(c *fiber.Ctx) error {
	return render(c, "admin/skill_form", fiber.Map{"Action": "/admin/skills/add"})
}

// HandleAdd creates a skill from the submitted form.
func (h *SkillHandler) HandleAdd(c *fiber.Ctx) error {
	in := skillInput(c)
	if _, err := h.service.Create(in); err != nil {
		if apperr.IsCode(err, apperr.CodeInvalidArgument) {
			return render(c, "admin/skill_form", fiber.Map{
				"Action": "/admin/skills/add",
				"Error":  apperr.UserMessage(err),
				"Input":  in,
			})
		}
		h.log.WithError(err).Error("could not create skill")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	setFlash(c, "success", "Skill added successfully!")
	return c.Redirect("/admin/skills", fiber.StatusSeeOther)
}

// HandleEditForm renders the form pre-filled with an existing skill.
func (h *SkillHandler) HandleEditForm(c *fiber.Ctx) error {
	skill, err := h.service.Get(c.Params("id"))
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not load skill")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/skill_form", fiber.Map{
		"Action": "/admin/skills/edit/" + skill.ID,
		"Skill":  skill,
	})
}

// HandleEdit updates a skill from the submitted form.
func (h *SkillHandler) HandleEdit(c *fiber.Ctx) error {
	id := c.Params("id")
	in := skillInput(c)
	if _, err := h.service.Update(id, in); err != nil {
		switch {
		case apperr.IsCode(err, apperr.CodeNotFound):
			return fiber.ErrNotFound
		case apperr.IsCode(err, apperr.CodeInvalidArgument):
			return render(c, "admin/skill_form", fiber.Map{
				"Action": "/admin/skills/edit/" + id,
				"Error":  apperr.UserMessage(err),
				"Input":  in,
			})
		default:
			h.log.WithError(err).Error("could not update skill")
			return fiber.ErrInternalServerError
		}
	}
	h.public.Invalidate()
	setFlash(c, "success", "Skill updated successfully!")
	return c.Redirect("/admin/skills", fiber.StatusSeeOther)
}

// HandleDelete removes a skill immediately; there is no confirmation step.
func (h *SkillHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not delete skill")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	setFlash(c, "success", "Skill deleted successfully!")
	return c.Redirect("/admin/skills", fiber.StatusSeeOther)
}

func skillInput(c *fiber.Ctx) services.SkillInput {
	return services.SkillInput{
		Name:       c.FormValue("name"),
		Percentage: c.FormValue("percentage"),
		Category:   c.FormValue("category"),
	}
}
