package handlers

import (
	"mime/multipart"

	"portfolio/internal/apperr"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProjectHandler handles the admin project CRUD pages.
type ProjectHandler struct {
	service *services.ProjectService
	public  *services.PublicService
	log     *logrus.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service *services.ProjectService, public *services.PublicService, log *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{service: service, public: public, log: log}
}

// RegisterRoutes registers the project routes on the admin group.
func (h *ProjectHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/projects")
	routes.Get("/", h.HandleList)
	routes.Get("/add", h.HandleAddForm)
	routes.Post("/add", h.HandleAdd)
	routes.Get("/edit/:id", h.HandleEditForm)
	routes.Post("/edit/:id", h.HandleEdit)
	routes.Get("/delete/:id", h.HandleDelete)
}

// HandleList shows all projects.
func (h *ProjectHandler) HandleList(c *fiber.Ctx) error {
	projects, err := h.service.List()
	if err != nil {
		h.log.WithError(err).Error("could not list projects")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/projects", fiber.Map{"Projects": projects})
}

// HandleAddForm renders an empty project form.
func (h *ProjectHandler) HandleAddForm(c *fiber.Ctx) error {
	return render(c, "admin/project_form", fiber.Map{"Action": "/admin/projects/add"})
}

// HandleAdd creates a project from the submitted form, with an optional
// image upload.
func (h *ProjectHandler) HandleAdd(c *fiber.Ctx) error {
	in := projectInput(c)
	_, err := h.service.Create(in, formFile(c, "image"))
	switch {
	case err == nil:
		setFlash(c, "success", "Project added successfully!")
	case apperr.IsCode(err, apperr.CodeUnsupportedFile):
		// Project was still created, only the image was rejected.
		setFlash(c, "error", "Project added, but the image was rejected: "+apperr.UserMessage(err))
	case apperr.IsCode(err, apperr.CodeInvalidArgument):
		return render(c, "admin/project_form", fiber.Map{
			"Action": "/admin/projects/add",
			"Error":  apperr.UserMessage(err),
			"Input":  in,
		})
	default:
		h.log.WithError(err).Error("could not create project")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	return c.Redirect("/admin/projects", fiber.StatusSeeOther)
}

// HandleEditForm renders the form pre-filled with an existing project.
func (h *ProjectHandler) HandleEditForm(c *fiber.Ctx) error {
	project, err := h.service.Get(c.Params("id"))
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not load project")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/project_form", fiber.Map{
		"Action":  "/admin/projects/edit/" + project.ID,
		"Project": project,
	})
}

// HandleEdit updates a project from the submitted form.
func (h *ProjectHandler) HandleEdit(c *fiber.Ctx) error {
	id := c.Params("id")
	in := projectInput(c)
	_, err := h.service.Update(id, in, formFile(c, "image"))
	switch {
	case err == nil:
		setFlash(c, "success", "Project updated successfully!")
	case apperr.IsCode(err, apperr.CodeUnsupportedFile):
		setFlash(c, "error", "Project updated, but the image was rejected: "+apperr.UserMessage(err))
	case apperr.IsCode(err, apperr.CodeNotFound):
		return fiber.ErrNotFound
	case apperr.IsCode(err, apperr.CodeInvalidArgument):
		return render(c, "admin/project_form", fiber.Map{
			"Action": "/admin/projects/edit/" + id,
			"Error":  apperr.UserMessage(err),
			"Input":  in,
		})
	default:
		h.log.WithError(err).Error("could not update project")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	return c.Redirect("/admin/projects", fiber.StatusSeeOther)
}

// HandleDelete removes a project immediately.
func (h *ProjectHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not delete project")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	setFlash(c, "success", "Project deleted successfully!")
	return c.Redirect("/admin/projects", fiber.StatusSeeOther)
}

func projectInput(c *fiber.Ctx) services.ProjectInput {
	return services.ProjectInput{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		Link:         c.FormValue("link"),
		GitHubLink:   c.FormValue("github_link"),
		Technologies: c.FormValue("technologies"),
	}
}

// formFile returns the named upload, or nil when the field is absent or
// empty. Fiber errors on a missing multipart field; absence is fine here.
func formFile(c *fiber.Ctx, name string) *multipart.FileHeader {
	fh, err := c.FormFile(name)
	if err != nil || fh == nil || fh.Filename == "" {
		return nil
	}
	return fh
}
