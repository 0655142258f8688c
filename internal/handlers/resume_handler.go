package handlers

import (
	"portfolio/internal/apperr"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ResumeHandler handles the admin resume upload pages.
type ResumeHandler struct {
	service *services.ResumeService
	public  *services.PublicService
	log     *logrus.Logger
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(service *services.ResumeService, public *services.PublicService, log *logrus.Logger) *ResumeHandler {
	return &ResumeHandler{service: service, public: public, log: log}
}

// RegisterRoutes registers the resume routes on the admin group.
func (h *ResumeHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/resume")
	routes.Get("/", h.HandleList)
	routes.Get("/upload", h.HandleUploadForm)
	routes.Post("/upload", h.HandleUpload)
	routes.Get("/delete/:id", h.HandleDelete)
}

// HandleList shows all uploaded resumes, newest first.
func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	resumes, err := h.service.List()
	if err != nil {
		h.log.WithError(err).Error("could not list resumes")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/resume", fiber.Map{"Resumes": resumes})
}

// HandleUploadForm renders the upload form.
func (h *ResumeHandler) HandleUploadForm(c *fiber.Ctx) error {
	return render(c, "admin/resume_upload", nil)
}

// HandleUpload stores a new resume document. Unlike images, a rejected file
// rejects the whole upload.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	_, err := h.service.Upload(formFile(c, "resume_file"), c.FormValue("description"))
	switch {
	case err == nil:
		h.public.Invalidate()
		setFlash(c, "success", "Resume uploaded successfully!")
		return c.Redirect("/admin/resume", fiber.StatusSeeOther)
	case apperr.IsCode(err, apperr.CodeInvalidArgument):
		return render(c, "admin/resume_upload", fiber.Map{"Error": apperr.UserMessage(err)})
	case apperr.IsCode(err, apperr.CodeUnsupportedFile):
		return render(c, "admin/resume_upload", fiber.Map{
			"Error": "Invalid file type. Please upload PDF, DOC, or DOCX files.",
		})
	default:
		h.log.WithError(err).Error("could not upload resume")
		return fiber.ErrInternalServerError
	}
}

// HandleDelete removes the row and its backing file.
func (h *ResumeHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not delete resume")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	setFlash(c, "success", "Resume deleted successfully!")
	return c.Redirect("/admin/resume", fiber.StatusSeeOther)
}
