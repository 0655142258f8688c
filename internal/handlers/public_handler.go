package handlers

import (
	"strings"

	"portfolio/internal/apperr"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// PublicHandler serves the read-only site: home page, resume view/download
// and the contact form.
type PublicHandler struct {
	public  *services.PublicService
	resumes *services.ResumeService
	contact *services.ContactService
	log     *logrus.Logger
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(public *services.PublicService, resumes *services.ResumeService, contact *services.ContactService, log *logrus.Logger) *PublicHandler {
	return &PublicHandler{public: public, resumes: resumes, contact: contact, log: log}
}

// RegisterRoutes registers the public routes.
func (h *PublicHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Get("/resume/:id", h.HandleViewResume)
	router.Get("/download/resume/:id", h.HandleDownloadResume)
	router.Post("/contact", h.HandleContact)
}

// HandleHome renders the aggregate home page. Empty sections render as
// placeholders; only a store failure is an error.
func (h *PublicHandler) HandleHome(c *fiber.Ctx) error {
	data, err := h.public.Home()
	if err != nil {
		h.log.WithError(err).Error("could not build home page")
		return fiber.ErrInternalServerError
	}
	return render(c, "index", fiber.Map{
		"Profile":      data.Profile,
		"Skills":       data.Skills,
		"Projects":     data.Projects,
		"Experiences":  data.Experiences,
		"Education":    data.Education,
		"Certificates": data.Certificates,
		"Resume":       data.Resume,
	})
}

// HandleViewResume streams the resume file: inline for PDFs, forced
// download for anything else. A missing file sends the visitor home with a
// notice instead of an error page.
func (h *PublicHandler) HandleViewResume(c *fiber.Ctx) error {
	return h.serveResume(c, false)
}

// HandleDownloadResume always streams the resume as an attachment.
func (h *PublicHandler) HandleDownloadResume(c *fiber.Ctx) error {
	return h.serveResume(c, true)
}

func (h *PublicHandler) serveResume(c *fiber.Ctx, attachment bool) error {
	resume, err := h.resumes.Get(c.Params("id"))
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not load resume")
		return fiber.ErrInternalServerError
	}

	path, exists := h.resumes.FilePath(resume)
	if !exists {
		setFlash(c, "error", "Resume file not found")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if attachment || !strings.HasSuffix(strings.ToLower(resume.FileName), ".pdf") {
		return c.Download(path, resume.OriginalName)
	}
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+resume.OriginalName+`"`)
	return c.SendFile(path)
}

// HandleContact dispatches the contact form emails. Success and failure both
// land back on the home page contact section with a notice; a relay failure
// never becomes a 500.
func (h *PublicHandler) HandleContact(c *fiber.Ctx) error {
	in := services.ContactInput{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Subject: c.FormValue("subject"),
		Message: c.FormValue("message"),
	}

	if err := h.contact.Send(in); err != nil {
		if apperr.IsCode(err, apperr.CodeInvalidArgument) {
			setFlash(c, "error", apperr.UserMessage(err))
		} else {
			setFlash(c, "error", "Sorry "+in.Name+", there was an error sending your message. Please try again later.")
		}
		return c.Redirect("/#contact", fiber.StatusSeeOther)
	}

	setFlash(c, "success", "Thank you "+in.Name+"! Your message has been sent successfully. Check your email for confirmation.")
	return c.Redirect("/#contact", fiber.StatusSeeOther)
}
