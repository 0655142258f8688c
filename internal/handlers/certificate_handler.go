package handlers

import (
	"portfolio/internal/apperr"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CertificateHandler handles the admin certificate CRUD pages.
type CertificateHandler struct {
	service *services.CertificateService
	public  *services.PublicService
	log     *logrus.Logger
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(service *services.CertificateService, public *services.PublicService, log *logrus.Logger) *CertificateHandler {
	return &CertificateHandler{service: service, public: public, log: log}
}

// RegisterRoutes registers the certificate routes on the admin group.
func (h *CertificateHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/certificates")
	routes.Get("/", h.HandleList)
	routes.Get("/add", h.HandleAddForm)
	routes.Post("/add", h.HandleAdd)
	routes.Get("/edit/:id", h.HandleEditForm)
	routes.Post("/edit/:id", h.HandleEdit)
	routes.Get("/delete/:id", h.HandleDelete)
}

// HandleList shows all certificates, newest earn date first.
func (h *CertificateHandler) HandleList(c *fiber.Ctx) error {
	certificates, err := h.service.List()
	if err != nil {
		h.log.WithError(err).Error("could not list certificates")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/certificates", fiber.Map{"Certificates": certificates})
}

// HandleAddForm renders an empty certificate form.
func (h *CertificateHandler) HandleAddForm(c *fiber.Ctx) error {
	return render(c, "admin/certificate_form", fiber.Map{"Action": "/admin/certificates/add"})
}

// HandleAdd creates a certificate from the submitted form, with an optional
// badge image upload.
func (h *CertificateHandler) HandleAdd(c *fiber.Ctx) error {
	in := certificateInput(c)
	_, err := h.service.Create(in, formFile(c, "image"))
	switch {
	case err == nil:
		setFlash(c, "success", "Certificate added successfully!")
	case apperr.IsCode(err, apperr.CodeUnsupportedFile):
		setFlash(c, "error", "Certificate added, but the image was rejected: "+apperr.UserMessage(err))
	case apperr.IsCode(err, apperr.CodeInvalidArgument):
		return render(c, "admin/certificate_form", fiber.Map{
			"Action": "/admin/certificates/add",
			"Error":  apperr.UserMessage(err),
			"Input":  in,
		})
	default:
		h.log.WithError(err).Error("could not create certificate")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	return c.Redirect("/admin/certificates", fiber.StatusSeeOther)
}

// HandleEditForm renders the form pre-filled with an existing certificate.
func (h *CertificateHandler) HandleEditForm(c *fiber.Ctx) error {
	certificate, err := h.service.Get(c.Params("id"))
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not load certificate")
		return fiber.ErrInternalServerError
	}
	return render(c, "admin/certificate_form", fiber.Map{
		"Action":      "/admin/certificates/edit/" + certificate.ID,
		"Certificate": certificate,
	})
}

// HandleEdit updates a certificate from the submitted form.
func (h *CertificateHandler) HandleEdit(c *fiber.Ctx) error {
	id := c.Params("id")
	in := certificateInput(c)
	_, err := h.service.Update(id, in, formFile(c, "image"))
	switch {
	case err == nil:
		setFlash(c, "success", "Certificate updated successfully!")
	case apperr.IsCode(err, apperr.CodeUnsupportedFile):
		setFlash(c, "error", "Certificate updated, but the image was rejected: "+apperr.UserMessage(err))
	case apperr.IsCode(err, apperr.CodeNotFound):
		return fiber.ErrNotFound
	case apperr.IsCode(err, apperr.CodeInvalidArgument):
		return render(c, "admin/certificate_form", fiber.Map{
			"Action": "/admin/certificates/edit/" + id,
			"Error":  apperr.UserMessage(err),
			"Input":  in,
		})
	default:
		h.log.WithError(err).Error("could not update certificate")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	return c.Redirect("/admin/certificates", fiber.StatusSeeOther)
}

// HandleDelete removes a certificate immediately.
func (h *CertificateHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return fiber.ErrNotFound
		}
		h.log.WithError(err).Error("could not delete certificate")
		return fiber.ErrInternalServerError
	}
	h.public.Invalidate()
	setFlash(c, "success", "Certificate deleted successfully!")
	return c.Redirect("/admin/certificates", fiber.StatusSeeOther)
}

func certificateInput(c *fiber.Ctx) services.CertificateInput {
	return services.CertificateInput{
		Name:       c.FormValue("name"),
		Issuer:     c.FormValue("issuer"),
		DateEarned: c.FormValue("date_earned"),
		Link:       c.FormValue("link"),
	}
}
