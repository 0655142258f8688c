package handlers

import (
	"portfolio/internal/middleware"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles the admin session lifecycle.
type AuthHandler struct {
	authService *services.AuthService
	log         *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// RegisterPublicRoutes registers the login routes, which must stay outside
// the auth gate.
func (h *AuthHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/admin/login", h.HandleLoginForm)
	router.Post("/admin/login", h.HandleLogin)
}

// RegisterRoutes registers the routes behind the auth gate.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/logout", h.HandleLogout)
}

// HandleLoginForm renders the login page.
func (h *AuthHandler) HandleLoginForm(c *fiber.Ctx) error {
	return render(c, "admin/login", nil)
}

// HandleLogin checks the credentials and establishes the session cookie.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.authService.Login(username, password)
	if err != nil {
		h.log.WithField("username", username).Info("failed login attempt")
		return render(c, "admin/login", fiber.Map{
			"Error": "Invalid username or password",
		})
	}

	middleware.SetSession(c, token, h.authService.TokenDuration())
	return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
}

// HandleLogout clears the session and returns to the public site.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	middleware.ClearSession(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}
