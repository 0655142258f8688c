package middleware

import (
	"time"

	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie carrying the signed admin session token.
const SessionCookie = "admin_session"

// AuthRequired is a Fiber middleware guarding the admin area. A missing or
// invalid session token redirects to the login page; the originally
// requested path is discarded.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			return c.Redirect("/admin/login", fiber.StatusSeeOther)
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			ClearSession(c)
			return c.Redirect("/admin/login", fiber.StatusSeeOther)
		}

		// Store identity in Fiber context for subsequent handlers
		c.Locals("admin_id", claims["admin_id"])
		c.Locals("username", claims["username"])

		return c.Next()
	}
}

// SetSession writes the session cookie.
func SetSession(c *fiber.Ctx, token string, lifetime time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(lifetime),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearSession expires the session cookie.
func ClearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
