package handlers

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// One-shot notices carried across a redirect in a cookie. The next rendered
// page consumes and clears it.
const flashCookie = "flash"

func setFlash(c *fiber.Ctx, category, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func takeFlash(c *fiber.Ctx) (category, message string) {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return "", ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", ""
	}
	parts := strings.SplitN(decoded, "|", 2)
	if len(parts) != 2 {
		return "notice", decoded
	}
	return parts[0], parts[1]
}

// render wraps c.Render, injecting any pending flash notice into the bind.
func render(c *fiber.Ctx, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	category, message := takeFlash(c)
	bind["FlashCategory"] = category
	bind["Flash"] = message
	return c.Render(name, bind)
}
