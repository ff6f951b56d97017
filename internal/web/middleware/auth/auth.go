package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	rbac "github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/auth"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/session"
)

// Middleware rejects unauthenticated requests to the admin endpoints.
func Middleware(c *fiber.Ctx) error {
	if !IsAdminPath(c) {
		return c.Next()
	}

	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return unauthorized(c)
	}

	data := new(session.Data)
	if err := data.Read(sessionID); err != nil || data.Admin.ID == 0 {
		return unauthorized(c)
	}

	c.Locals(rbac.LocalsAdmin, data.Admin)

	return c.Next()
}

// IsAdminPath checks if the current request targets an admin endpoint.
func IsAdminPath(c *fiber.Ctx) bool {
	p := strings.ToLower(c.Path())

	return p == handler.AdminPath || strings.HasPrefix(p, handler.AdminPath+"/")
}

// Identity names the admin of the request, for the access log.
func Identity(c *fiber.Ctx) string {
	if admin, ok := rbac.AdminFromContext(c); ok {
		return admin.Username
	}

	return ""
}

func unauthorized(c *fiber.Ctx) error {
	return handler.Error(c, fiber.StatusUnauthorized, "Unauthorized")
}
