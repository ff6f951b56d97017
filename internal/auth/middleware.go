package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/session"
)

// LocalsAdmin is the fiber.Locals key holding the session.Admin of an authorized request.
const LocalsAdmin = "admin"

var errNoSession = errors.New("no valid session")

type checkFunc func(adminID uint64) (bool, error)

// RequirePermission creates Fiber middleware that requires a specific permission.
func RequirePermission(authService *Service, permission string) fiber.Handler {
	return requirePermissions(func(adminID uint64) (bool, error) {
		return authService.HasPermission(adminID, permission)
	}, permission)
}

// RequireAnyPermission creates Fiber middleware that requires at least one of the given permissions.
func RequireAnyPermission(authService *Service, permissions ...string) fiber.Handler {
	return requirePermissions(func(adminID uint64) (bool, error) {
		return authService.HasAnyPermission(adminID, permissions)
	}, permissions...)
}

// RequireAllPermissions creates Fiber middleware that requires all the given permissions.
func RequireAllPermissions(authService *Service, permissions ...string) fiber.Handler {
	return requirePermissions(func(adminID uint64) (bool, error) {
		return authService.HasAllPermissions(adminID, permissions)
	}, permissions...)
}

// AdminFromContext returns the admin stored by the permission middleware.
func AdminFromContext(c *fiber.Ctx) (session.Admin, bool) {
	admin, ok := c.Locals(LocalsAdmin).(session.Admin)

	return admin, ok
}

func requirePermissions(check checkFunc, permissions ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := sessionAdmin(c)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("Unauthenticated request")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		allowed, err := check(admin.ID)
		if err != nil {
			log.Error().Err(err).Uint64("admin_id", admin.ID).Strs("permissions", permissions).
				Msg("Failed to check permission")

			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
		}

		if !allowed {
			log.Warn().Uint64("admin_id", admin.ID).Strs("permissions", permissions).
				Msg("Admin lacks required permission")

			return c.Status(fiber.StatusForbidden).
				JSON(fiber.Map{"error": "Forbidden: You don't have permission to access this resource"})
		}

		c.Locals(LocalsAdmin, admin)

		return c.Next()
	}
}

func sessionAdmin(c *fiber.Ctx) (session.Admin, error) {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return session.Admin{}, errNoSession
	}

	data := new(session.Data)
	if err := data.Read(sessionID); err != nil {
		return session.Admin{}, err
	}

	if data.Admin.ID == 0 {
		return session.Admin{}, errNoSession
	}

	return data.Admin, nil
}
