// Package admins manages back-office accounts through the admin API.
package admins

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/auth"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/sitesettings"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler"
)

const (
	// Path is the base path for admin account management.
	Path = handler.AdminPath + "/admins"

	// PasswordPath changes the password of the logged-in admin.
	PasswordPath = handler.AdminPath + "/account/password"

	// DefaultPageSize for pagination.
	DefaultPageSize = 25
	maxPageSize     = 100
)

// Admin is the public form of an admin account.
type Admin struct {
	ID          uint64     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Active      bool       `json:"active"`
	RoleID      uint       `json:"roleId"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// List is one page of admins.
type List struct {
	Admins []Admin `json:"admins"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
}

// CreateRequest is a new admin account.
type CreateRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	RoleID   uint   `json:"roleId"   validate:"required"`
}

// PasswordRequest changes the caller's password.
type PasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// Service provides account management.
type Service struct {
	handler.Service
	db       *gorm.DB
	provider *auth.LocalProvider
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) error {
	if app == nil || cfg == nil || db == nil || authService == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.provider = auth.NewLocalProvider(db)

	manage := auth.RequirePermission(authService, auth.PermAdminsManage)

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, manage, s.List)
		router.Post(handler.RouterRootPath, manage, s.Create)
		router.Delete("/:id", manage, s.Deactivate)
	})

	// any logged-in admin may change its own password
	app.Put(PasswordPath, s.ChangePassword)

	return nil
}

func toAdmin(a *models.AdminUser) Admin {
	return Admin{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		Active:      a.Active,
		RoleID:      a.RoleID,
		Role:        a.Role.Name,
		LastLoginAt: a.LastLoginAt,
	}
}

// List shows admins with simple pagination and search.
func (s *Service) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := c.QueryInt("pageSize", DefaultPageSize)
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = DefaultPageSize
	}

	var (
		admins     []models.AdminUser
		totalCount int64
		tx         = s.db.Model(&models.AdminUser{})
	)

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		tx = tx.Where("username LIKE ? OR email LIKE ?", like, like)
	}

	if err := tx.Count(&totalCount).Error; err != nil {
		log.Error().Err(err).Msg("count admins failed")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to load admins")
	}

	err := tx.Preload("Role").Order("username").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&admins).Error
	if err != nil {
		log.Error().Err(err).Msg("list admins failed")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to load admins")
	}

	out := List{Admins: make([]Admin, 0, len(admins)), Total: totalCount, Page: page}
	for i := range admins {
		out.Admins = append(out.Admins, toAdmin(&admins[i]))
	}

	return c.JSON(out)
}

// Create adds an admin account.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(CreateRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid form data")
	}

	if err := sitesettings.ValidateStruct(req); err != nil {
		return handler.BadRequest(c, err)
	}

	var role models.AdminRole
	if err := s.db.First(&role, req.RoleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return handler.Error(c, fiber.StatusBadRequest, auth.ErrRoleNotFound.Error())
		}

		log.Error().Err(err).Msg("load role failed")

		return handler.Error(c, fiber.StatusInternalServerError, "failed to create admin")
	}

	admin, err := s.provider.CreateAdmin(req.Username, req.Email, req.Password, role.ID)
	switch {
	case errors.Is(err, auth.ErrUserNameOrEmailExists):
		return handler.Error(c, fiber.StatusConflict, err.Error())
	case err != nil:
		log.Error().Err(err).Str("username", req.Username).Msg("create admin failed")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to create admin")
	}

	admin.Role = role

	return c.Status(fiber.StatusCreated).JSON(toAdmin(admin))
}

// Deactivate disables an admin account. Admins cannot disable themselves.
func (s *Service) Deactivate(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return handler.Error(c, fiber.StatusBadRequest, "invalid admin id")
	}

	if current, ok := auth.AdminFromContext(c); ok && current.ID == id {
		return handler.Error(c, fiber.StatusBadRequest, "cannot deactivate your own account")
	}

	if _, err := s.provider.GetAdminByID(id); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return handler.Error(c, fiber.StatusNotFound, err.Error())
		}

		return handler.Error(c, fiber.StatusInternalServerError, "failed to deactivate admin")
	}

	if err := s.provider.DeactivateAdmin(id); err != nil {
		log.Error().Err(err).Uint64("admin_id", id).Msg("deactivate admin failed")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to deactivate admin")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ChangePassword changes the password of the logged-in admin.
func (s *Service) ChangePassword(c *fiber.Ctx) error {
	current, ok := auth.AdminFromContext(c)
	if !ok {
		return handler.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	req := new(PasswordRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid form data")
	}

	if err := sitesettings.ValidateStruct(req); err != nil {
		return handler.BadRequest(c, err)
	}

	err := s.provider.ChangePassword(current.ID, req.OldPassword, req.NewPassword)
	switch {
	case errors.Is(err, auth.ErrInvalidOldPassword):
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		log.Error().Err(err).Uint64("admin_id", current.ID).Msg("change password failed")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to change password")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
