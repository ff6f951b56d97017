// Package languages lets admins add interface languages.
package languages

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/auth"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/language"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/sitesettings"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler"
)

// Path is the path of the language endpoints.
const Path = handler.AdminPath + "/languages"

// CreateRequest is a new language with its first phrase.
type CreateRequest struct {
	Code      string `json:"code"      form:"code"      validate:"required,max=20"`
	Name      string `json:"name"      form:"name"      validate:"required,max=100"`
	Direction string `json:"direction" form:"direction" validate:"omitempty,oneof=ltr rtl"`
	Key       string `json:"key"       form:"key"       validate:"required,max=160"`
	Value     string `json:"value"     form:"value"`
}

// Service is the languages handler service.
type Service struct {
	handler.Service
	db *gorm.DB
}

// Handler is the languages handler.
var Handler = Service{}

// Init initializes the languages handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) error {
	if app == nil || cfg == nil || db == nil || authService == nil {
		return handler.ErrNilDependency
	}

	s.db = db

	manage := auth.RequirePermission(authService, auth.PermLanguagesManage)

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, manage, s.List)
		router.Post(handler.RouterRootPath, manage, s.Create)
	})

	return nil
}

// List returns every language.
func (s *Service) List(c *fiber.Ctx) error {
	langs, err := language.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list languages")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to list languages")
	}

	return c.JSON(langs)
}

// Create stores a language and its first key. Both are stored or neither.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(CreateRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid form data")
	}

	if err := sitesettings.ValidateStruct(req); err != nil {
		return handler.BadRequest(c, err)
	}

	lang := &models.Language{Code: req.Code, Name: req.Name, Direction: req.Direction}
	if lang.Direction == "" {
		lang.Direction = "ltr"
	}

	key := &models.LanguageKey{Key: req.Key, Value: req.Value}

	err := language.Create(s.db, lang, key)
	switch {
	case errors.Is(err, language.ErrLanguageCodeEmpty):
		return handler.BadRequest(c, err)
	case err != nil:
		log.Error().Err(err).Str("code", req.Code).Msg("failed to create language")
		return handler.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	lang.Keys = []models.LanguageKey{*key}

	return c.Status(fiber.StatusCreated).JSON(lang)
}
