package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/auth"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/sitesettings"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/session"
)

const (
	// Path is the path to the login endpoint.
	Path = handler.APIPath + "/login"
)

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Response is returned on a successful login.
type Response struct {
	Admin       session.Admin `json:"admin"`
	Permissions []string      `json:"permissions"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg         *config.Config
	provider    *auth.LocalProvider
	authService *auth.Service
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) error {
	if app == nil || cfg == nil || db == nil || authService == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.provider = auth.NewLocalProvider(db)
	s.authService = authService

	// register routes
	app.Post(Path, s.Post)

	return nil
}

// Post checks the credentials and opens a session.
func (s *Service) Post(c *fiber.Ctx) error {
	creds := new(Credentials)
	if err := c.BodyParser(creds); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, ErrInvalidFormData.Error())
	}

	if err := sitesettings.ValidateStruct(creds); err != nil {
		return handler.BadRequest(c, err)
	}

	admin, err := s.provider.Authenticate(creds.Username, creds.Password)
	switch {
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, auth.ErrInvalidPassword):
		log.Warn().Str("username", creds.Username).Msg("failed login")
		return handler.Error(c, fiber.StatusUnauthorized, ErrInvalidCredentials.Error())
	case errors.Is(err, auth.ErrUserAccountDisabled):
		log.Warn().Str("username", creds.Username).Msg("login of disabled account")
		return handler.Error(c, fiber.StatusForbidden, ErrAccountDisabled.Error())
	case err != nil:
		log.Error().Err(err).Str("username", creds.Username).Msg("login failed")
		return handler.Error(c, fiber.StatusInternalServerError, ErrInternalServerError.Error())
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return handler.Error(c, fiber.StatusInternalServerError, ErrInternalServerError.Error())
	}

	data := &session.Data{
		Admin: session.Admin{ID: admin.ID, Username: admin.Username, RoleID: admin.RoleID},
	}

	if err = data.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return handler.Error(c, fiber.StatusInternalServerError, ErrInternalServerError.Error())
	}

	permissions, err := s.authService.GetAdminPermissions(admin.ID)
	if err != nil {
		log.Error().Err(err).Uint64("admin_id", admin.ID).Msg("failed to load permissions")
		return handler.Error(c, fiber.StatusInternalServerError, ErrInternalServerError.Error())
	}

	// set login cookie
	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	log.Info().Str("username", admin.Username).Msg("admin logged in")

	return c.JSON(Response{Admin: data.Admin, Permissions: permissions})
}
