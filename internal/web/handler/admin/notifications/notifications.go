// Package notifications sends mass notifications from the admin API.
package notifications

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/auth"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/notification"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/sitesettings"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler"
)

// Path is the path of the notification endpoint.
const Path = handler.AdminPath + "/notifications"

// SendRequest is a notification for the listed users, or for every active
// user when Recipients is empty.
type SendRequest struct {
	Text       string   `json:"text"       validate:"required,max=1000"`
	URL        string   `json:"url"        validate:"omitempty,max=1000"`
	Recipients []uint64 `json:"recipients"`
}

// SendResponse reports how many notifications were stored.
type SendResponse struct {
	Sent int `json:"sent"`
}

// Service is the notifications handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the notifications handler.
var Handler = Service{}

// Init initializes the notifications handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) error {
	if app == nil || cfg == nil || db == nil || authService == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.db = db

	app.Post(Path, auth.RequirePermission(authService, auth.PermNotificationsSend), s.Send)

	return nil
}

// Send stores the notification for its recipients.
func (s *Service) Send(c *fiber.Ctx) error {
	req := new(SendRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid form data")
	}

	if err := sitesettings.ValidateStruct(req); err != nil {
		return handler.BadRequest(c, err)
	}

	msg := notification.Message{Text: req.Text, URL: req.URL}
	chunk := s.cfg.Site.NotificationChunkSize

	var (
		sent int
		err  error
	)

	if len(req.Recipients) == 0 {
		sent, err = notification.BroadcastToActive(s.db, msg, chunk)
	} else {
		sent, err = notification.Broadcast(s.db, msg, req.Recipients, chunk)
	}

	switch {
	case errors.Is(err, notification.ErrEmptyMessage), errors.Is(err, notification.ErrNoRecipients):
		return handler.BadRequest(c, err)
	case err != nil:
		log.Error().Err(err).Msg("failed to send notification")
		return handler.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if admin, ok := auth.AdminFromContext(c); ok {
		log.Info().Str("admin", admin.Username).Int("sent", sent).Msg("notification sent")
	}

	return c.JSON(SendResponse{Sent: sent})
}
