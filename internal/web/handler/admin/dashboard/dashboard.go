// Package dashboard serves the counters of the admin start page.
package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/auth"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	controller "github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/dashboard"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler"
)

// Path is the path to the dashboard endpoint.
const Path = handler.AdminPath + "/dashboard"

// Response is the dashboard payload.
type Response struct {
	Totals controller.Totals  `json:"totals"`
	Year   int                `json:"year"`
	Users  controller.Monthly `json:"users"`
	Posts  controller.Monthly `json:"posts"`
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	db  *gorm.DB
	now func() time.Time
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) error {
	if app == nil || cfg == nil || db == nil || authService == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	if s.now == nil {
		s.now = time.Now
	}

	app.Get(Path, auth.RequirePermission(authService, auth.PermDashboardView), s.Get)

	return nil
}

// Get returns the totals and the monthly counts of ?year= (default: this year, UTC).
func (s *Service) Get(c *fiber.Ctx) error {
	year := c.QueryInt("year", s.now().UTC().Year())

	totals, err := controller.GetTotals(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load dashboard totals")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	users, err := controller.MonthlyUsers(s.db, year)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("failed to bucket users")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	posts, err := controller.MonthlyPosts(s.db, year)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("failed to bucket posts")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	return c.JSON(Response{Totals: totals, Year: year, Users: users, Posts: posts})
}
