// Package reports serves the moderation queue of the admin API.
package reports

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/auth"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/report"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/site"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/view"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler"
)

// Path is the path of the report endpoints.
const Path = handler.AdminPath + "/reports"

// Page is one page of the queue.
type Page struct {
	Reports []*view.Report `json:"reports"`
	Total   int64          `json:"total"`
	Unseen  int64          `json:"unseen"`
	Page    int            `json:"page"`
	PerPage int            `json:"perPage"`
}

// SeenRequest is the payload of the seen toggle.
type SeenRequest struct {
	Seen bool `json:"seen"`
}

// Service is the reports handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	presenter *view.Presenter
}

// Handler is the reports handler.
var Handler = Service{}

// Init initializes the reports handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) error {
	if app == nil || cfg == nil || db == nil || authService == nil {
		return handler.ErrNilDependency
	}

	links, err := site.New(cfg.Site)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.db = db
	s.presenter = view.New(links, db)

	read := auth.RequirePermission(authService, auth.PermReportsView)
	manage := auth.RequirePermission(authService, auth.PermReportsManage)

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, read, s.List)
		router.Get("/:id", read, s.Get)
		router.Put("/:id/seen", manage, s.MarkSeen)
		router.Delete("/:id", manage, s.Delete)
	})

	return nil
}

// List returns a page of reports, newest first.
// Query: seen (bool), type (post|profile|page|group|comment|unknown), page, perPage.
func (s *Service) List(c *fiber.Ctx) error {
	filter := report.Filter{
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("perPage", report.DefaultPerPage),
	}

	if c.Query("seen") != "" {
		seen := c.QueryBool("seen")
		filter.Seen = &seen
	}

	if t := c.Query("type"); t != "" {
		rt, err := report.ParseType(t)
		if err != nil {
			return handler.BadRequest(c, err)
		}

		filter.Type = rt
	}

	result, err := report.List(s.db, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reports")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to list reports")
	}

	unseen, err := report.CountUnseen(s.db)
	if err != nil {
		log.Warn().Err(err).Msg("failed to count unseen reports")
	}

	return c.JSON(Page{
		Reports: s.presenter.Reports(result.Reports),
		Total:   result.Total,
		Unseen:  unseen,
		Page:    result.Page,
		PerPage: result.PerPage,
	})
}

// Get returns one report.
func (s *Service) Get(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return handler.Error(c, fiber.StatusBadRequest, "invalid report id")
	}

	r, err := report.Get(s.db, id)
	if err != nil {
		return s.fail(c, err, id)
	}

	return c.JSON(s.presenter.Report(r))
}

// MarkSeen sets the seen flag of a report.
func (s *Service) MarkSeen(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return handler.Error(c, fiber.StatusBadRequest, "invalid report id")
	}

	req := SeenRequest{Seen: true}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return handler.Error(c, fiber.StatusBadRequest, "invalid form data")
		}
	}

	if err := report.MarkSeen(s.db, id, req.Seen); err != nil {
		return s.fail(c, err, id)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Delete removes a report. The reported content stays.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return handler.Error(c, fiber.StatusBadRequest, "invalid report id")
	}

	if err := report.Delete(s.db, id); err != nil {
		return s.fail(c, err, id)
	}

	if admin, ok := auth.AdminFromContext(c); ok {
		log.Info().Str("admin", admin.Username).Uint64("report_id", id).Msg("report deleted")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) fail(c *fiber.Ctx, err error, id uint64) error {
	if errors.Is(err, report.ErrReportNotFound) {
		return handler.Error(c, fiber.StatusNotFound, err.Error())
	}

	log.Error().Err(err).Uint64("report_id", id).Msg("report operation failed")

	return handler.Error(c, fiber.StatusInternalServerError, "internal server error")
}
