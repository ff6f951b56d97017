// Package settings serves the site and marketplace settings of the admin API.
//
// Reads never fail because of the storage: a missing table or row yields the
// defaults. Writes are best effort; storage faults are logged and the handler
// answers with what can be read back.
package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/auth"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/cache"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/setting"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/sitesettings"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler"
)

const (
	// Path is the path of the settings endpoints.
	Path = handler.AdminPath + "/settings"
)

// group is a typed settings group.
type group interface {
	Load(r *setting.Resolver) error
	Save(r *setting.Resolver)
	Validate() error
}

// Value is the payload of a single raw setting.
type Value struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Service is the settings handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	site   *setting.Resolver
	market *setting.Resolver
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) error {
	if app == nil || cfg == nil || db == nil || authService == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.site = setting.NewResolver(cache.Settings(setting.NewSiteStore(db)))
	s.market = setting.NewResolver(cache.Settings(setting.NewMarketStore(db)))

	view := auth.RequirePermission(authService, auth.PermSettingsView)
	update := auth.RequirePermission(authService, auth.PermSettingsUpdate)

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, view, s.GetAll)
		router.Get("/general", view, s.get(s.site, newGeneral))
		router.Put("/general", update, s.put(s.site, newGeneral))
		router.Get("/store", view, s.get(s.market, newStore))
		router.Put("/store", update, s.put(s.market, newStore))
		router.Get("/raw/:name", view, s.GetValue)
		router.Put("/raw/:name", update, s.PutValue)
		router.Put("/:name", update, s.PutValue)
	})

	return nil
}

func newGeneral() group { return new(sitesettings.General) }

func newStore() group { return new(sitesettings.Store) }

func (s *Service) get(r *setting.Resolver, fresh func() group) fiber.Handler {
	return func(c *fiber.Ctx) error {
		g := fresh()
		if err := g.Load(r); err != nil {
			log.Error().Err(err).Msg("failed to load settings")
			return handler.Error(c, fiber.StatusInternalServerError, "failed to load settings")
		}

		return c.JSON(g)
	}
}

// put applies the payload on top of the current values, so omitted fields
// keep what is stored.
func (s *Service) put(r *setting.Resolver, fresh func() group) fiber.Handler {
	return func(c *fiber.Ctx) error {
		g := fresh()
		if err := g.Load(r); err != nil {
			log.Error().Err(err).Msg("failed to load settings")
			return handler.Error(c, fiber.StatusInternalServerError, "failed to load settings")
		}

		if err := c.BodyParser(g); err != nil {
			return handler.Error(c, fiber.StatusBadRequest, "invalid form data")
		}

		if err := g.Validate(); err != nil {
			return handler.BadRequest(c, err)
		}

		g.Save(r)

		if admin, ok := auth.AdminFromContext(c); ok {
			log.Info().Str("admin", admin.Username).Str("path", c.Path()).Msg("settings updated")
		}

		return c.JSON(g)
	}
}

// GetAll returns every stored site setting.
func (s *Service) GetAll(c *fiber.Ctx) error {
	return c.JSON(s.site.All())
}

// GetValue returns one raw site setting, null when it is not stored.
func (s *Service) GetValue(c *fiber.Ctx) error {
	return c.JSON(s.stored(c.Params("name")))
}

// PutValue writes one raw site setting and answers with what was read back,
// null when the write did not reach the store.
func (s *Service) PutValue(c *fiber.Ctx) error {
	name := c.Params("name")

	payload := new(Value)
	if err := c.BodyParser(payload); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid form data")
	}

	s.site.Set(name, payload.Value)

	return c.JSON(s.stored(name))
}

func (s *Service) stored(name string) Value {
	v := Value{Name: name}
	if stored, ok := s.site.Lookup(name); ok {
		v.Value = stored
	}

	return v
}
