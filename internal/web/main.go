// Package web runs the JSON admin API.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/auth"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	fiberlogger "github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/logger/adapter/fiber"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler/admin/admins"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler/admin/dashboard"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler/admin/languages"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler/admin/notifications"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler/admin/reports"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler/admin/settings"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler/login"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/handler/logout"
	authmiddleware "github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/middleware/auth"
)

const (
	defaultCheckAliveURI = "/checkalive"
	metricsPath          = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	authService  *auth.Service
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	s.alive.Store(true)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and shuts the server down.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) (*Service, error) {
	if cfg == nil || db == nil {
		return nil, handler.ErrNilDependency
	}

	checkAliveURI := cfg.Webserver.CheckAliveURI
	if checkAliveURI == "" {
		checkAliveURI = defaultCheckAliveURI
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:            cfg.Log,
		CacheControlError: fiberlogger.ConfigDefault.CacheControlError,
		CheckAliveURI:     checkAliveURI,
		Identity:          authmiddleware.Identity,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(authmiddleware.Middleware)

	authService := auth.NewService(db)

	service := &Service{
		cfg:          cfg,
		App:          app,
		db:           db,
		authService:  authService,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Get(checkAliveURI, service.checkAlive)
	app.Get(metricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	if err := logout.Handler.Init(app, cfg); err != nil {
		return nil, err
	}

	// init handlers (they register their own routes with permission checks)
	for _, h := range []handler.Service{
		&login.Handler,
		&dashboard.Handler,
		&settings.Handler,
		&reports.Handler,
		&languages.Handler,
		&notifications.Handler,
		&admins.Handler,
	} {
		if err := h.Init(app, cfg, db, authService); err != nil {
			return nil, err
		}
	}

	return service, nil
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("FAIL")
	}

	return c.SendString("OK")
}
