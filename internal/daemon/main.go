// Package daemon wires the database, the session storage and the web service.
package daemon

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/cache"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/dsn"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/engine"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/session"
)

const sessionTable = "admin_sessions"

// ErrConfigNil is returned when the daemon is created without configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	storage    fiber.Storage
	webService *web.Service
}

// Start serves the web service until a termination signal arrives.
func (d *Daemon) Start() error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
	}()

	d.webService.WaitShutdown()

	err := <-errCh

	d.close()

	return err
}

func (d *Daemon) close() {
	if d.storage != nil {
		if err := d.storage.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close session storage")
		}
	}

	if err := cache.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close redis cache")
	}

	if sqlDB, err := d.db.DB(); err == nil {
		if err = sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}
}

// New opens the database, migrates and seeds it, and builds the web service.
// The Wo_* tables are only created in dev mode; in production they belong to
// the social network.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	db, err := engine.Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = engine.Migrate(db, cfg.DevMode); err != nil {
		return nil, err
	}

	if err = seed(cfg, db); err != nil {
		return nil, err
	}

	if err = cache.Init(cfg.Cache); err != nil {
		return nil, err
	}

	storage := sessionStorage(cfg)
	session.Init(storage)

	webService, err := web.New(cfg, db)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		storage:    storage,
		webService: webService,
	}, nil
}

// sessionStorage keeps sessions in the configured database. SQLite installs
// keep them in memory.
func sessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg),
			Table:         sessionTable,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Postgres(cfg),
			Table:         sessionTable,
		})
	default:
		log.Warn().Str("engine", cfg.DB.GormEngine).Msg("sessions are kept in memory")
		return nil
	}
}
