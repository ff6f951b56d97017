// Package engine opens and migrates the database of the configured gorm engine.
package engine

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/dsn"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/logger/adapter/gormlogger"
)

var (
	// ErrConfigNil is returned when no configuration is given.
	ErrConfigNil = errors.New("config is nil")
	// ErrUnsupportedEngine is returned for an unknown DB.GormEngine.
	ErrUnsupportedEngine = errors.New("unsupported gorm engine")
)

// Dialector returns the gorm dialector of cfg.DB.GormEngine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return mysql.Open(dsn.MySQL(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Postgres(cfg)), nil
	case config.EngineSQLite:
		return sqlite.Open(dsn.SQLite(cfg)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEngine, cfg.DB.GormEngine)
	}
}

// Open connects to the configured database. Queries are logged through zerolog.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(cfg.Log.SQL),
		// the Wo_* tables are owned by the PHP application and carry no foreign keys
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return db, nil
}

// AdminModels are the tables owned by the back-office.
func AdminModels() []any {
	return []any{
		&models.AdminPermission{},
		&models.AdminRole{},
		&models.AdminRolePermission{},
		&models.AdminUser{},
		&models.StoreSetting{},
		&models.Language{},
		&models.LanguageKey{},
	}
}

// LegacyModels are the tables of the social network.
func LegacyModels() []any {
	return []any{
		&models.Setting{},
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Group{},
		&models.GroupMember{},
		&models.Page{},
		&models.PageLike{},
		&models.Report{},
		&models.Notification{},
	}
}

// Migrate creates or updates the back-office tables. With legacy it also
// creates the social network tables, which is meant for fresh and dev installs;
// production databases already have them.
func Migrate(db *gorm.DB, legacy bool) error {
	if db == nil {
		return errors.New("database connection is nil") //nolint:err113
	}

	if err := db.AutoMigrate(AdminModels()...); err != nil {
		return fmt.Errorf("failed to migrate admin tables: %w", err)
	}

	if !legacy {
		return nil
	}

	if err := db.AutoMigrate(LegacyModels()...); err != nil {
		return fmt.Errorf("failed to migrate legacy tables: %w", err)
	}

	return nil
}
