// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
)

// defaultSQLitePath is used when DB.Path is empty.
const defaultSQLitePath = "go-wowonder-admin.db"

// Create builds the Data Source Name of the configured engine.
func Create(dbCfg *config.Config) string {
	switch dbCfg.DB.GormEngine {
	case config.EnginePostgres:
		return Postgres(dbCfg)
	case config.EngineSQLite:
		return SQLite(dbCfg)
	default:
		return MySQL(dbCfg)
	}
}

// MySQL builds a go-sql-driver DSN.
func MySQL(dbCfg *config.Config) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Host,
		dbCfg.DB.Port,
		dbCfg.DB.Name,
		dbCfg.DB.Extras,
	)

	return out
}

// Postgres builds a postgres:// URL. Extras is appended as query string,
// sslmode defaults to disable.
func Postgres(dbCfg *config.Config) string {
	query, err := url.ParseQuery(dbCfg.DB.Extras)
	if err != nil {
		query = url.Values{}
	}

	if query.Get("sslmode") == "" {
		query.Set("sslmode", "disable")
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(dbCfg.DB.User, dbCfg.DB.Password),
		Host:     net.JoinHostPort(dbCfg.DB.Host, strconv.Itoa(dbCfg.DB.Port)),
		Path:     "/" + dbCfg.DB.Name,
		RawQuery: query.Encode(),
	}

	return u.String()
}

// SQLite returns the database file path.
func SQLite(dbCfg *config.Config) string {
	if dbCfg.DB.Path == "" {
		return defaultSQLitePath
	}

	return dbCfg.DB.Path
}
