package config

import (
	"time"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Site      Site
	Cache     Cache
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool    // disable recover middleware
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	CheckAliveURI  string  // health check path, not access logged if Log.DisableCheckAlive
	Session        Session // session settings
}

// Site describes the public social network the back-office administers.
type Site struct {
	// BaseURL is the public site root every derived link is built on.
	BaseURL string
	// Placeholders maps a placeholder kind (user, post, group, page, cover) to an upload path.
	Placeholders map[string]string
	// NotificationChunkSize is the row count per insert of mass notifications.
	NotificationChunkSize int
}

// Cache configures the optional redis cache in front of the settings tables.
type Cache struct {
	RedisURL string        // redis://[user:pass@]host:port/db, empty disables the cache
	Prefix   string        // key prefix, defaults to "wowonder-admin:"
	TTL      time.Duration // lifetime of a cached setting, defaults to 5m
}
