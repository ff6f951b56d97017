// Package cache holds the optional redis client put in front of the settings tables.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/setting"
)

const pingTimeout = 5 * time.Second

// ErrConnect is returned by Init when redis does not answer.
var ErrConnect = errors.New("failed to connect to redis")

var (
	client *redis.Client
	prefix string
	ttl    time.Duration
)

// Init connects to cfg.RedisURL. An empty URL leaves the cache disabled.
func Init(cfg config.Cache) error {
	if cfg.RedisURL == "" {
		log.Info().Msg("redis cache disabled")

		return nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to parse redis url: %w", err)
	}

	c := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err = c.Ping(ctx).Err(); err != nil {
		_ = c.Close()

		return fmt.Errorf("%w: %w", ErrConnect, err)
	}

	client, prefix, ttl = c, cfg.Prefix, cfg.TTL

	log.Info().Str("addr", opt.Addr).Dur("ttl", ttl).Msg("redis cache enabled")

	return nil
}

// Enabled reports whether Init connected.
func Enabled() bool {
	return client != nil
}

// Close disconnects the client, if any.
func Close() error {
	if client == nil {
		return nil
	}

	err := client.Close()
	client = nil

	return err //nolint: wrapcheck
}

// Settings returns store behind the cache, or store itself when the cache is disabled.
func Settings(store *setting.Store) setting.Repository {
	if client == nil {
		return store
	}

	return setting.NewCached(store, client, prefix+store.Table()+":", ttl)
}
