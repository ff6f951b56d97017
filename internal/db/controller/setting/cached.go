package setting

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheTimeout = 250 * time.Millisecond

// KV is the part of a redis client Cached needs.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cached is a read-through cache in front of a Repository.
// Cache faults are logged and the call goes to the wrapped repository, so a
// dead redis never changes what a read returns. All is never cached.
type Cached struct {
	repo   Repository
	kv     KV
	prefix string
	ttl    time.Duration
}

// NewCached returns repo behind kv. Keys are prefix + name.
func NewCached(repo Repository, kv KV, prefix string, ttl time.Duration) *Cached {
	return &Cached{repo: repo, kv: kv, prefix: prefix, ttl: ttl}
}

func (c *Cached) key(name string) string {
	return c.prefix + name
}

// Get implements Repository.
func (c *Cached) Get(name string) (string, error) {
	if name == "" {
		return "", ErrSettingNameEmpty
	}

	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	v, err := c.kv.Get(ctx, c.key(name)).Result()

	cancel()

	switch {
	case err == nil:
		return v, nil
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("setting", name).Msg("setting cache read failed")
	}

	v, err = c.repo.Get(name)
	if err != nil {
		return "", err
	}

	ctx, cancel = context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()

	if err = c.kv.Set(ctx, c.key(name), v, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("setting", name).Msg("setting cache fill failed")
	}

	return v, nil
}

// Set implements Repository. The cached entry is dropped once the write reached the repository.
func (c *Cached) Set(name string, value any) error {
	if err := c.repo.Set(name, value); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()

	if err := c.kv.Del(ctx, c.key(name)).Err(); err != nil {
		log.Warn().Err(err).Str("setting", name).Msg("setting cache invalidation failed")
	}

	return nil
}

// All implements Repository.
func (c *Cached) All() (map[string]string, error) {
	return c.repo.All()
}
