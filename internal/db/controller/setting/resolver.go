package setting

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

// Resolver reads and writes settings without ever failing.
// A missing setting or a storage fault on read yields the caller's default,
// a fault on write is logged and dropped. A nil Resolver behaves like an
// empty, unavailable store.
type Resolver struct {
	repo Repository
}

// NewResolver returns a Resolver over repo.
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Repository returns the wrapped repository.
func (r *Resolver) Repository() Repository {
	if r == nil {
		return nil
	}

	return r.repo
}

// Lookup returns the stored value and whether it was found.
func (r *Resolver) Lookup(name string) (string, bool) {
	if r == nil || r.repo == nil {
		return "", false
	}

	v, err := r.repo.Get(name)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			log.Debug().Str("setting", name).Msg("setting not set, using default")
		} else {
			log.Warn().Err(err).Str("setting", name).Msg("setting read failed, using default")
		}

		return "", false
	}

	return v, true
}

// Get returns the stored value of name or def.
func (r *Resolver) Get(name, def string) string {
	if v, ok := r.Lookup(name); ok {
		return v
	}

	return def
}

// Value returns the stored string of name, or def unchanged when it is absent.
func (r *Resolver) Value(name string, def any) any {
	if v, ok := r.Lookup(name); ok {
		return v
	}

	return def
}

// Bool reads a "1"/"0" flag.
func (r *Resolver) Bool(name string, def bool) bool {
	if v, ok := r.Lookup(name); ok {
		return legacy.ParseFlag(v).Bool()
	}

	return def
}

// Int reads an integer setting. Unparsable values yield def.
func (r *Resolver) Int(name string, def int) int {
	v, ok := r.Lookup(name)
	if !ok {
		return def
	}

	i, err := cast.ToIntE(strings.TrimSpace(v))
	if err != nil {
		log.Warn().Err(err).Str("setting", name).Str("value", v).Msg("setting is not an integer, using default")

		return def
	}

	return i
}

// Float reads a decimal setting. Unparsable values yield def.
func (r *Resolver) Float(name string, def float64) float64 {
	v, ok := r.Lookup(name)
	if !ok {
		return def
	}

	f, err := cast.ToFloat64E(strings.TrimSpace(v))
	if err != nil {
		log.Warn().Err(err).Str("setting", name).Str("value", v).Msg("setting is not a number, using default")

		return def
	}

	return f
}

// Set upserts name. Faults are logged and swallowed.
func (r *Resolver) Set(name string, value any) {
	if r == nil || r.repo == nil {
		log.Warn().Str("setting", name).Msg("setting write dropped, no repository")

		return
	}

	if err := r.repo.Set(name, value); err != nil {
		log.Warn().Err(err).Str("setting", name).Msg("setting write failed")
	}
}

// All returns every stored setting, or an empty map on a storage fault.
func (r *Resolver) All() map[string]string {
	if r == nil || r.repo == nil {
		return map[string]string{}
	}

	values, err := r.repo.All()
	if err != nil {
		log.Warn().Err(err).Msg("settings listing failed")

		return map[string]string{}
	}

	return values
}
