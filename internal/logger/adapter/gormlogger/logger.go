// Package gormlogger routes gorm's query and driver logging into zerolog.
package gormlogger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlog "gorm.io/gorm/logger"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/logger"
)

// Logger implements gorm's logger.Interface on top of a zerolog logger.
type Logger struct {
	zl            zerolog.Logger
	level         gormlog.LogLevel
	slowThreshold time.Duration
	logQueries    bool
}

// New returns a gorm logger writing to the global zerolog logger.
func New(cfg logger.SQL) *Logger {
	return NewWithLogger(log.Logger, cfg)
}

// NewWithLogger returns a gorm logger writing to zl.
func NewWithLogger(zl zerolog.Logger, cfg logger.SQL) *Logger {
	return &Logger{
		zl:            zl.With().Str("component", "gorm").Logger(),
		level:         gormlog.Warn,
		slowThreshold: cfg.SlowThreshold,
		logQueries:    cfg.LogQueries,
	}
}

// LogMode implements gormlog.Interface.
func (l *Logger) LogMode(level gormlog.LogLevel) gormlog.Interface {
	c := *l
	c.level = level

	return &c
}

// Info implements gormlog.Interface.
func (l *Logger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gormlog.Info {
		l.zl.Info().Msg(fmt.Sprintf(msg, args...))
	}
}

// Warn implements gormlog.Interface.
func (l *Logger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gormlog.Warn {
		l.zl.Warn().Msg(fmt.Sprintf(msg, args...))
	}
}

// Error implements gormlog.Interface.
func (l *Logger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gormlog.Error {
		l.zl.Error().Msg(fmt.Sprintf(msg, args...))
	}
}

// Trace implements gormlog.Interface.
// Record-not-found is an expected outcome for lookups and is never reported as an error.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlog.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlog.Error:
		query, rows := fc()
		l.zl.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", query).Msg("query failed")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlog.Warn:
		query, rows := fc()
		l.zl.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", query).Msg("slow query")
	case l.logQueries:
		query, rows := fc()
		l.zl.Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", query).Msg("query")
	}
}
