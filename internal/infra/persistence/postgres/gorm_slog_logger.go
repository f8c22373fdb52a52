package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"leadforge/config"
	deliverycontext "leadforge/internal/delivery/context"
	"leadforge/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const gormSlowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through the request-scoped slog logger
// so SQL lines carry the request and user ids.
//
// Missing rows and unique violations are expected outcomes here: lookups
// map them to not-found errors and duplicate saves to LEAD_ALREADY_SAVED.
// Both are logged at debug instead of error.
type gormSlogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{base: base, level: level, slowThreshold: gormSlowQueryThreshold}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < min {
		return
	}
	l.loggerFor(ctx).LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	sql, rows := sqlAndRows()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)
	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// classify picks the level and message for one statement; ok is false when
// nothing should be logged.
func (l *gormSlogLogger) classify(err error, elapsed time.Duration) (level slog.Level, msg string, extra []slog.Attr, ok bool) {
	switch {
	case err != nil && (errors.Is(err, gorm.ErrRecordNotFound) || isUniqueConstraintViolation(err)):
		if l.level < logger.Info {
			return 0, "", nil, false
		}

		return slog.LevelDebug, "GORM query rejected", []slog.Attr{slog.String("error", err.Error())}, true
	case err != nil:
		if l.level < logger.Error {
			return 0, "", nil, false
		}

		return slog.LevelError, "GORM query failed", []slog.Attr{slog.String("error", err.Error())}, true
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		return slog.LevelWarn, "GORM slow query", []slog.Attr{slog.Duration("slowThreshold", l.slowThreshold)}, true
	case l.level >= logger.Info:
		return slog.LevelDebug, "GORM query", nil, true
	default:
		return 0, "", nil, false
	}
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
