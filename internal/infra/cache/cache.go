// Package cache provides the shared lookup cache backed by redis or badger.
package cache

import (
	"context"
	"log/slog"
	"time"

	"leadforge/config"
	"leadforge/internal/domain/constants"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"

	"go.uber.org/fx"
)

// Params holds dependencies for the cache, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// closer is implemented by every backend.
type closer interface {
	Close() error
}

// New builds the configured cache backend and closes it on shutdown.
func New(params Params) (service.Cache, error) {
	cfg := params.Config.Cache
	if cfg == nil {
		cfg = &config.CacheConfig{Provider: constants.CacheProviderBadger}
		cfg.Badger.InMemory = true
	}

	var (
		backend service.Cache
		err     error
	)

	switch cfg.Provider {
	case constants.CacheProviderRedis:
		backend, err = NewRedisCache(cfg.Redis.URL)
	case constants.CacheProviderBadger, "":
		backend, err = NewBadgerCache(cfg.Badger.Path, cfg.Badger.InMemory, params.Logger)
	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Cache initialized",
		slog.String("provider", cfg.Provider),
		slog.String("key_prefix", cfg.KeyPrefix),
	)

	if c, ok := backend.(closer); ok {
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				params.Logger.Info("Closing cache")

				return c.Close()
			},
		})
	}

	return WithPrefix(backend, cfg.KeyPrefix), nil
}

// prefixedCache namespaces every key of the wrapped cache.
type prefixedCache struct {
	next   service.Cache
	prefix string
}

// WithPrefix returns a cache that prepends prefix to every key. An empty prefix returns next unchanged.
func WithPrefix(next service.Cache, prefix string) service.Cache {
	if prefix == "" {
		return next
	}

	return &prefixedCache{next: next, prefix: prefix}
}

func (c *prefixedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.next.Get(ctx, c.prefix+key)
}

func (c *prefixedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.next.Set(ctx, c.prefix+key, value, ttl)
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
