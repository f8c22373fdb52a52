package cache

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"leadforge/internal/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

// BadgerCache stores entries in an embedded badger database using per-entry TTLs.
type BadgerCache struct {
	db *badger.DB
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// NewBadgerCache opens a badger database at path, or purely in memory when inMemory is set.
func NewBadgerCache(path string, inMemory bool, logger *slog.Logger) (*BadgerCache, error) {
	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if path == "" {
			return nil, errors.New("badger path not configured")
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create badger directory %s", path)
		}
		opts = badger.DefaultOptions(path)
	}

	if logger == nil {
		logger = slog.Default()
	}
	opts.Logger = &badgerLoggerAdapter{logger: logger.With(slog.String("component", "badger"))}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open badger")
	}

	return &BadgerCache{db: db}, nil
}

func (c *BadgerCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "badger get %s", key)
	}

	return value, true, nil
}

func (c *BadgerCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := badger.NewEntry([]byte(key), value)
	if ttl > 0 {
		entry = entry.WithTTL(ttl)
	}

	if err := c.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(entry)
	}); err != nil {
		return errors.Wrapf(err, "badger set %s", key)
	}

	return nil
}

// Close flushes and closes the database.
func (c *BadgerCache) Close() error {
	return c.db.Close()
}
