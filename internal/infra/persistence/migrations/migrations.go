// Package migrations embeds the postgres schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"

	"leadforge/config"
	"leadforge/internal/errors"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var embedded embed.FS

// Status is the applied state of one migration.
type Status struct {
	Version int64
	Path    string
	Applied bool
}

// Migrator runs the embedded migrations against one database.
type Migrator struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// New builds a Migrator for db.
func New(db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	fsys, err := fs.Sub(embedded, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create goose provider")
	}

	return &Migrator{provider: provider, logger: logger}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	for _, result := range results {
		m.logResult(ctx, result)
	}
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}
	if len(results) == 0 {
		m.logger.InfoContext(ctx, "Schema is up to date")
	}

	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if result != nil {
		m.logResult(ctx, result)
	}
	if errors.Is(err, goose.ErrNoNextVersion) {
		m.logger.InfoContext(ctx, "No migration to roll back")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}

	return nil
}

// Status lists every known migration in version order.
func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	states, err := m.provider.Status(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migration status")
	}

	out := make([]Status, 0, len(states))
	for _, state := range states {
		out = append(out, Status{
			Version: state.Source.Version,
			Path:    state.Source.Path,
			Applied: state.State == goose.StateApplied,
		})
	}

	return out, nil
}

func (m *Migrator) logResult(ctx context.Context, result *goose.MigrationResult) {
	attrs := []any{
		slog.Int64("version", result.Source.Version),
		slog.String("direction", result.Direction),
		slog.Duration("duration", result.Duration),
	}
	if result.Error != nil {
		m.logger.ErrorContext(ctx, "Migration failed", append(attrs, slog.Any("error", result.Error))...)

		return
	}
	m.logger.InfoContext(ctx, "Migration applied", attrs...)
}

// AutoMigrateParams are the dependencies of AutoMigrate.
type AutoMigrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// AutoMigrate applies pending migrations on start when migrate.autoMigrate is set.
func AutoMigrate(params AutoMigrateParams) {
	if params.Config.Migrate == nil || !params.Config.Migrate.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sqlDB, err := params.DB.DB()
			if err != nil {
				return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
			}

			migrator, err := New(sqlDB, params.Logger)
			if err != nil {
				return err
			}

			return migrator.Up(ctx)
		},
	})
}
