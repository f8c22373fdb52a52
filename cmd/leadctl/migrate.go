package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"leadforge/internal/errors"
	"leadforge/internal/infra/persistence/migrations"
	"leadforge/internal/infra/persistence/postgres"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:      "migrate",
		Usage:     "Apply, roll back or inspect database migrations",
		ArgsUsage: "[up|down|status]",
		Action:    runMigrate,
	}
}

func runMigrate(c *cli.Context) error {
	direction := c.Args().First()
	if direction == "" {
		direction = "up"
	}
	switch direction {
	case "up", "down", "status":
	default:
		return cli.Exit(fmt.Sprintf("unknown migrate direction %q", direction), 2)
	}

	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	return runApp(c.Context, fx.Provide(postgres.New), func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
		}

		migrator, err := migrations.New(sqlDB, logger)
		if err != nil {
			return err
		}

		switch direction {
		case "up":
			return migrator.Up(ctx)
		case "down":
			return migrator.Down(ctx)
		default:
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return err
			}
			printStatuses(statuses)

			return nil
		}
	}, &db, &logger)
}

func printStatuses(statuses []migrations.Status) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tAPPLIED\tPATH")
	for _, status := range statuses {
		fmt.Fprintf(w, "%d\t%t\t%s\n", status.Version, status.Applied, status.Path)
	}
	_ = w.Flush()
}
