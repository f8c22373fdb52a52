package main

import (
	"context"
	"fmt"
	"os"

	"leadforge/config"
	logs "leadforge/internal/infra/log"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "leadctl",
		Usage: "Operator tooling for the leadforge search pipeline",
		Commands: []*cli.Command{
			searchCommand(),
			categoriesCommand(),
			migrateCommand(),
		},
	}
}

// runApp starts a short-lived fx graph, runs fn and stops the graph again.
// targets are populated before fn is called.
func runApp(ctx context.Context, providers fx.Option, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.NewStderr,
		),
		providers,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}

	runErr := fn(ctx)

	stopErr := app.Stop(context.WithoutCancel(ctx))
	if runErr != nil {
		return runErr
	}

	return stopErr
}
