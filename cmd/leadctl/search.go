package main

import (
	"context"
	"encoding/json"
	"os"

	"leadforge/config"
	"leadforge/internal/domain/entity"
	"leadforge/internal/infra/cache"
	"leadforge/internal/infra/geocoding/nominatim"
	"leadforge/internal/infra/osm/overpass"
	"leadforge/internal/infra/places/googleplaces"
	"leadforge/internal/usecase"
	"leadforge/internal/usecase/impl"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Run a place search and print the outcome as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "query",
				Aliases:  []string{"q"},
				Usage:    "Category or free-text query term",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "location",
				Aliases:  []string{"l"},
				Usage:    "Place name to geocode, e.g. \"Troy, NY\"",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "enrich",
				Usage: "Enrich results with Google Places details",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results (0 selects the configured default)",
			},
		},
		Action: runSearch,
	}
}

func runSearch(c *cli.Context) error {
	var searchUC usecase.SearchUsecase

	providers := fx.Provide(
		cache.New,
		nominatim.New,
		overpass.New,
		googleplaces.New,
		impl.NewCategoryResolver,
		impl.NewGeocodingService,
		impl.NewEnrichmentService,
		impl.NewSearchService,
	)

	return runApp(c.Context, providers, func(ctx context.Context) error {
		outcome, err := searchUC.Search(ctx, &usecase.SearchInput{
			Query:    c.String("query"),
			Location: c.String("location"),
			Enrich:   c.Bool("enrich"),
			Limit:    c.Int("limit"),
		})
		if err != nil {
			return err
		}

		if err := printJSON(outcome); err != nil {
			return err
		}

		if outcome.Status == entity.SearchStatusUpstreamError {
			return cli.Exit("search failed: "+outcome.Message, 2)
		}

		return nil
	}, &searchUC)
}

func categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List the supported category names",
		Action: func(_ *cli.Context) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			return printJSON(map[string][]string{
				"categories": impl.NewCategoryResolver(cfg).Categories(),
			})
		},
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
