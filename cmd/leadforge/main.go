package main

import (
	"context"
	"log/slog"
	"os"

	"leadforge/config"
	"leadforge/internal/delivery"
	"leadforge/internal/delivery/http"
	"leadforge/internal/delivery/http/middleware"
	"leadforge/internal/delivery/http/router/handler"
	"leadforge/internal/infra/auth"
	"leadforge/internal/infra/cache"
	"leadforge/internal/infra/geocoding/nominatim"
	logs "leadforge/internal/infra/log"
	"leadforge/internal/infra/osm/overpass"
	"leadforge/internal/infra/persistence/migrations"
	"leadforge/internal/infra/persistence/postgres"
	"leadforge/internal/infra/places/googleplaces"
	"leadforge/internal/infra/pubsub"
	"leadforge/internal/infra/qrcode"
	"leadforge/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			migrations.AutoMigrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewLeadRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.New,
			nominatim.New,
			overpass.New,
			googleplaces.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCategoryResolver,
			impl.NewGeocodingService,
			impl.NewEnrichmentService,
			impl.NewSearchService,
			impl.NewLeadService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSearchHandler,
			handler.NewLeadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
