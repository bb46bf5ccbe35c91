package main

import (
	"context"
	"log/slog"
	"os"

	"prepcat/config"
	"prepcat/internal/delivery"
	"prepcat/internal/delivery/http"
	httpmw "prepcat/internal/delivery/http/middleware"
	"prepcat/internal/delivery/http/router/handler"
	deliverymw "prepcat/internal/delivery/middleware"
	"prepcat/internal/domain/repository"
	logs "prepcat/internal/infra/log"
	"prepcat/internal/infra/persistence/memory"
	"prepcat/internal/infra/persistence/snapshot"
	"prepcat/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type startCatalogParams struct {
	fx.In
	fx.Lifecycle

	Repo    repository.CatalogRepository
	Store   repository.CatalogStore
	Watcher *snapshot.Watcher
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewStore,
			snapshot.NewRepository,
			snapshot.NewWatcher,
			func(store *memory.Store) repository.CatalogStore { return store },
			func(store *memory.Store) repository.CatalogCommander { return store },
			func(repo *snapshot.Repository) repository.CatalogRepository { return repo },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewProductService,
			impl.NewTagService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymw.NewRequestIDMiddleware,
			httpmw.NewErrorMiddleware,
			newLoggerMiddleware,
		),
	)
}

// newLoggerMiddleware creates the request logger with the debug flag from config
func newLoggerMiddleware(cfg *config.Config, logger *slog.Logger) *httpmw.LoggerMiddleware {
	return httpmw.NewLoggerMiddleware(logger, cfg.Env.Debug)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewCatalogHandler,
			handler.NewSessionHandler,
			handler.NewProductHandler,
			handler.NewMasterItemHandler,
			handler.NewTagHandler,
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

// startCatalog performs the initial snapshot load and starts the file watcher.
func startCatalog(params startCatalogParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			snap, err := params.Repo.LoadSnapshot(ctx)
			if err != nil {
				return err
			}
			params.Store.Replace(snap)

			return params.Watcher.Start(ctx)
		},
		OnStop: params.Watcher.Stop,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
