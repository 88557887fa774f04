package main

import (
	"context"
	"log/slog"
	"os"

	"greenscore/config"
	"greenscore/internal/delivery"
	"greenscore/internal/delivery/api"
	"greenscore/internal/delivery/api/router/handler"
	"greenscore/internal/domain/service"
	"greenscore/internal/infra/idempotency"
	logs "greenscore/internal/infra/log"
	"greenscore/internal/infra/metrics"
	"greenscore/internal/infra/persistence/gormstore"
	"greenscore/internal/infra/pubsub"
	"greenscore/internal/infra/qrcode"
	"greenscore/internal/usecase/impl"

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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		gormstore.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			gormstore.NewUserRepository,
			gormstore.NewProductRepository,
			gormstore.NewPurchaseRepository,
			gormstore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		idempotency.Module,
		fx.Provide(
			qrcode.New,
			newLedgerMetrics,
		),
	)
}

// newLedgerMetrics exposes the Prometheus instruments to the use cases
func newLedgerMetrics(m *metrics.Metrics) service.LedgerMetrics {
	return m
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProductService,
			impl.NewPurchaseService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewPurchaseHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
