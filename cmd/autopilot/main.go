package main

import (
	"context"
	"log/slog"
	"os"

	"autopilot/config"
	"autopilot/internal/delivery"
	"autopilot/internal/delivery/http"
	"autopilot/internal/delivery/http/middleware"
	"autopilot/internal/delivery/http/router/handler"
	"autopilot/internal/infra/clover"
	logs "autopilot/internal/infra/log"
	"autopilot/internal/infra/persistence/postgres"
	"autopilot/internal/infra/retell"
	"autopilot/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewMerchantRepository,
			postgres.NewCustomerRepository,
			postgres.NewAutomationLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clover.NewClient,
			retell.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOAuthService,
			impl.NewDashboardService,
			impl.NewCustomerService,
			impl.NewCommunicationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOAuthHandler,
			handler.NewDashboardHandler,
			handler.NewCustomerHandler,
			handler.NewCommunicationHandler,
			handler.NewSessionHandler,
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
				os.Exit(1)
			}
		}()
	}
}
