package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/CaioSeniuk/AutoManage-Volvo/config"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/delivery"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/delivery/http"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/delivery/http/middleware"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/delivery/http/router/handler"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/infra/auth"
	logs "github.com/CaioSeniuk/AutoManage-Volvo/internal/infra/log"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/infra/persistence/postgres"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewVehicleRepository,
			postgres.NewOwnerRepository,
			postgres.NewSaleRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewVehicleService,
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
			handler.NewAuthHandler,
			handler.NewVehicleHandler,
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
