package main

import (
	"context"
	"log/slog"
	"os"

	"refboard/config"
	"refboard/internal/delivery"
	"refboard/internal/delivery/http"
	"refboard/internal/delivery/http/middleware"
	"refboard/internal/delivery/http/router/handler"
	"refboard/internal/delivery/http/session"
	"refboard/internal/domain/service"
	"refboard/internal/infra/auth"
	"refboard/internal/infra/cache"
	logs "refboard/internal/infra/log"
	"refboard/internal/infra/metrics"
	"refboard/internal/infra/persistence/postgres"
	"refboard/internal/infra/qrcode"
	"refboard/internal/infra/realtime"
	"refboard/internal/usecase/impl"

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
		cache.NewPlanCache,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewPlanRepository,
			postgres.NewInvoiceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newInviteService,
			realtime.NewProfileWatcher,
		),
	)
}

// newInviteService creates the invite service with dependency injection
func newInviteService(cfg *config.Config) service.InviteService {
	if cfg.Invite == nil {
		// Use default values if not configured
		return qrcode.NewInviteService("", 256, "M")
	}

	return qrcode.NewInviteService(cfg.Invite.BaseURL, cfg.Invite.QRSize, cfg.Invite.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReferralService,
			impl.NewInvoiceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewStore,
			handler.NewReferralHandler,
			handler.NewInviteHandler,
			handler.NewBrowserHandler,
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
