package api

import (
	"context"
	"fmt"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/healthdesk/registry/auth"
	"github.com/healthdesk/registry/config"
	"github.com/healthdesk/registry/deletions"
	"github.com/healthdesk/registry/errors"
	"github.com/healthdesk/registry/logger"
	"github.com/healthdesk/registry/mailer"
	"github.com/healthdesk/registry/patients"
	"github.com/healthdesk/registry/photos"
	"github.com/healthdesk/registry/store"
)

func Start(e *echo.Echo, cfg *config.Config, log *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil {
					log.Infow("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, authenticator auth.Authenticator, log *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Skip auth for the readiness probe
	skipper := RouteSkipper([]string{"/ready"})
	authMiddleware := auth.NewAuthMiddleware(authenticator, auth.AuthMiddlewareOpts{
		Skipper: skipper,
	})

	e.Use(middleware.Recover())
	e.Use(echozap.ZapLogger(log))
	e.Use(authMiddleware)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	e.GET("/", handler.ListPatients)
	e.GET("/patients", handler.ListPatients)
	e.POST("/patients", handler.CreatePatient)
	e.DELETE("/patients/:id", handler.DeletePatient)

	return e, nil
}

func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Sugar,
			config.NewConfig,
			store.NewConfig,
			store.NewClient,
			store.NewDatabase,
			store.NewTransactionRunner,
			auth.NewConfig,
			auth.NewAuthenticator,
			photos.NewConfig,
			photos.NewObjectClient,
			photos.NewStore,
			mailer.NewConfig,
			mailer.NewSender,
			mailer.NewDispatcher,
			mailer.NewNotifier,
			deletions.NewRepositoryFactory[patients.Patient]("patients", []string{"_id", "ownerId"}),
			patients.NewRepository,
			patients.NewValidator,
			patients.NewService,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	fx.New(
		append(
			Dependencies(),
			fx.Invoke(SetReady),
			fx.Invoke(Start),
		)...,
	).Run()
}
