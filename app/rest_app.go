package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gthulhu/priosim/config"
	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/migration"
	"github.com/Gthulhu/priosim/pkg/logger"
	"github.com/Gthulhu/priosim/rest"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultServerHost = ":8080"

func NewRestApp(configName string, configDirPath string) (*fx.App, error) {
	handlerModule, err := HandlerModule(configName, configDirPath)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		handlerModule,
		fx.Invoke(migration.RunMongoMigration),
		fx.Invoke(CloseRepoOnStop),
		fx.Invoke(StartRestApp),
	)
	return app, app.Err()
}

// NewEngine builds the echo engine with every route registered.
func NewEngine(handler *rest.Handler) *echo.Echo {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	handler.SetupRoutes(engine)
	return engine
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	engine := NewEngine(handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = defaultServerHost
			}
			go func() {
				logger.Logger(ctx).Info().Msgf("starting rest server on %s", serverHost)
				if err := engine.Start(serverHost); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Logger(ctx).Fatal().Err(err).Msgf("start rest server fail on %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			return engine.Shutdown(ctx)
		},
	})

	return nil
}

// CloseRepoOnStop releases the repository connection when the app stops.
func CloseRepoOnStop(lc fx.Lifecycle, repo domain.Repository) {
	closer, ok := repo.(interface{ Close(context.Context) error })
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: closer.Close,
	})
}
