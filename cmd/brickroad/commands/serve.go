package commands

import (
	"time"

	"github.com/brickroad/brickroad/internal/pkg/health"
	"github.com/brickroad/brickroad/internal/pkg/logger"
	"github.com/brickroad/brickroad/internal/pkg/middleware"
	nrpkg "github.com/brickroad/brickroad/internal/pkg/newrelic"
	"github.com/brickroad/brickroad/internal/pkg/server"
	"github.com/brickroad/brickroad/services/directions/handler"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the directions web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	app, err := newApplication(configs, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer app.Close()

	app.logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	e := newEcho(app)

	gs := server.NewGracefulServer(e, app.logger, server.Config{
		Host:            configs.Server.Host,
		Port:            configs.Server.Port,
		ReadTimeout:     time.Duration(configs.Server.ReadTimeout) * time.Second,
		WriteTimeout:    time.Duration(configs.Server.WriteTimeout) * time.Second,
		ShutdownTimeout: time.Duration(configs.Server.ShutdownTimeout) * time.Second,
	})
	return gs.Run(cmd.Context())
}

// newEcho builds the router with middlewares, health endpoints and routes
func newEcho(app *application) *echo.Echo {
	e := echo.New()

	e.Use(nrpkg.Middleware(app.nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(app.logger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(app.logger))

	checkers := map[string]health.HealthChecker{}
	if app.redisClient != nil {
		checkers["redis"] = health.CheckerFunc(app.redisClient.Ping)
	}
	health.RegisterHealthEndpoints(e, app.configs.App.Name, checkers)

	var directionsMiddleware []echo.MiddlewareFunc
	if app.configs.RateLimit.Enabled && app.redisClient != nil {
		directionsMiddleware = append(directionsMiddleware, middleware.IPRateLimiter(
			app.configs.RateLimit.Requests,
			time.Duration(app.configs.RateLimit.Period)*time.Second,
			app.redisClient.GetClient(),
		))
	}

	handler.NewHTTPHandler(app.directionsUC, app.configs).RegisterRoutes(e, directionsMiddleware...)
	return e
}
