package commands

import (
	"context"
	"io"
	"time"

	"github.com/brickroad/brickroad/internal/pkg/config"
	"github.com/brickroad/brickroad/internal/pkg/database"
	"github.com/brickroad/brickroad/internal/pkg/logger"
	"github.com/brickroad/brickroad/internal/pkg/models"
	nrpkg "github.com/brickroad/brickroad/internal/pkg/newrelic"
	"github.com/brickroad/brickroad/internal/pkg/server"
	"github.com/brickroad/brickroad/services/directions"
	"github.com/brickroad/brickroad/services/directions/gateway"
	"github.com/brickroad/brickroad/services/directions/repository"
	"github.com/brickroad/brickroad/services/directions/usecase"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// application holds the wired components shared by every command
type application struct {
	configs      *models.Config
	nrApp        *newrelic.Application
	logger       *logger.ZapLogger
	redisClient  *database.RedisClient
	directionsUC directions.DirectionsUC
	shutdown     *server.ShutdownManager
}

// newApplication wires config, observability, the optional Redis connection
// and the directions pipeline. console receives the JSON log stream.
func newApplication(configs *models.Config, console io.Writer) (*application, error) {
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			logger.Warn("New Relic connection timeout", logger.Err(err))
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp, console)
	if err != nil {
		return nil, err
	}
	logger.SetGlobalLogger(zapLogger)

	app := &application{
		configs:  configs,
		nrApp:    nrApp,
		logger:   zapLogger,
		shutdown: server.NewShutdownManager(zapLogger),
	}

	app.shutdown.Register(func(ctx context.Context) error {
		return zapLogger.Close()
	})
	if nrApp != nil {
		app.shutdown.Register(func(ctx context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if config.NeedsRedis(configs) {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Warn("Redis unavailable, continuing without cache and rate limit", logger.Err(err))
		} else {
			app.redisClient = redisClient
			app.shutdown.Register(func(ctx context.Context) error {
				return redisClient.Close()
			})
		}
	}

	var directionsRepo directions.DirectionsRepo
	if configs.Cache.Enabled && app.redisClient != nil {
		directionsRepo = repository.NewDirectionsRepository(app.redisClient, time.Duration(configs.Cache.TTL)*time.Second)
	}

	directionsGW := gateway.NewDirectionsGW(configs)
	app.directionsUC = usecase.NewDirectionsUC(directionsGW, directionsRepo)

	return app, nil
}

// Close releases every registered component
func (a *application) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.shutdown.Shutdown(ctx)
}
