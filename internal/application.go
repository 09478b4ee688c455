package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-backend/internal/config"
	"github.com/rocketscienceinc/tictactoe-backend/internal/repository"
	"github.com/rocketscienceinc/tictactoe-backend/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-backend/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-backend/transport/rest"
)

// storageMaxFailures is how many health checks in a row a storage may fail
// before the application stops.
const storageMaxFailures = 3

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}
	redisAddrString := conf.Redis.GetRedisAddr()

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	postgresStorage, err := storage.NewPostgresStorage(ctx, conf.Postgres.URL, conf.Postgres.MaxConns)
	if err != nil {
		return fmt.Errorf("could not connect to postgres storage: %w", err)
	}
	defer postgresStorage.Close()

	if err = postgresStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init postgres storage: %w", err)
	}

	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Redis.GameTTL)
	statsRepo := repository.NewStatsRepository(postgresStorage.Connection)
	gameManager := usecase.NewGameManager(logger, gameRepo, statsRepo, usecase.BoardLimits{
		MinSize: conf.Board.MinSize,
		MaxSize: conf.Board.MaxSize,
	})

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return rest.New(logger, conf.HTTPPort, conf.CORSOrigins, gameManager).Start(gCtx)
	})

	// a lost storage cancels gCtx, which shuts the server down
	g.Go(func() error {
		return storage.Watch(gCtx, logger, conf.HealthInterval, storageMaxFailures, redisStorage, postgresStorage)
	})

	if err = g.Wait(); err != nil {
		return fmt.Errorf("application stopped: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
