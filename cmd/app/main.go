package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"haul/cmd"
	httpin "haul/internal/adapters/in/http"
	"haul/internal/adapters/out/postgres"
	"haul/internal/adapters/out/rabbitmq"
	"haul/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
)

// @title       Haul API
// @version     1.0
// @description Orders, restaurants and accounts of the haul delivery backend.
// @BasePath    /
// @securityDefinitions.apikey bearerAuth
// @in   header
// @name Authorization
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	} else if err != nil {
		logger.Warn("no .env file, reading configuration from the environment")
	}

	configs, err := cmd.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	gormDB, err := postgres.Open(configs.Postgres())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	var redisClient *redis.Client
	if configs.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		defer redisClient.Close()
	} else {
		logger.Warn("REDIS_ADDR is empty, restaurant managers are not cached")
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	if err != nil {
		return err
	}

	manager := jobs.NewJobManager()
	if configs.RabbitMQURL != "" {
		conn, err := rabbitmq.Connect(configs.RabbitMQURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		relay, err := app.CreateOutboxRelayJob(conn)
		if err != nil {
			return err
		}
		manager = jobs.NewJobManager(relay)
	} else {
		logger.Warn("RABBITMQ_URL is empty, order events stay in the outbox")
	}

	if err = manager.StartAll(); err != nil {
		return err
	}
	defer manager.StopAll()

	e := httpin.NewEcho(app.CreateHTTPServer(), app.Tokens(), sqlDB, logger)
	e.Logger.SetLevel(log.INFO)

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
