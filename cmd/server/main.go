package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/couleurbar/theke-system/internal/api"
	"github.com/couleurbar/theke-system/internal/infrastructure/config"
	mongodb "github.com/couleurbar/theke-system/internal/infrastructure/db/mongo"
	redisdb "github.com/couleurbar/theke-system/internal/infrastructure/db/redis"
	"github.com/couleurbar/theke-system/internal/infrastructure/queue"
	"github.com/couleurbar/theke-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	log.Info().Str("env", cfg.Env).Msg("starting theke-system")

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	settler := queue.NewDispatcher(cfg.SettlementWorkers, log)
	settler.Start(workerCtx)
	log.Info().Int("workers", cfg.SettlementWorkers).Msg("settlement dispatcher started")

	e := api.NewRouter(cfg, db, rdb, settler, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server forced to shutdown")
	}
	workerCancel()

	log.Info().Msg("server exited")
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexers := []interface {
		EnsureIndexes(context.Context) error
	}{
		mongodb.NewMemberRepository(db),
		mongodb.NewSessionRepository(db),
		mongodb.NewProductRepository(db),
		mongodb.NewOrderRepository(db),
		mongodb.NewPaymentRepository(db),
	}
	for _, idx := range indexers {
		if err := idx.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
