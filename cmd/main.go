package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"pizza-orders/internal/application"
	"pizza-orders/internal/config"
	"pizza-orders/internal/kafka"
	"pizza-orders/internal/logger"
	"pizza-orders/internal/migrate"
	"pizza-orders/internal/presentation"
	"pizza-orders/internal/repository"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.LOG_LEVEL)

	// Store: Postgres when DB_STRING is set, the JSON file otherwise.
	var repo repository.OrderRepo
	if cfg.DB_STRING != "" {
		if err := migrate.Up(cfg.DB_STRING); err != nil {
			logger.Warn("migrations failed", "err", err)
			os.Exit(1)
		}

		pool, err := pgxpool.New(context.Background(), cfg.DB_STRING)
		if err != nil {
			logger.Warn("pgxpool new failed", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			logger.Warn("db ping failed", "err", err)
			os.Exit(1)
		}
		logger.Info("db connected")

		repo = repository.NewPostgresStore(pool)
	} else {
		store, err := repository.NewFileStore(cfg.DATA_FILE)
		if err != nil {
			logger.Warn("data file unreadable", "err", err, "path", cfg.DATA_FILE)
			os.Exit(1)
		}
		logger.Info("using file store", "path", cfg.DATA_FILE)

		repo = store
	}

	// Kafka producer for order lifecycle events, only when brokers are set.
	// events stays a nil interface otherwise and publishing is skipped.
	var events application.EventPublisher
	if cfg.KAFKA_BROKERS != "" {
		prod := kafka.NewProducer(cfg.KAFKA_BROKERS, cfg.KAFKA_TOPIC)
		defer prod.Close()
		events = prod
		logger.Info("kafka producer ready", "topic", cfg.KAFKA_TOPIC)
	}

	svc := application.NewOrdersService(repo, events)
	r := presentation.NewRouter(svc)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP_PORT,
		Handler: r,
	}

	go func() {
		logger.Info("starting http", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("http server crashed", "err", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown failed", "err", err)
	}
}
