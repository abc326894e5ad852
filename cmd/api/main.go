package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"example.com/extracurricular/internal/api"
	"example.com/extracurricular/internal/catalog"
	"example.com/extracurricular/internal/config"
	"example.com/extracurricular/internal/events"
	"example.com/extracurricular/internal/logger"
	"example.com/extracurricular/internal/store"
	httptransport "example.com/extracurricular/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zlog.Sync() }()

	catalogStore := store.NewMemoryStore()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.EventsEnabled {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.EventsTopic)
		zlog.Info("roster event publishing enabled",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.EventsTopic),
		)
	}
	defer func() { _ = publisher.Close() }()

	service := catalog.NewService(catalogStore, publisher, zlog)
	handler := api.NewHandler(service, cfg.StaticDir)

	router := chi.NewRouter()
	router.Use(api.RequestID)
	router.Use(api.AccessLog(zlog))
	router.Use(api.CollectMetrics)
	router.Use(chimiddleware.Recoverer)
	handler.Routes(router)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, router)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zlog.Info("activities service listening", zap.String("address", cfg.HTTPAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	<-shutdownCh
	zlog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("graceful shutdown failed", zap.Error(err))
	}
}
