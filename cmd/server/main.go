// HTTP server - Discord профиль + Omega Points + каталог наград
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/Vitrio14/vitrio-discord-backend/internal/api"
	db "github.com/Vitrio14/vitrio-discord-backend/internal/db"
	discord "github.com/Vitrio14/vitrio-discord-backend/internal/external/discord"
	kafka "github.com/Vitrio14/vitrio-discord-backend/internal/external/kafka"
	interf "github.com/Vitrio14/vitrio-discord-backend/internal/interfaces"
	services "github.com/Vitrio14/vitrio-discord-backend/internal/services"
	otel "github.com/Vitrio14/vitrio-discord-backend/observability/otel"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("OMEGA_PORT")
	if port == "" {
		port = "10000"
	}
	origin := os.Getenv("ALLOWED_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	metricsport := os.Getenv("OMEGA_METRICS_PORT")
	if metricsport == "" {
		metricsport = "9100"
	}

	ctx := context.Background()

	// tracing
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown := otel.InitTracer(ctx)
		defer shutdown()
	}

	// database
	var storage *db.OmegaDB
	storage, err = db.NewOmegaDB(logger)
	if err != nil {
		panic(err)
	}
	defer storage.Close(ctx)

	// cache
	var cache interf.CacheStorage
	redis, err := db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
	} else {
		cache = redis
	}

	// ledger stream
	var stream interf.LedgerStream
	if os.Getenv("KAFKA_LEDGER_URL") != "" {
		writer, err := kafka.NewLedgerWriter("omegaLedger")
		if err != nil {
			logger.Error(err.Error())
		} else {
			stream = writer
			defer writer.Close()
		}
	}

	// discord
	directory, err := discord.NewClient(logger)
	if err != nil {
		panic(err)
	}

	// services + api
	serv := services.NewOmegaService(logger, storage, storage, cache, stream)
	handler := api.NewHandler(serv, directory, origin, logger)

	srv := &http.Server{
		Handler:      otelhttp.NewHandler(handler, "omega"),
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Handler: metricsMux,
		Addr:    ":" + metricsport,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server started", zap.String("port", port))
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		err := metricsSrv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// shutdown
	g.Go(func() error {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		select {
		case <-interrupt:
		case <-gctx.Done():
		}
		timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		metricsSrv.Shutdown(timeout)
		return srv.Shutdown(timeout)
	})

	err = g.Wait()
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
