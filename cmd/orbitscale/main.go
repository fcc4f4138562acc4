package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/orbitscale/orbitscale/internal/bootstrap"
	"github.com/orbitscale/orbitscale/internal/config"
	"github.com/orbitscale/orbitscale/internal/db"
	"github.com/orbitscale/orbitscale/internal/migrations"
	"github.com/orbitscale/orbitscale/internal/paths"
	"github.com/orbitscale/orbitscale/internal/repository"
	"github.com/orbitscale/orbitscale/internal/server/handler"
	"github.com/orbitscale/orbitscale/internal/xhttp/middleware"
	"github.com/orbitscale/orbitscale/internal/xslog"
)

const (
	keyPort = "port"

	// The API is the boundary handed to the local UI layer; it never binds a
	// public interface.
	listenHost = "127.0.0.1"
)

func main() {
	_ = godotenv.Load()

	// Fallback logging channel: available before any settings read.
	logger := xslog.NewLoggerFromEnv(os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if _, err := paths.EnsureDir(); err != nil {
		return err
	}
	dbPath, err := paths.DB()
	if err != nil {
		return err
	}
	logPath, err := paths.Log()
	if err != nil {
		return err
	}

	sqlDB, err := db.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	if err := migrations.Apply(ctx, sqlDB); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	repo := repository.New(sqlDB)

	coordinator := bootstrap.New(repo.Settings, repo.MetricTypes, managedLoggerInit(logPath, cfg), logger)
	coordinator.Run(ctx)

	metricTypesHandler := handler.NewMetricTypes(repo.MetricTypes)
	measurementsHandler := handler.NewMeasurements(repo.Measurements, repo.MetricTypes)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.HandleFunc("GET /api/metric-types", metricTypesHandler.HandleList)
	mux.HandleFunc("PATCH /api/metric-types/{id}", metricTypesHandler.HandleUpdate)
	mux.HandleFunc("POST /api/measurements", measurementsHandler.HandleCreate)
	mux.HandleFunc("GET /api/measurements", measurementsHandler.HandleList)
	mux.HandleFunc("DELETE /api/measurements/{id}", measurementsHandler.HandleDelete)

	wrapped := middleware.Chain(mux,
		middleware.Recovery,
		middleware.Logging,
		middleware.Logger(logger),
		middleware.RequestID(),
		middleware.SecurityHeaders,
	)

	httpServer := &http.Server{
		Addr:              listenHost + ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.InfoContext(ctx, "starting server",
			xslog.Version(),
			slog.String(keyPort, cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "server error", xslog.Error(err))
		}
	}()

	<-done
	logger.InfoContext(ctx, "shutdown signal received, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

// managedLoggerInit builds the LoggerInit handed to the bootstrap
// coordinator: stderr always, teeing to the app log file when the durable
// flag says so.
func managedLoggerInit(logPath string, cfg config.Config) bootstrap.LoggerInit {
	return func(_ context.Context, fileLogging bool) (*slog.Logger, error) {
		w := io.Writer(os.Stderr)
		if fileLogging {
			f, err := xslog.OpenLogFile(logPath)
			if err != nil {
				return nil, err
			}
			w = io.MultiWriter(os.Stderr, f)
		}

		level := xslog.FromEnv()
		if cfg.Environment.IsDevelopment() && os.Getenv(xslog.EnvKey) == "" {
			level = xslog.LevelDebug
		}

		logger := xslog.NewLogger(w, level)
		slog.SetDefault(logger)
		return logger, nil
	}
}
