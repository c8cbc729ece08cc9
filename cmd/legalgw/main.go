package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/legalgw/internal/application/dispatcher"
	"github.com/aescanero/legalgw/internal/config"
	"github.com/aescanero/legalgw/pkg/adapters/backends/deepagent"
	"github.com/aescanero/legalgw/pkg/adapters/backends/vertexsearch"
	"github.com/aescanero/legalgw/pkg/adapters/credentials"
	"github.com/aescanero/legalgw/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/legalgw/pkg/api/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting legal gateway",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("project_id", cfg.ProjectID),
		zap.String("location", cfg.Location),
		zap.Bool("local_dev", cfg.LocalDev))

	// Initialize adapters
	credentialProvider := credentials.NewProvider(cfg, logger)
	logger.Info("credential provider selected",
		zap.String("provider", credentialProvider.Name()))

	searchClient := vertexsearch.NewClient(
		cfg.Search.Endpoint,
		cfg.Search.PageSize,
		cfg.Search.Timeout,
		logger,
	)

	agentClient := deepagent.NewClient(
		cfg.Agent.Endpoint,
		cfg.Agent.Timeout,
		logger,
	)

	metricsCollector := prometheus.NewCollector()

	// Initialize application components
	queryDispatcher := dispatcher.NewDispatcher(
		credentialProvider,
		searchClient,
		agentClient,
		metricsCollector,
		logger,
	)

	// Initialize API server
	httpServer := http.NewServer(&http.Config{
		Port:       cfg.HTTPPort,
		Dispatcher: queryDispatcher,
		Logger:     logger,
	})

	// Start server
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("legal gateway started",
		zap.Int("http_port", cfg.HTTPPort))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("legal gateway shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
