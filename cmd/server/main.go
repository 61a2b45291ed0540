package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iconidentify/socialgen/internal/api"
	"github.com/iconidentify/socialgen/internal/api/handler"
	"github.com/iconidentify/socialgen/internal/config"
	"github.com/iconidentify/socialgen/internal/fallback"
	"github.com/iconidentify/socialgen/internal/service"
	"github.com/iconidentify/socialgen/pkg/inference"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Path to config file")
	envFile := flag.String("env", ".env", "Path to .env file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("socialgen %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting socialgen",
		"version", Version,
		"build_time", BuildTime,
	)

	// Load configuration
	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Inference.APIToken == "" {
		logger.Warn("HUGGINGFACE_API_TOKEN not set, model calls will fail and template posts will be served")
	}

	// Initialize dependencies
	inferenceClient := inference.NewClient(cfg.Inference, logger)
	generationSvc := service.NewGenerationService(
		inferenceClient,
		fallback.NewSynthesizer(nil),
		cfg.Inference,
		cfg.Pipeline,
		logger,
	)

	// Initialize handlers
	generateHandler := handler.NewGenerateHandler(generationSvc, logger)
	healthHandler := handler.NewHealthHandler()

	// Setup router
	router := api.NewRouter(generateHandler, healthHandler, cfg.Server, logger)

	// Setup HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting HTTP server",
			"addr", srv.Addr,
			"two_stage", cfg.Pipeline.TwoStage,
			"inference_timeout", cfg.Inference.Timeout,
		)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
