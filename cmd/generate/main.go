// Command generate runs the post generation pipeline once and prints the
// response envelope as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/iconidentify/socialgen/internal/api/handler"
	"github.com/iconidentify/socialgen/internal/config"
	"github.com/iconidentify/socialgen/internal/domain"
	"github.com/iconidentify/socialgen/internal/fallback"
	"github.com/iconidentify/socialgen/internal/service"
	"github.com/iconidentify/socialgen/pkg/inference"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to config file")
	envFile := fs.String("env", ".env", "Path to .env file")
	brand := fs.String("brand", "", "Brand name")
	product := fs.String("product", "", "Product description")
	audience := fs.String("audience", "", "Target audience")
	platform := fs.String("platform", "", "Target platform (Instagram, LinkedIn, ...)")
	tone := fs.String("tone", "Casual", "Tone (Professional, Casual, Funny, Educational, Inspirational)")
	offline := fs.Bool("offline", false, "Skip the model and use template synthesis")
	verbose := fs.Bool("v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	brief := domain.Brief{
		BrandName: *brand,
		Product:   *product,
		Audience:  *audience,
		Platform:  *platform,
		Tone:      *tone,
	}

	var svc *service.GenerationService
	if *offline {
		svc = service.NewGenerationService(nil, fallback.NewSynthesizer(nil), config.InferenceConfig{}, config.PipelineConfig{}, logger)
	} else {
		cfg, err := config.Load(*configPath, *envFile)
		if err != nil {
			fmt.Fprintf(stderr, "load config: %v\n", err)
			return 1
		}
		svc = service.NewGenerationService(
			inference.NewClient(cfg.Inference, logger),
			fallback.NewSynthesizer(nil),
			cfg.Inference,
			cfg.Pipeline,
			logger,
		)
	}

	var (
		outcome *domain.GenerationOutcome
		err     error
	)
	if *offline {
		outcome, err = svc.Fallback(brief)
	} else {
		outcome, err = svc.Generate(ctx, brief)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err != nil {
		if !errors.Is(err, domain.ErrMissingField) {
			fmt.Fprintf(stderr, "generate: %v\n", err)
			return 1
		}
		enc.Encode(handler.ErrorResponse{Success: false, Error: "All fields are required"})
		return 1
	}

	if err := enc.Encode(handler.GenerateResponse{
		Success: true,
		Source:  string(outcome.Source),
		Data:    handler.PresentPost(outcome.Result),
	}); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 1
	}
	return 0
}
