package api

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/iconidentify/socialgen/internal/api/handler"
	mw "github.com/iconidentify/socialgen/internal/api/middleware"
	"github.com/iconidentify/socialgen/internal/config"
)

const defaultRequestTimeout = 30 * time.Second

// NewRouter creates the HTTP router with all routes configured.
func NewRouter(
	generateHandler *handler.GenerateHandler,
	healthHandler *handler.HealthHandler,
	serverCfg config.ServerConfig,
	logger *slog.Logger,
) *chi.Mux {
	requestTimeout := serverCfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CleanPath)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Logger(logger))
	r.Use(mw.Recovery(logger))
	r.Use(middleware.Timeout(requestTimeout))

	// CORS for browser front-ends
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: serverCfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         86400,
	}))

	r.Get("/", healthHandler.Status)
	r.Get("/health", healthHandler.Live)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", generateHandler.Generate)
	})

	return r
}
