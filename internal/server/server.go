package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/luminashop/storefront-be/internal/auth"
	"github.com/luminashop/storefront-be/internal/config"
	"github.com/luminashop/storefront-be/internal/http/handlers"
	"github.com/luminashop/storefront-be/internal/middleware"
	"github.com/luminashop/storefront-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, log *slog.Logger) *Server {
	mux := http.NewServeMux()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(store, tokens, cfg, log).Register(mux)
	handlers.NewProductHandler(store, log).Register(mux)

	handler := middleware.CORS(cfg.CORSOrigins,
		middleware.Logging(log,
			middleware.Session(tokens, mux)))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
