// Package web serves the catalog as an HTML page carrying data-cy hooks and
// as a JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Veraticus/product-catalog/internal/catalog"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Config holds server configuration.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Server renders the catalog over HTTP. The catalog is shared read-only
// between requests; each request filters with its own engine.
type Server struct {
	router  *chi.Mux
	catalog *catalog.Catalog
	logger  *slog.Logger
	page    *template.Template
	config  Config
}

// New creates a server over cat.
func New(cfg Config, cat *catalog.Catalog, logger *slog.Logger) (*Server, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	page, err := template.New("catalog.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/catalog.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:  chi.NewRouter(),
		catalog: cat,
		logger:  logger,
		page:    page,
		config:  cfg,
	}
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures middleware and handlers.
//
//	GET /              catalog page, ?query= filters
//	GET /reset         clears the query
//	GET /api/products  visible rows as JSON, ?query= filters
//	GET /healthz       liveness probe
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(requestLogger(s.logger))

	s.router.Get("/", s.handleCatalog)
	s.router.Get("/reset", s.handleReset)
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/products", s.handleProducts)
	})
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully, waiting for in-flight requests up to ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", "addr", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		<-serverErrors

		s.logger.Info("Server stopped")
		return nil
	}
}
