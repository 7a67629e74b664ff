// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Routes live under two scopes. /api serves the public site and /api/admin
serves the management panel; everything in the admin scope except the login
passes through the admin gate.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/legaldesign/internal/core/blog"
	"github.com/taibuivan/legaldesign/internal/core/calculator"
	"github.com/taibuivan/legaldesign/internal/core/cms"
	"github.com/taibuivan/legaldesign/internal/core/content"
	"github.com/taibuivan/legaldesign/internal/core/dashboard"
	"github.com/taibuivan/legaldesign/internal/core/decision"
	"github.com/taibuivan/legaldesign/internal/core/process"
	"github.com/taibuivan/legaldesign/internal/core/reference"
	"github.com/taibuivan/legaldesign/internal/core/search"
	"github.com/taibuivan/legaldesign/internal/core/seed"
	"github.com/taibuivan/legaldesign/internal/platform/config"
	"github.com/taibuivan/legaldesign/internal/platform/constants"
	"github.com/taibuivan/legaldesign/internal/platform/middleware"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
	"github.com/taibuivan/legaldesign/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles login, logout and the admin profile.
	Auth *auth.Handler

	Processes  *process.Handler
	Calculator *calculator.Handler
	Content    *content.Handler
	Blog       *blog.Handler
	Decisions  *decision.Handler
	Reference  *reference.Handler
	CMS        *cms.Handler
	Search     *search.Handler

	// Admin-only handlers
	Dashboard *dashboard.Handler
	Seed      *seed.Handler
}

type publicRoutes interface {
	PublicRoutes(router chi.Router)
}

type adminRoutes interface {
	AdminRoutes(router chi.Router)
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The rate limiter's cleanup loop stops with context.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, gate middleware.Gate, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	public := []publicRoutes{h.Processes, h.Calculator, h.Content, h.Blog, h.Decisions, h.Reference, h.CMS, h.Search}
	admin := []adminRoutes{h.Auth, h.Dashboard, h.Processes, h.Calculator, h.Content, h.Blog, h.Decisions, h.Reference, h.CMS, h.Search, h.Seed}

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Get("/", welcome)

		for _, handler := range public {
			handler.PublicRoutes(api)
		}

		api.Route("/admin", func(panel chi.Router) {
			h.Auth.LoginRoutes(panel)

			panel.Group(func(protected chi.Router) {
				protected.Use(middleware.Authenticate(gate))
				for _, handler := range admin {
					handler.AdminRoutes(protected)
				}
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// welcome handles the legacy GET /api/ greeting.
func welcome(writer http.ResponseWriter, request *http.Request) {
	respond.Message(writer, constants.WelcomeMessage)
}

// Handler exposes the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
