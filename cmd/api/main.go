// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Legal Design HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the document store (PostgreSQL with migrations, or in-memory).
//  4. Connect to Redis.
//  5. Connect to Meilisearch when configured.
//  6. Wire domain services and seed the catalog.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/legaldesign/internal/api"
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
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
	"github.com/taibuivan/legaldesign/internal/platform/migration"
	pgstore "github.com/taibuivan/legaldesign/internal/platform/postgres"
	redisstore "github.com/taibuivan/legaldesign/internal/platform/redis"
	"github.com/taibuivan/legaldesign/internal/platform/sec"
	"github.com/taibuivan/legaldesign/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "legaldesign"))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "legaldesign"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("document_store", cfg.DocumentStore),
		slog.Bool("search_enabled", cfg.SearchEnabled()),
	)

	// Root context for background loops (rate limiter, search health monitor).
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Startup deadline so misconfiguration is caught quickly rather than
	// hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	checks := make([]api.DependencyCheck, 0, 3)

	// ── 3. Document Store ─────────────────────────────────────────────────
	var store docstore.Store
	switch cfg.DocumentStore {
	case config.StoreMemory:
		log.Warn("document_store_in_memory")
		store = docstore.NewMemory()

	default:
		dsn, err := pgstore.ResolveDSN(cfg.DatabaseURL, cfg.DatabaseName)
		must(log, err, "resolve database url")

		must(log, migration.RunUp(dsn, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(startupCtx, dsn, "", log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		store = docstore.NewPostgres(pool)
	}
	checks = append(checks, api.DependencyCheck{Name: "store", Probe: store.Ping})

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_error", slog.Any("error", cerr))
		}
	}()
	checks = append(checks, api.DependencyCheck{
		Name:  "redis",
		Probe: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	})

	// ── 5. Search ─────────────────────────────────────────────────────────
	var engine search.Engine
	if cfg.SearchEnabled() {
		engine = search.NewMeili(rootCtx, cfg.MeiliURL, cfg.MeiliAPIKey, log)
	}
	searchService := search.NewService(store, engine, log)
	if searchService.Enabled() {
		checks = append(checks, api.DependencyCheck{
			Name:  "search",
			Probe: func(context.Context) error { return searchService.Ping() },
		})
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	authService := auth.NewService(auth.NewUserRepository(store), auth.NewRevocationRepository(rdb), tokenService, log)
	processService := process.NewService(process.NewDocumentRepository(store), searchService, log)
	calculatorService := calculator.NewService(calculator.NewDocumentRepository(store), log)
	contentService := content.NewService(content.NewDocumentRepository(store), log)
	blogService := blog.NewService(blog.NewDocumentRepository(store), searchService, log)
	decisionService := decision.NewService(decision.NewDocumentRepository(store), searchService, log)
	referenceService := reference.NewService(reference.NewDocumentRepository(store), log)
	cmsService := cms.NewService(cms.NewDocumentRepository(store), log)

	seeder := seed.NewSeeder(store, seed.Writers{
		Processes:            seed.Create(processService.Create),
		CalculatorParameters: seed.Create(calculatorService.Create),
		DocumentDescriptions: seed.Create(referenceService.Create),
		BlogPosts:            seed.Create(blogService.Create),
		LegalAid:             cmsService.EnsureLegalAid,
		DefaultAdmin: func(ctx context.Context) error {
			return authService.EnsureDefaultAdmin(ctx, cfg.DefaultAdminPassword)
		},
	}, log)

	// Seeding failures are logged by the seeder; the API still starts.
	_ = seeder.Startup(startupCtx)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(checks, log)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService),
		Processes:  process.NewHandler(processService),
		Calculator: calculator.NewHandler(calculatorService),
		Content:    content.NewHandler(contentService),
		Blog:       blog.NewHandler(blogService),
		Decisions:  decision.NewHandler(decisionService),
		Reference:  reference.NewHandler(referenceService),
		CMS:        cms.NewHandler(cmsService),
		Search:     search.NewHandler(searchService),
		Dashboard:  dashboard.NewHandler(dashboard.NewService(store)),
		Seed:       seed.NewHandler(seeder),
	}

	server := api.NewServer(rootCtx, cfg, log, authService, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	rootCancel()
	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
