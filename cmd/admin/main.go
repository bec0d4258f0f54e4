// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

// Command admin is the entry point for the Folio admin console server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to Redis when configured (session store), else in-memory.
//  4. Build the content endpoint resolver and typed client.
//  5. Wire services and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/theijon/folio/internal/admin/auth"
	"github.com/theijon/folio/internal/api"
	"github.com/theijon/folio/internal/content"
	"github.com/theijon/folio/internal/platform/config"
	"github.com/theijon/folio/internal/platform/constants"
	redisstore "github.com/theijon/folio/internal/platform/redis"
	"github.com/theijon/folio/internal/platform/sec"
	"github.com/theijon/folio/internal/site/about"
	"github.com/theijon/folio/internal/site/blog"
	"github.com/theijon/folio/internal/site/contact"
	"github.com/theijon/folio/internal/site/hero"
	"github.com/theijon/folio/internal/site/inbox"
	"github.com/theijon/folio/internal/site/techstack"
	"github.com/theijon/folio/internal/site/work"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Folio] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Session Store ──────────────────────────────────────────────────
	// Redis when configured; otherwise sessions live in process memory and
	// die with the process.
	var sessions auth.SessionRepository
	var checkCache func() error

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		sessions = auth.NewRedisSessionRepository(rdb)
		checkCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	} else {
		log.Warn("redis_not_configured", slog.String("fallback", "in-memory sessions"))
		sessions = auth.NewMemorySessionRepository()
	}

	// ── 4. Content Client ─────────────────────────────────────────────────
	resolver := content.Resolver{
		InternalBase:   cfg.InternalAPIBase,
		LocalBase:      cfg.LocalAPIBase,
		ProductionBase: cfg.ProductionAPIBase,
		APIPrefix:      cfg.APIPrefix,
	}
	contentClient := content.NewClient(resolver, cfg.UpstreamTimeout, log)

	// ── 5. Auth Service ───────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.SessionSecret, constants.SessionIssuer)
	must(log, err, "initialize token service")

	credentials := auth.Credentials{
		Username:     cfg.AdminUsername,
		PasswordHash: cfg.AdminPasswordHash,
	}
	authService := auth.NewService(credentials, sessions, tokenService, cfg.SessionTTL, log)
	authHandler := auth.NewHandler(authService, cfg.IsProduction())

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckContent: func() error {
			return contentClient.Ping(context.Background())
		},
		CheckCache: checkCache,
	}, log)

	// ── 7. Content Wiring ─────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Hero:      hero.NewHandler(hero.NewService(contentClient, log)),
		About:     about.NewHandler(about.NewService(contentClient, log)),
		Contact:   contact.NewHandler(contact.NewService(contentClient, log)),
		Blog:      blog.NewHandler(blog.NewService(contentClient, log)),
		Work:      work.NewHandler(work.NewService(contentClient, log)),
		TechStack: techstack.NewHandler(techstack.NewService(contentClient, log)),
		Inbox:     inbox.NewHandler(inbox.NewService(contentClient, log)),
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(context.Background(), cfg, log, authService, handlers)

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
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
