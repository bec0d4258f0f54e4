// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

/*
Package api wires together the HTTP router, middleware chain, and all
content handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/admin are allowed to import net/http server primitives.

Surface layout:

  - /health, /ready — unauthenticated probes
  - /auth/* — login, logout, session probe
  - /api/*   — public reads for the rendered site, plus message submission
  - /admin/* — the editing console API, gated by RequireAdmin
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/theijon/folio/internal/admin/auth"
	"github.com/theijon/folio/internal/platform/config"
	"github.com/theijon/folio/internal/platform/constants"
	"github.com/theijon/folio/internal/platform/middleware"
	"github.com/theijon/folio/internal/site/about"
	"github.com/theijon/folio/internal/site/blog"
	"github.com/theijon/folio/internal/site/contact"
	"github.com/theijon/folio/internal/site/hero"
	"github.com/theijon/folio/internal/site/inbox"
	"github.com/theijon/folio/internal/site/techstack"
	"github.com/theijon/folio/internal/site/work"
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

// Handlers groups all content-type HTTP handler sets.
//
// # Usage
//
// New content types add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles console login, logout, and the session probe.
	Auth *auth.Handler

	// Hero edits the landing-page profile singleton.
	Hero *hero.Handler

	// About edits the about-me singleton.
	About *about.Handler

	// Contact edits the contact singleton.
	Contact *contact.Handler

	// Blog manages the blog post collection.
	Blog *blog.Handler

	// Work manages the portfolio project collection.
	Work *work.Handler

	// TechStack manages the technology category collection.
	TechStack *techstack.Handler

	// Inbox triages visitor messages and accepts public submissions.
	Inbox *inbox.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.SessionVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Console Authentication
	r.Route("/auth", func(authRouter chi.Router) {
		h.Auth.RegisterRoutes(authRouter)
	})

	// # Public Site API
	// Read-only proxies for the rendered site, plus the contact form. The
	// form gets its own much stricter per-IP limiter on top of the global one.
	r.Route("/api", func(public chi.Router) {
		public.Get("/hero", h.Hero.Public)
		public.Get("/aboutme", h.About.Public)
		public.Get("/contact", h.Contact.Public)
		public.Get("/works", h.Work.Public)
		public.Get("/techstack", h.TechStack.Public)
		public.Route("/blogs", h.Blog.RegisterPublicRoutes)

		public.With(middleware.RateLimitWith(context,
			constants.MessageSubmitRPS, constants.MessageSubmitBurst)).
			Post("/messages", h.Inbox.Submit)
	})

	// # Editing Console API
	// Everything below requires an authenticated admin session.
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)

		admin.Route("/hero", h.Hero.RegisterAdminRoutes)
		admin.Route("/aboutme", h.About.RegisterAdminRoutes)
		admin.Route("/contact", h.Contact.RegisterAdminRoutes)
		admin.Route("/blogs", h.Blog.RegisterAdminRoutes)
		admin.Route("/works", h.Work.RegisterAdminRoutes)
		admin.Route("/techstack", h.TechStack.RegisterAdminRoutes)
		admin.Route("/messages", h.Inbox.RegisterAdminRoutes)
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

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
