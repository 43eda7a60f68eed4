// Copyright (c) 2026 Garagem. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pvieira/garagem/internal/auth"
	"github.com/pvieira/garagem/internal/contact"
	"github.com/pvieira/garagem/internal/core/car"
	"github.com/pvieira/garagem/internal/core/client"
	"github.com/pvieira/garagem/internal/core/partner"
	"github.com/pvieira/garagem/internal/dashboard"
	"github.com/pvieira/garagem/internal/platform/config"
	"github.com/pvieira/garagem/internal/platform/constants"
	"github.com/pvieira/garagem/internal/platform/middleware"
	"github.com/pvieira/garagem/internal/upload"
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
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles login, logout, and session introspection.
	Auth *auth.Handler

	// Car handles the public inventory and its admin CRUD.
	Car *car.Handler

	// Client handles the admin-only customer records.
	Client *client.Handler

	// Partner handles the partner showcase.
	Partner *partner.Handler

	// Contact handles the storefront contact form and admin inbox.
	Contact *contact.Handler

	// Dashboard serves the admin console statistics.
	Dashboard *dashboard.Handler

	// Upload handles binary uploads and public asset retrieval.
	Upload *upload.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, sessions middleware.SessionResolver, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Session(sessions))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// The storefront client consumes these unversioned, mirroring its
	// fetch paths one-to-one.
	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		api.Route("/cars", h.Car.RegisterRoutes)
		api.Route("/clients", h.Client.RegisterRoutes)
		api.Route("/partners", h.Partner.RegisterRoutes)
		api.Route("/contact", h.Contact.RegisterRoutes)
		api.Route("/dashboard", h.Dashboard.RegisterRoutes)
		api.Route("/upload", h.Upload.RegisterUploadRoute)
	})

	// # Public Assets
	// Uploaded binaries are served straight from the object store.
	r.Route("/uploads", h.Upload.RegisterServeRoute)

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
