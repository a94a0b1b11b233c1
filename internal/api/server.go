// Package api provides the HTTP API server and handlers for the GoodBooks catalog.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goodbooksapp/goodbooks-server/internal/auth"
	"github.com/goodbooksapp/goodbooks-server/internal/http/response"
	"github.com/goodbooksapp/goodbooks-server/internal/ratelimit"
	"github.com/goodbooksapp/goodbooks-server/internal/service"
)

// Services bundles the service dependencies of the HTTP handlers.
type Services struct {
	Book   *service.BookService
	Tag    *service.TagService
	Rating *service.RatingService
	ToRead *service.ToReadService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services       *Services
	authenticator  auth.Authenticator
	writeLimiter   *ratelimit.KeyedRateLimiter
	requestTimeout time.Duration
	router         *chi.Mux
	logger         *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services *Services, authenticator auth.Authenticator, writeLimiter *ratelimit.KeyedRateLimiter, requestTimeout time.Duration, logger *slog.Logger) *Server {
	s := &Server{
		services:       services,
		authenticator:  authenticator,
		writeLimiter:   writeLimiter,
		requestTimeout: requestTimeout,
		router:         chi.NewRouter(),
		logger:         logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// Bounded per-request deadline; every handler performs at most two store
	// round trips within it.
	if s.requestTimeout > 0 {
		s.router.Use(middleware.Timeout(s.requestTimeout))
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// Books.
	s.router.Route("/books", func(r chi.Router) {
		r.Get("/", s.handleListBooks)
		r.Get("/{book_id}", s.handleGetBook)
		r.Get("/{book_id}/tags", s.handleBookTags)
		r.Get("/{book_id}/ratings/summary", s.handleRatingsSummary)
	})

	// Authors.
	s.router.Get("/authors/{author_name}/books", s.handleAuthorBooks)

	// Tags.
	s.router.Get("/tags", s.handleListTags)

	// Users.
	s.router.Get("/users/{user_id}/to-read", s.handleUserToRead)

	// Ratings (the only write; shared-secret check plus per-client rate limit).
	s.router.Route("/ratings", func(r chi.Router) {
		r.Use(s.requireAPIKey)
		r.Use(s.limitWrites)
		r.Post("/", s.handleRateBook)
	})
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// MessageResponse is a fixed confirmation message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, HealthResponse{Status: "healthy"}, s.logger)
}
