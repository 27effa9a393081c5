// Package server exposes the search engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lexbr/precedentes/internal/auth"
	"github.com/lexbr/precedentes/internal/scoring"
	"github.com/lexbr/precedentes/internal/service"
)

// HTTPServer wraps the HTTP API for the search service.
type HTTPServer struct {
	server *http.Server
	router *chi.Mux
	search *service.SearchService
	logger *slog.Logger
}

// HTTPServerConfig holds configuration for the HTTP server.
type HTTPServerConfig struct {
	Port   int
	APIKey string
	JWT    *auth.JWTManager // optional; enables bearer auth when set
	Logger *slog.Logger
}

// NewHTTPServer creates the HTTP server and mounts the routes.
func NewHTTPServer(search *service.SearchService, cfg HTTPServerConfig) *HTTPServer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLoggingMiddleware(logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	s := &HTTPServer{
		router: router,
		search: search,
		logger: logger,
	}

	router.Route("/v1", func(r chi.Router) {
		r.Use(auth.APIKeyMiddleware(cfg.APIKey))
		if cfg.JWT != nil {
			r.Use(cfg.JWT.Middleware)
		}
		r.Post("/precedentes/search", s.handleSearch)
	})

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute, // the rerank path waits on an LLM call
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// searchRequest is the JSON body of POST /v1/precedentes/search. Either a
// topic (with optional context) or a free-text query must be present; query
// is shorthand for filters.searchTerm.
type searchRequest struct {
	Topic   string          `json:"topic"`
	Context string          `json:"context"`
	Query   string          `json:"query"`
	Filters scoring.Filters `json:"filters"`
}

type searchResponse struct {
	Results []scoring.RankedPrecedent `json:"results"`
	Count   int                       `json:"count"`
}

func (s *HTTPServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.Query != "" && req.Filters.SearchTerm == "" {
		req.Filters.SearchTerm = req.Query
	}
	if req.Topic == "" && req.Filters.SearchTerm == "" {
		http.Error(w, "topic or query is required", http.StatusBadRequest)
		return
	}

	results, err := s.search.Search(r.Context(), req.Topic, req.Context, req.Filters)
	if err != nil {
		s.logger.Error("search failed", "error", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(searchResponse{Results: results, Count: len(results)}); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *HTTPServer) Start() error {
	s.logger.Info("starting HTTP server", "address", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}
	return nil
}

// requestLoggingMiddleware logs HTTP requests.
func requestLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
