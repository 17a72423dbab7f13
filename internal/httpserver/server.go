package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"nexus-export-cache/internal/interfaces"
)

// Server serves mod lookups from the export cache over HTTP
type Server struct {
	cache        interfaces.ModLookup
	staleMinutes int
	logger       *zap.Logger
	server       *http.Server
}

// NewServer creates a new export cache HTTP server
func NewServer(cache interfaces.ModLookup, staleMinutes int, readTimeout, writeTimeout time.Duration, logger *zap.Logger) *Server {
	s := &Server{
		cache:        cache,
		staleMinutes: staleMinutes,
		logger:       logger,
	}
	s.server = &http.Server{
		Handler:      s.createRouter(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start starts the HTTP server on the given address
func (s *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve serves HTTP requests on the given listener until Stop is called
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("Starting export cache HTTP server", zap.String("addr", listener.Addr().String()))
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping export cache HTTP server")
	return s.server.Shutdown(ctx)
}

// createRouter creates and configures the HTTP router
func (s *Server) createRouter() *mux.Router {
	router := mux.NewRouter()

	// Mod lookups
	router.HandleFunc("/mods/{id}", s.handleGetMod).Methods("GET")

	// Cache state
	router.HandleFunc("/cache/status", s.handleCacheStatus).Methods("GET")

	// Health check
	router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, map[string]interface{}{
		"status": "healthy",
		"loaded": s.cache.IsLoaded(),
		"time":   time.Now().UTC(),
	})
}

// writeResponse writes JSON response
func (s *Server) writeResponse(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeStatusResponse writes JSON response with a non-200 status code
func (s *Server) writeStatusResponse(w http.ResponseWriter, v interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeErrorResponse writes error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	s.writeStatusResponse(w, &ModResponse{
		Success: false,
		Error:   message,
	}, statusCode)
}
