// Package api serves the collector's JSON API over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"ipfix-collector/internal/resolver"
	"ipfix-collector/internal/store"
)

// Server is the HTTP API server
type Server struct {
	server   *http.Server
	handlers *Handlers
	log      *zap.Logger
}

// NewServer creates a new API server bound to addr.
func NewServer(flowStore *store.FlowStore, addr string, res *resolver.Resolver, log *zap.Logger) *Server {
	handlers := NewHandlers(flowStore, res)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/flows", corsMiddleware(handlers.HandleFlows))
	mux.HandleFunc("/api/v1/stats", corsMiddleware(handlers.HandleStats))
	mux.HandleFunc("/api/v1/exporters", corsMiddleware(handlers.HandleExporters))

	mux.HandleFunc("/health", corsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	return &Server{
		server: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		handlers: handlers,
		log:      log,
	}
}

// Start serves in a goroutine.
func (s *Server) Start() {
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("api server failed", zap.Error(err))
		}
	}()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// corsMiddleware allows cross-origin reads of the API.
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}
