// Package server implements the thin, interfaces-only HTTP read surface
// named in §1's Non-goals: a router plus an *http.Server, modeled directly
// on the teacher's cmd/explorer/server.go Server{router, httpServer} shape.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// rowQuerier is the single pgxpool.Pool method the count endpoints need,
// narrowed to an interface so handlers can be exercised against a fake in
// tests without a live Postgres instance.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Server is the read-only aggregate-query surface described in §2's
// Overview table.
type Server struct {
	router     *mux.Router
	httpServer *http.Server
	pool       rowQuerier
}

// New builds a Server bound to addr, querying pool for its count endpoints.
func New(addr string, pool *pgxpool.Pool) *Server {
	s := &Server{router: mux.NewRouter(), pool: pool}
	s.routes()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           loggingMiddleware(s.router),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	s.router.HandleFunc("/counts/blocks/{network}", s.handleCount("block")).Methods(http.MethodGet)
	s.router.HandleFunc("/counts/transactions/{network}", s.handleCount("transaction")).Methods(http.MethodGet)
	s.router.HandleFunc("/counts/logs/{network}", s.handleCount("log")).Methods(http.MethodGet)
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
