// v0
// internal/api/server.go
package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type Server struct {
	HTTP *http.Server
	Log  *slog.Logger
}

// NewRouter wires all routes, each wrapped with per-route metrics.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()

	route := func(path string, fn http.HandlerFunc) http.Handler {
		return h.Metrics.WrapHandler(path, fn)
	}

	r.Handle("/health", route("/health", h.Health)).Methods("GET")
	r.Handle("/metrics", h.Metrics.Handler()).Methods("GET")

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.Handle("/assess", route("/api/v1/assess", h.Assess)).Methods("POST")
	v1.Handle("/batch", route("/api/v1/batch", h.Batch)).Methods("POST")
	v1.Handle("/compare", route("/api/v1/compare", h.Compare)).Methods("POST")
	v1.Handle("/history", route("/api/v1/history", h.HistoryList)).Methods("GET")
	v1.Handle("/history", route("/api/v1/history", h.HistoryClear)).Methods("DELETE")
	v1.Handle("/history/export", route("/api/v1/history/export", h.HistoryExport)).Methods("GET")

	return r
}

func NewServer(addr string, log *slog.Logger, h *Handlers, readTimeout, writeTimeout time.Duration) *Server {
	logged := handlers.LoggingHandler(os.Stdout, NewRouter(h))

	hs := &http.Server{
		Addr:              addr,
		Handler:           logged,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{HTTP: hs, Log: log}
}

func (s *Server) Start() error {
	s.Log.Info("http server starting", "addr", s.HTTP.Addr)
	return s.HTTP.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.Log.Info("http server stopping")
	return s.HTTP.Shutdown(ctx)
}
