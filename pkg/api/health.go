package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cuemby/rlvm/pkg/metrics"
)

// ReadyFunc reports whether the process can serve requests.
type ReadyFunc func(ctx context.Context) error

// HealthServer provides HTTP health check endpoints
type HealthServer struct {
	ready  ReadyFunc
	mux    *http.ServeMux
	server *http.Server
}

// NewHealthServer creates a new health check HTTP server. ready backs the
// /ready endpoint; nil means the authority component is not checked.
func NewHealthServer(ready ReadyFunc) *HealthServer {
	mux := http.NewServeMux()
	hs := &HealthServer{
		ready: ready,
		mux:   mux,
	}

	// Register endpoints
	mux.HandleFunc("/health", hs.healthHandler)
	mux.HandleFunc("/ready", hs.readyHandler)
	mux.Handle("/metrics", metrics.Handler())

	return hs
}

// Start starts the health check HTTP server
func (hs *HealthServer) Start(addr string) error {
	hs.server = &http.Server{
		Addr:         addr,
		Handler:      hs.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := hs.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server
func (hs *HealthServer) Shutdown(ctx context.Context) error {
	if hs.server == nil {
		return nil
	}
	return hs.server.Shutdown(ctx)
}

// healthHandler implements the /health endpoint
func (hs *HealthServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := metrics.GetHealth()

	statusCode := http.StatusOK
	if health.Status != metrics.StatusHealthy {
		statusCode = http.StatusServiceUnavailable
	}
	writeJSON(w, statusCode, health)
}

// readyHandler implements the /ready endpoint
func (hs *HealthServer) readyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if hs.ready != nil {
		if err := hs.ready(r.Context()); err != nil {
			metrics.UpdateComponent(metrics.ComponentAuthority, false, err.Error())
		} else {
			metrics.UpdateComponent(metrics.ComponentAuthority, true, "")
		}
	}

	readiness := metrics.GetReadiness()

	statusCode := http.StatusOK
	if readiness.Status != metrics.StatusReady {
		statusCode = http.StatusServiceUnavailable
	}
	writeJSON(w, statusCode, readiness)
}

// Handler returns the HTTP handler for embedding in other servers
func (hs *HealthServer) Handler() http.Handler {
	return hs.mux
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
