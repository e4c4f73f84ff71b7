// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ianmperryman/hockey-team-selection/internal/app"
	"github.com/ianmperryman/hockey-team-selection/internal/roster"
)

// Balancer is the dependency required by the balance endpoint. The app
// service satisfies it; tests may substitute a stub.
type Balancer interface {
	Balance(ctx context.Context, records []roster.Record) (app.Result, error)
	TeamNames() (string, string)
}

// StatsProvider exposes service counters for the stats endpoint.
type StatsProvider interface {
	Stats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	balanceHandler *BalanceHandler
	statsHandler   *StatsHandler
	healthHandler  *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(balancer Balancer, stats StatsProvider) *Server {
	return &Server{
		balanceHandler: NewBalanceHandler(balancer),
		statsHandler:   NewStatsHandler(stats),
		healthHandler:  NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/balance", MetricsMiddleware(s.balanceHandler.HandleBalance, "balance"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
