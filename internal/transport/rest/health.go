package rest

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck is one dependency probed by readiness and health requests.
type HealthCheck struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	checks  []HealthCheck
	version string
}

// NewHealthHandler creates a HealthHandler probing checks in order. The
// database is always the first one.
func NewHealthHandler(version string, db pinger, extra ...HealthCheck) *HealthHandler {
	checks := append([]HealthCheck{{Name: "database", Pinger: db}}, extra...)
	return &HealthHandler{checks: checks, version: version}
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]componentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type componentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 as soon as one dependency is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	for _, c := range h.checks {
		if err := c.Pinger.Ping(ctx); err != nil {
			writeHealth(w, healthResponse{Status: "down", Timestamp: time.Now()})
			return
		}
	}
	writeHealth(w, healthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health probes every dependency and reports each with its latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := healthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]componentStatus, len(h.checks)),
	}

	for _, c := range h.checks {
		start := time.Now()
		if err := c.Pinger.Ping(ctx); err != nil {
			resp.Components[c.Name] = componentStatus{Status: "down"}
			resp.Status = "down"
			continue
		}
		resp.Components[c.Name] = componentStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	resp.Timestamp = time.Now()
	writeHealth(w, resp)
}

func writeHealth(w http.ResponseWriter, resp healthResponse) {
	if resp.Status == "ok" {
		writeData(w, http.StatusOK, resp)
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, envelope{Data: resp, Success: false})
}
