// Package health reports the readiness of the service's dependencies.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

const checkTimeout = 2 * time.Second

type Check struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type Response struct {
	Status        Status    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Checks        []Check   `json:"checks,omitempty"`
	UptimeSeconds int64     `json:"uptime_seconds"`
}

// CheckFunc returns nil when the dependency is usable.
type CheckFunc func(ctx context.Context) error

type Handler struct {
	mu        sync.RWMutex
	checks    map[string]CheckFunc
	startTime time.Time
}

func NewHandler() *Handler {
	return &Handler{
		checks:    make(map[string]CheckFunc),
		startTime: time.Now(),
	}
}

func (h *Handler) Register(name string, fn CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = fn
}

// Run executes every registered check and aggregates the result.
func (h *Handler) Run(ctx context.Context) Response {
	h.mu.RLock()
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	checks := make(map[string]CheckFunc, len(h.checks))
	for k, v := range h.checks {
		checks[k] = v
	}
	h.mu.RUnlock()
	sort.Strings(names)

	resp := Response{
		Status:        StatusHealthy,
		Timestamp:     time.Now(),
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}
	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		start := time.Now()
		err := checks[name](cctx)
		cancel()

		c := Check{Name: name, Status: StatusHealthy, DurationMs: time.Since(start).Milliseconds()}
		if err != nil {
			c.Status = StatusUnhealthy
			c.Message = err.Error()
			resp.Status = StatusUnhealthy
		}
		resp.Checks = append(resp.Checks, c)
	}
	return resp
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h.Run(r.Context())

	code := http.StatusOK
	if resp.Status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

// LivenessHandler always answers 200 while the process is up.
func LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
