// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/accounts-api/internal/core"
)

const probeTimeout = 5 * time.Second

// Checker is anything that can be pinged for a dependency probe.
type Checker interface {
	Ping(ctx context.Context) error
}

// Handler serves the liveness and readiness probes. An instance starts not
// ready; the bootstrap flips it once every dependency is wired, and shutdown
// flips both probes to 503 so the load balancer stops routing before the
// listener closes.
type Handler struct {
	db       Checker
	redis    Checker
	ready    atomic.Bool
	shutdown atomic.Bool
}

func NewHandler(db, redis Checker) *Handler {
	return &Handler{
		db:    db,
		redis: redis,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Liveness)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.write(w, http.StatusServiceUnavailable, ProbeResponse{
			Status:  http.StatusServiceUnavailable,
			Success: false,
			State:   "shutting_down",
		})
		return
	}

	h.write(w, http.StatusOK, ProbeResponse{
		Status:  http.StatusOK,
		Success: true,
		State:   "ok",
	})
}

func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.write(w, http.StatusServiceUnavailable, ProbeResponse{
			Status:  http.StatusServiceUnavailable,
			Success: false,
			State:   "shutting_down",
		})
		return
	}

	if !h.ready.Load() {
		h.write(w, http.StatusServiceUnavailable, ProbeResponse{
			Status:  http.StatusServiceUnavailable,
			Success: false,
			State:   "not_ready",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	checks := h.probeDependencies(ctx)

	state := "ok"
	statusCode := http.StatusOK
	for _, check := range checks {
		if !check.Healthy {
			state = "degraded"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	h.write(w, statusCode, ProbeResponse{
		Status:  statusCode,
		Success: statusCode == http.StatusOK,
		State:   state,
		Checks:  checks,
	})
}

// probeDependencies pings postgres and redis concurrently.
func (h *Handler) probeDependencies(ctx context.Context) []DependencyCheck {
	var wg sync.WaitGroup
	checks := make([]DependencyCheck, 2)

	wg.Add(2)

	go func() {
		defer wg.Done()
		checks[0] = h.probe(ctx, "database", h.db)
	}()

	go func() {
		defer wg.Done()
		checks[1] = h.probe(ctx, "redis", h.redis)
	}()

	wg.Wait()
	return checks
}

func (h *Handler) probe(
	ctx context.Context,
	name string,
	checker Checker,
) DependencyCheck {
	check := DependencyCheck{
		Name:    name,
		Healthy: true,
	}

	if checker == nil {
		check.Healthy = false
		check.Message = name + " checker not configured"
		return check
	}

	start := time.Now()
	err := checker.Ping(ctx)
	check.Latency = time.Since(start).String()

	if err != nil {
		check.Healthy = false
		check.Message = "ping failed"
	}

	return check
}

// SetReady opens the readiness gate once the bootstrap has every dependency
// wired. Until then readyz reports not_ready.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *Handler) SetShutdown(shutdown bool) {
	h.shutdown.Store(shutdown)
}

func (h *Handler) write(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	core.WriteJSON(w, status, data)
}

// ProbeResponse follows the API-wide {status, success} envelope.
type ProbeResponse struct {
	Status  int               `json:"status"`
	Success bool              `json:"success"`
	State   string            `json:"state"`
	Checks  []DependencyCheck `json:"checks,omitempty"`
}

type DependencyCheck struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}
