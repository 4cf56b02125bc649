package rest

import (
	"context"
	"net/http"
	"time"
)

// probeTimeout bounds the dependency checks of /ready and /health.
const probeTimeout = 3 * time.Second

const (
	healthUp   = "ok"
	healthDown = "down"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// schemaVersioner reports the applied migration version.
type schemaVersioner interface {
	Version(ctx context.Context) (int64, error)
}

// HealthHandler serves the liveness, readiness and health probes. They
// answer plain JSON rather than the API envelope.
type HealthHandler struct {
	db      dbPinger
	schema  schemaVersioner
	version string
}

// NewHealthHandler creates a HealthHandler. schema may be nil.
func NewHealthHandler(db dbPinger, schema schemaVersioner, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Version *int64 `json:"version,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: healthUp, Timestamp: time.Now()})
}

// Ready answers 200 when the database responds, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	status := healthUp
	if err := h.db.Ping(ctx); err != nil {
		status = healthDown
	}
	h.respond(w, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports the database with its ping latency, the applied schema
// version and the build version. Any component down makes the answer 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := map[string]CompStatus{"database": h.probeDB(ctx)}
	if h.schema != nil && components["database"].Status == healthUp {
		components["schema"] = h.probeSchema(ctx)
	}

	status := healthUp
	for _, c := range components {
		if c.Status != healthUp {
			status = healthDown
		}
	}

	h.respond(w, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probeDB(ctx context.Context) CompStatus {
	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: healthDown}
	}
	return CompStatus{Status: healthUp, Latency: time.Since(start).String()}
}

func (h *HealthHandler) probeSchema(ctx context.Context) CompStatus {
	v, err := h.schema.Version(ctx)
	if err != nil {
		return CompStatus{Status: healthDown}
	}
	return CompStatus{Status: healthUp, Version: &v}
}

func (h *HealthHandler) respond(w http.ResponseWriter, resp HealthResponse) {
	code := http.StatusOK
	if resp.Status != healthUp {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
