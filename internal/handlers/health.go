package handlers

import (
	"net/http"
	"strconv"
	"time"

	"nutrition-assistant/internal/contextutil"
)

// Sizer reports how many entries are indexed.
type Sizer interface {
	Len() int
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	engine        Sizer
	llmConfigured bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(engine Sizer, llmConfigured bool) *HealthHandler {
	return &HealthHandler{
		engine:        engine,
		llmConfigured: llmConfigured,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// Number of indexed FAQ entries
	Entries int `json:"entries"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// Returns 200 OK when the FAQ corpus is loaded and 503 Service Unavailable
// when it is empty. The generative service is optional and only reported.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	entries := h.engine.Len()
	checks := map[string]string{
		"corpus":         "ok",
		"llm_configured": strconv.FormatBool(h.llmConfigured),
	}
	var issues []string

	if entries == 0 {
		logger.WarnContext(ctx, "FAQ corpus is empty")
		checks["corpus"] = "empty"
		issues = append(issues, "corpus_empty")
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(ctx, w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Entries:   entries,
		Issues:    issues,
	})
}
