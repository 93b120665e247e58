package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_reinitializer.go -package=mocks nutrition-assistant/internal/handlers Reinitializer

import (
	"net/http"

	"nutrition-assistant/internal/contextutil"
	"nutrition-assistant/internal/corpus"
	"nutrition-assistant/internal/lexical"
)

// Reinitializer replaces the engine's index.
type Reinitializer interface {
	Initialize(entries []lexical.Entry)
	Len() int
}

// ReloadHandler handles HTTP requests for reloading the FAQ corpus.
type ReloadHandler struct {
	provider corpus.Provider
	engine   Reinitializer
}

// NewReloadHandler creates a new ReloadHandler.
func NewReloadHandler(provider corpus.Provider, engine Reinitializer) *ReloadHandler {
	return &ReloadHandler{
		provider: provider,
		engine:   engine,
	}
}

// ReloadResponse represents the response from the reload endpoint.
type ReloadResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

// ServeHTTP reloads the corpus from the configured provider. On failure the
// current index stays in place.
func (h *ReloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	logger.InfoContext(ctx, "corpus reload triggered via API")

	entries, err := h.provider.Load(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load corpus, keeping current index", "error", err, "entries", h.engine.Len())
		writeError(w, http.StatusInternalServerError, "Failed to load corpus")
		return
	}

	h.engine.Initialize(entries)
	logger.InfoContext(ctx, "corpus reloaded", "entries", len(entries))

	writeJSON(ctx, w, http.StatusOK, ReloadResponse{
		Status:  "reloaded",
		Entries: len(entries),
	})
}
