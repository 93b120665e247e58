package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_matcher.go -package=mocks nutrition-assistant/internal/handlers Matcher

import (
	"encoding/json"
	"net/http"

	"nutrition-assistant/internal/contextutil"
	"nutrition-assistant/internal/lexical"
)

// Matcher finds the best FAQ entry for a query.
type Matcher interface {
	Best(query string) (lexical.Match, bool)
}

// FAQHandler answers queries directly from the FAQ corpus.
type FAQHandler struct {
	matcher Matcher
}

// NewFAQHandler creates a new FAQHandler.
func NewFAQHandler(matcher Matcher) *FAQHandler {
	return &FAQHandler{matcher: matcher}
}

// FAQMatchRequest represents the HTTP request payload for FAQ matching.
type FAQMatchRequest struct {
	Query string `json:"query"`
}

// FAQMatchResponse represents the HTTP response payload for FAQ matching.
// Score details are only present when explain is on.
type FAQMatchResponse struct {
	Matched  bool     `json:"matched"`
	Answer   string   `json:"answer,omitempty"`
	Question string   `json:"question,omitempty"`
	Position *int     `json:"position,omitempty"`
	Score    *float64 `json:"score,omitempty"`
}

// ServeHTTP handles HTTP requests for FAQ matching. A query without a
// confident match is answered with matched=false, not an error status.
func (h *FAQHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req FAQMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	explain := r.URL.Query().Get("explain") != "false"

	match, ok := h.matcher.Best(req.Query)
	if !ok {
		logger.DebugContext(ctx, "no confident FAQ match", "query_length", len(req.Query))
		writeJSON(ctx, w, http.StatusOK, FAQMatchResponse{Matched: false})
		return
	}

	logger.DebugContext(ctx, "FAQ match", "position", match.Position, "score", match.Score)
	resp := FAQMatchResponse{
		Matched: true,
		Answer:  match.Answer,
	}
	if explain {
		resp.Question = match.Question
		resp.Position = &match.Position
		resp.Score = &match.Score
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}
