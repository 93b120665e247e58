package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutrition-assistant/internal/lexical"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	loaded := lexical.NewEngine([]lexical.Entry{{Question: "Is rice healthy?", Answer: "Brown rice has more fiber."}})

	tests := []struct {
		name          string
		method        string
		engine        Sizer
		llmConfigured bool
		wantStatus    int
		wantStatusStr string
		wantEntries   int
		wantLLM       string
	}{
		{
			name:          "healthy with corpus",
			method:        http.MethodGet,
			engine:        loaded,
			llmConfigured: true,
			wantStatus:    http.StatusOK,
			wantStatusStr: "healthy",
			wantEntries:   1,
			wantLLM:       "true",
		},
		{
			name:          "healthy without LLM",
			method:        http.MethodGet,
			engine:        loaded,
			wantStatus:    http.StatusOK,
			wantStatusStr: "healthy",
			wantEntries:   1,
			wantLLM:       "false",
		},
		{
			name:          "empty corpus",
			method:        http.MethodGet,
			engine:        lexical.NewEngine(nil),
			wantStatus:    http.StatusServiceUnavailable,
			wantStatusStr: "unhealthy",
			wantLLM:       "false",
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			engine:     loaded,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.engine, tt.llmConfigured)

			req := httptest.NewRequest(tt.method, "/api/health", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantStatusStr == "" {
				return
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Status != tt.wantStatusStr {
				t.Errorf("status = %v, want %v", resp.Status, tt.wantStatusStr)
			}
			if resp.Entries != tt.wantEntries {
				t.Errorf("entries = %v, want %v", resp.Entries, tt.wantEntries)
			}
			if resp.Checks["llm_configured"] != tt.wantLLM {
				t.Errorf("llm_configured = %v, want %v", resp.Checks["llm_configured"], tt.wantLLM)
			}
			if resp.Timestamp == "" {
				t.Error("timestamp should be set")
			}
		})
	}
}
