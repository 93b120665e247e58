package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutrition-assistant/internal/corpus"
	"nutrition-assistant/internal/lexical"
	"nutrition-assistant/internal/service"
	"nutrition-assistant/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func newTestDeps(t *testing.T, chatService service.ChatService) *Deps {
	t.Helper()
	entries, err := corpus.Default()
	if err != nil {
		t.Fatalf("corpus.Default() error = %v", err)
	}
	return &Deps{
		ChatService:    chatService,
		Engine:         lexical.NewEngine(entries),
		CorpusProvider: corpus.EmbeddedProvider{},
	}
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(newTestDeps(t, mocks.NewMockChatService(ctrl)))

	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(newTestDeps(t, mocks.NewMockChatService(ctrl)))

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "POST /api/chat exists",
			method:     http.MethodPost,
			path:       "/api/chat",
			wantStatus: http.StatusBadRequest, // Bad request due to invalid body, but route exists
		},
		{
			name:       "GET /api/chat method not allowed",
			method:     http.MethodGet,
			path:       "/api/chat",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "POST /api/faq/match",
			method:     http.MethodPost,
			path:       "/api/faq/match",
			body:       `{"query":"what time is it"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /api/faq/reload",
			method:     http.MethodPost,
			path:       "/api/faq/reload",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /api/health",
			method:     http.MethodGet,
			path:       "/api/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_HealthWithEmptyEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newTestDeps(t, mocks.NewMockChatService(ctrl))
	deps.Engine = lexical.NewEngine(nil)
	router := NewRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /api/health status = %v, want %v", w.Code, http.StatusServiceUnavailable)
	}
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chatService := mocks.NewMockChatService(ctrl)
	chatService.EXPECT().ProcessChat(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req service.ChatRequest) (service.ChatResponse, error) { panic("boom") },
	)
	router := NewRouter(newTestDeps(t, chatService))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("panicking handler status = %v, want %v", w.Code, http.StatusInternalServerError)
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(newTestDeps(t, mocks.NewMockChatService(ctrl)))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Router should apply request logger middleware")
	}
}
