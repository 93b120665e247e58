package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"nutrition-assistant/internal/corpus"
	"nutrition-assistant/internal/handlers"
	"nutrition-assistant/internal/lexical"
	"nutrition-assistant/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService    service.ChatService
	Engine         *lexical.Engine
	CorpusProvider corpus.Provider
	LLMConfigured  bool
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	chatHandler := handlers.NewChatHandler(deps.ChatService)
	faqHandler := handlers.NewFAQHandler(deps.Engine)
	reloadHandler := handlers.NewReloadHandler(deps.CorpusProvider, deps.Engine)
	healthHandler := handlers.NewHealthHandler(deps.Engine, deps.LLMConfigured)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Method(http.MethodPost, "/faq/match", faqHandler)
		r.Method(http.MethodPost, "/faq/reload", reloadHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
