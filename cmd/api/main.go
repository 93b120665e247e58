package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutrition-assistant/internal/config"
	"nutrition-assistant/internal/corpus"
	"nutrition-assistant/internal/http"
	"nutrition-assistant/internal/lexical"
	"nutrition-assistant/internal/llm"
	"nutrition-assistant/internal/service"
	"nutrition-assistant/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, closeProvider, err := newProvider(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up corpus source: %v", err)
	}
	defer closeProvider()

	entries, err := provider.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load FAQ corpus: %v", err)
	}
	engine := lexical.NewEngine(entries)
	slog.Info("FAQ engine initialized", "source", cfg.CorpusSource, "entries", engine.Len())

	if cfg.CorpusWatch {
		watcher, err := corpus.NewWatcher(cfg.CorpusPath, engine.Initialize)
		if err != nil {
			log.Fatalf("Failed to watch corpus file: %v", err)
		}
		defer func() {
			_ = watcher.Close()
		}()
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("Corpus watcher stopped", "error", err)
			}
		}()
	}

	// The generative service is optional; without it every chat is answered
	// from the FAQ.
	var llmClient service.LLMClient
	if cfg.LLMConfigured() {
		llmClient = llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName, cfg.LLMTimeout)
		slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName, "timeout", cfg.LLMTimeout)
	} else {
		slog.Warn("LLM_BASE_URL not set, chat answers come from the FAQ only")
	}

	chatService := service.NewChatService(llmClient, engine, service.Options{
		FallbackEnabled: cfg.FallbackEnabled,
		FallbackMessage: cfg.FallbackMessage,
	})

	router := http.NewRouter(&http.Deps{
		ChatService:    chatService,
		Engine:         engine,
		CorpusProvider: provider,
		LLMConfigured:  cfg.LLMConfigured(),
	})

	addr := ":" + cfg.APIPort
	server := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("API server shutdown failed", "error", err)
		}
	}()

	slog.Info("Starting API server", "addr", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
	slog.Info("API server stopped")
}

// newProvider builds the corpus provider for the configured source. The
// returned func releases anything the provider holds open.
func newProvider(ctx context.Context, cfg *config.Config) (corpus.Provider, func(), error) {
	switch cfg.CorpusSource {
	case config.SourceFile:
		return corpus.ForPath(cfg.CorpusPath), func() {}, nil
	case config.SourceSQLite:
		db, err := storage.New(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			_ = db.Close()
		}
		if err := storage.Migrate(db); err != nil {
			closeDB()
			return nil, nil, err
		}
		repo := storage.NewFAQRepo(db)
		if err := seedStore(ctx, repo); err != nil {
			closeDB()
			return nil, nil, err
		}
		slog.Info("Database initialized", "path", cfg.DBPath)
		return corpus.StoreProvider{Store: repo}, closeDB, nil
	default:
		return corpus.EmbeddedProvider{}, func() {}, nil
	}
}

// seedStore imports the built-in corpus into an empty database.
func seedStore(ctx context.Context, store storage.FAQStore) error {
	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	entries, err := corpus.Default()
	if err != nil {
		return err
	}
	if err := corpus.Import(ctx, store, entries); err != nil {
		return err
	}
	slog.Info("Seeded empty database with built-in corpus", "entries", len(entries))
	return nil
}
