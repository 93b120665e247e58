// Package corpus supplies the ordered question/answer pairs the lexical engine
// is built from: an embedded default FAQ, JSON or Markdown files, or the
// SQLite store.
package corpus

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nutrition-assistant/internal/lexical"
	"nutrition-assistant/internal/storage"
)

//go:embed data/faq.json
var defaultCorpus []byte

// Provider loads a corpus in its canonical order.
type Provider interface {
	Load(ctx context.Context) ([]lexical.Entry, error)
}

// Default returns the built-in nutrition FAQ.
func Default() ([]lexical.Entry, error) {
	entries, err := ParseJSON(defaultCorpus)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded corpus: %w", err)
	}
	return entries, nil
}

// EmbeddedProvider serves the built-in corpus.
type EmbeddedProvider struct{}

// Load returns the built-in corpus.
func (EmbeddedProvider) Load(ctx context.Context) ([]lexical.Entry, error) {
	return Default()
}

// FileProvider reads a corpus file, choosing the format by extension.
type FileProvider struct {
	Path string
}

// Load reads and parses the file.
func (p FileProvider) Load(ctx context.Context) ([]lexical.Entry, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", p.Path, err)
	}
	entries, err := Parse(p.Path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", p.Path, err)
	}
	return entries, nil
}

// Parse decodes data according to the extension of name.
func Parse(name string, data []byte) ([]lexical.Entry, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return ParseJSON(data)
	case ".md", ".markdown":
		return ParseMarkdown(data), nil
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidCorpus, filepath.Ext(name))
	}
}

// StoreProvider reads the corpus persisted in SQLite.
type StoreProvider struct {
	Store storage.FAQStore
}

// Load lists stored entries by position.
func (p StoreProvider) Load(ctx context.Context) ([]lexical.Entry, error) {
	records, err := p.Store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored corpus: %w", err)
	}
	entries := make([]lexical.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, lexical.Entry{Question: r.Question, Answer: r.Answer})
	}
	return entries, nil
}

// Import replaces the stored corpus with entries, keeping their order.
func Import(ctx context.Context, store storage.FAQStore, entries []lexical.Entry) error {
	records := make([]storage.FAQRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, storage.FAQRecord{Question: e.Question, Answer: e.Answer})
	}
	if err := store.ReplaceAll(ctx, records); err != nil {
		return fmt.Errorf("failed to import corpus: %w", err)
	}
	return nil
}
