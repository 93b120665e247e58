package corpus

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"nutrition-assistant/internal/lexical"
)

// ErrInvalidCorpus is returned when corpus data does not have the expected shape.
var ErrInvalidCorpus = errors.New("invalid corpus")

//go:embed data/faq.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func corpusSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	return schema, schemaErr
}

// ParseJSON validates data against the corpus schema and decodes it into
// entries, preserving file order.
func ParseJSON(data []byte) ([]lexical.Entry, error) {
	s, err := corpusSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile corpus schema: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCorpus, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidCorpus, strings.Join(msgs, "; "))
	}

	var entries []lexical.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCorpus, err)
	}
	return entries, nil
}

// MarshalJSON encodes entries in the same format ParseJSON reads.
func MarshalJSON(entries []lexical.Entry) ([]byte, error) {
	if entries == nil {
		entries = []lexical.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal corpus: %w", err)
	}
	return append(data, '\n'), nil
}
