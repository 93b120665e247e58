package lexical

// Entry is one question/answer pair of the corpus.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// IndexedEntry is the precomputed, read-only form of an Entry.
type IndexedEntry struct {
	// Question is the original question text, kept for explain output.
	Question string
	// Answer is returned verbatim on a match.
	Answer string
	// NormalizedQuestion is Normalize(Question).
	NormalizedQuestion string
	// Tokens is Tokenize(Question), duplicates and order preserved.
	Tokens []string

	tokenSet map[string]struct{}
}

// Contains reports whether token occurs in the entry's token set.
func (e *IndexedEntry) Contains(token string) bool {
	_, ok := e.tokenSet[token]
	return ok
}

// BuildIndex indexes entries in corpus order. Entries whose question has no
// retained characters are kept; they index to empty values and can never
// reach the confidence threshold.
func BuildIndex(entries []Entry) []IndexedEntry {
	index := make([]IndexedEntry, 0, len(entries))
	for _, entry := range entries {
		normalized := Normalize(entry.Question)
		var tokens []string
		if normalized != "" {
			tokens = tokensFromNormalized(normalized)
		}

		tokenSet := make(map[string]struct{}, len(tokens))
		for _, token := range tokens {
			tokenSet[token] = struct{}{}
		}

		index = append(index, IndexedEntry{
			Question:           entry.Question,
			Answer:             entry.Answer,
			NormalizedQuestion: normalized,
			Tokens:             tokens,
			tokenSet:           tokenSet,
		})
	}
	return index
}
