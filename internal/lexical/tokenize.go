package lexical

import "strings"

// minTokenLength is exclusive: only tokens longer than this survive.
const minTokenLength = 2

var stopwords = map[string]struct{}{
	// articles and connectives
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "nor": {}, "so": {}, "yet": {},
	"for": {}, "of": {}, "to": {}, "in": {}, "on": {}, "at": {}, "by": {}, "as": {}, "if": {},
	"with": {}, "from": {}, "into": {}, "about": {}, "than": {}, "then": {}, "also": {}, "just": {},
	"any": {}, "some": {}, "not": {}, "no": {}, "yes": {}, "there": {}, "here": {},
	// pronouns and determiners
	"i": {}, "me": {}, "my": {}, "mine": {}, "we": {}, "us": {}, "our": {}, "ours": {},
	"you": {}, "your": {}, "yours": {}, "he": {}, "him": {}, "his": {}, "she": {}, "her": {},
	"hers": {}, "it": {}, "its": {}, "they": {}, "them": {}, "their": {}, "theirs": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "whose": {}, "when": {}, "where": {}, "why": {}, "how": {},
	// auxiliaries
	"is": {}, "am": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"do": {}, "does": {}, "did": {}, "have": {}, "has": {}, "had": {},
	"can": {}, "could": {}, "should": {}, "would": {}, "will": {}, "shall": {}, "may": {}, "might": {}, "must": {},
}

// IsStopword reports whether token is excluded from token lists.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// Tokenize normalizes text and returns its content words in source order.
// Duplicates are kept. Words of two characters or fewer and stop words are
// dropped. The slice is freshly allocated on every call.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return tokensFromNormalized(normalized)
}

func tokensFromNormalized(normalized string) []string {
	words := strings.Split(normalized, " ")
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) <= minTokenLength {
			continue
		}
		if IsStopword(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
