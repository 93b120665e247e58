package lexical

import "strings"

// Score weights. The values are tuned against the FAQ corpus; changing them
// changes which answers are returned.
const (
	ExactMatchBonus   = 120.0
	ContainmentBonus  = 40.0
	OverlapWeight     = 70.0
	OverlapCountBonus = 10.0
	ShortQueryBonus   = 12.0

	// ConfidenceThreshold is the minimum score a best candidate needs.
	ConfidenceThreshold = 24.0

	MinOverlapForCountBonus = 3
	ShortQueryMaxTokens     = 4
	MinOverlapForShortBonus = 2
)

// Query is a prepared query: its normalized text and token list.
type Query struct {
	Normalized string
	Tokens     []string
	tokenSet   map[string]struct{}
}

// PrepareQuery normalizes and tokenizes raw query text once so it can be
// scored against many entries.
func PrepareQuery(text string) Query {
	normalized := Normalize(text)
	q := Query{Normalized: normalized}
	if normalized == "" {
		return q
	}
	q.Tokens = tokensFromNormalized(normalized)
	q.tokenSet = make(map[string]struct{}, len(q.Tokens))
	for _, token := range q.Tokens {
		q.tokenSet[token] = struct{}{}
	}
	return q
}

// Empty reports whether the query normalized to nothing.
func (q Query) Empty() bool {
	return q.Normalized == ""
}

// Breakdown lists the components of a score.
type Breakdown struct {
	Exact       float64 `json:"exact"`
	Containment float64 `json:"containment"`
	// Overlap counts every query token, repeats included, that appears in
	// the entry's token set.
	Overlap int `json:"overlap"`
	// Union is the size of the combined distinct token set, at least one.
	Union       int     `json:"union"`
	OverlapTerm float64 `json:"overlap_term"`
	CountBonus  float64 `json:"count_bonus"`
	ShortBonus  float64 `json:"short_bonus"`
	Total       float64 `json:"total"`
}

// Score computes the composite similarity between a prepared query and an
// indexed entry.
func Score(q Query, e *IndexedEntry) float64 {
	return Explain(q, e).Total
}

// Explain computes the score of e for q component by component.
func Explain(q Query, e *IndexedEntry) Breakdown {
	var b Breakdown

	if q.Normalized == e.NormalizedQuestion {
		b.Exact = ExactMatchBonus
	}
	// an empty question is a substring of everything; it must stay unreachable
	if e.NormalizedQuestion != "" &&
		(strings.Contains(e.NormalizedQuestion, q.Normalized) || strings.Contains(q.Normalized, e.NormalizedQuestion)) {
		b.Containment = ContainmentBonus
	}

	for _, token := range q.Tokens {
		if e.Contains(token) {
			b.Overlap++
		}
	}

	b.Union = len(q.tokenSet)
	for token := range e.tokenSet {
		if _, ok := q.tokenSet[token]; !ok {
			b.Union++
		}
	}
	if b.Union < 1 {
		b.Union = 1
	}

	// multiply before dividing so integral ratios stay exact
	b.OverlapTerm = float64(b.Overlap) * OverlapWeight / float64(b.Union)

	if b.Overlap >= MinOverlapForCountBonus {
		b.CountBonus = OverlapCountBonus
	}
	if len(q.Tokens) <= ShortQueryMaxTokens && b.Overlap >= MinOverlapForShortBonus {
		b.ShortBonus = ShortQueryBonus
	}

	b.Total = b.Exact + b.Containment + b.OverlapTerm + b.CountBonus + b.ShortBonus
	return b
}
