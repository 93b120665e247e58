package lexical

import (
	"sort"
	"sync/atomic"
)

// Match describes the winning entry of a retrieval.
type Match struct {
	Answer   string `json:"answer"`
	Question string `json:"question"`
	// Position is the entry's index in corpus order.
	Position int     `json:"position"`
	Score    float64 `json:"score"`
}

// Engine answers free-text queries from an indexed corpus.
//
// The zero value is uninitialized and never matches. Initialize may be called
// again at any time: the new index is built off to the side and swapped in
// atomically, so concurrent Retrieve calls see either the old or the new
// corpus, never a mix. Retrieve and Best are safe for concurrent use.
type Engine struct {
	index atomic.Pointer[[]IndexedEntry]
}

// NewEngine returns an engine indexed over entries.
func NewEngine(entries []Entry) *Engine {
	e := &Engine{}
	e.Initialize(entries)
	return e
}

// Initialize indexes entries and replaces the current index.
func (e *Engine) Initialize(entries []Entry) {
	index := BuildIndex(entries)
	e.index.Store(&index)
}

// Len returns the number of indexed entries.
func (e *Engine) Len() int {
	index := e.index.Load()
	if index == nil {
		return 0
	}
	return len(*index)
}

// Retrieve returns the verbatim answer of the best entry for query, or false
// when no entry reaches ConfidenceThreshold.
func (e *Engine) Retrieve(query string) (string, bool) {
	m, ok := e.Best(query)
	if !ok {
		return "", false
	}
	return m.Answer, true
}

// Best returns the winning entry with its score. Entries are scanned in corpus
// order and only a strictly higher score replaces the current best, so the
// earliest entry wins ties.
func (e *Engine) Best(query string) (Match, bool) {
	index := e.index.Load()
	if index == nil {
		return Match{}, false
	}

	q := PrepareQuery(query)
	if q.Empty() {
		return Match{}, false
	}

	best := -1
	bestScore := 0.0
	entries := *index
	for i := range entries {
		score := Score(q, &entries[i])
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 || bestScore < ConfidenceThreshold {
		return Match{}, false
	}

	return Match{
		Answer:   entries[best].Answer,
		Question: entries[best].Question,
		Position: best,
		Score:    bestScore,
	}, true
}

// Ranked is one scored entry of a Rank result.
type Ranked struct {
	Match
	Breakdown Breakdown `json:"breakdown"`
}

// Rank scores every entry against query and returns those with a positive
// score, highest first. Equal scores keep corpus order. The threshold is not
// applied.
func (e *Engine) Rank(query string) []Ranked {
	index := e.index.Load()
	if index == nil {
		return nil
	}

	q := PrepareQuery(query)
	if q.Empty() {
		return nil
	}

	var ranked []Ranked
	entries := *index
	for i := range entries {
		b := Explain(q, &entries[i])
		if b.Total <= 0 {
			continue
		}
		ranked = append(ranked, Ranked{
			Match: Match{
				Answer:   entries[i].Answer,
				Question: entries[i].Question,
				Position: i,
				Score:    b.Total,
			},
			Breakdown: b,
		})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})
	return ranked
}
