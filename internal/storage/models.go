package storage

import "time"

// FAQRecord is one stored question/answer pair.
type FAQRecord struct {
	ID        string // UUID
	Position  int    // corpus order, 0-based
	Question  string
	Answer    string
	CreatedAt time.Time
}
