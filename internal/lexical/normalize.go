// Package lexical implements the deterministic question matcher used when the
// generative model cannot answer: ASCII normalization, stop-word filtered
// tokenization, a composite exact/containment/overlap score and a single
// best-match selection above a fixed confidence threshold.
package lexical

import "strings"

// Normalize lowercases text and reduces it to ASCII letters, digits and single
// interior spaces. Any other rune, non-ASCII letters included, acts as a
// separator. The result is empty when nothing is retained.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var builder strings.Builder
	builder.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && builder.Len() > 0 {
				builder.WriteByte(' ')
			}
			pendingSpace = false
			builder.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return builder.String()
}
