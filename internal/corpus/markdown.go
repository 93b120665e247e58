package corpus

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"nutrition-assistant/internal/lexical"
)

const questionHeadingLevel = 2

// MarkdownParser reads FAQ documents where every top-level "## " heading is a
// question and the source between it and the next such heading is the answer.
type MarkdownParser struct {
	md goldmark.Markdown
}

// NewMarkdownParser creates a MarkdownParser.
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

type questionHeading struct {
	question  string
	lineStart int // offset of the first byte of the heading line
	bodyStart int // offset just past the heading
}

// Parse extracts entries in document order. Answers are the raw Markdown
// between headings with surrounding whitespace trimmed; content before the
// first question heading is ignored.
func (p *MarkdownParser) Parse(content []byte) []lexical.Entry {
	if len(content) == 0 {
		return nil
	}

	doc := p.md.Parser().Parse(text.NewReader(content))

	var headings []questionHeading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != questionHeadingLevel {
			continue
		}
		lines := heading.Lines()
		if lines.Len() == 0 {
			// "##" with no text: not a question
			continue
		}

		var question strings.Builder
		for i := 0; i < lines.Len(); i++ {
			if i > 0 {
				question.WriteByte(' ')
			}
			seg := lines.At(i)
			question.Write(bytes.TrimSpace(seg.Value(content)))
		}

		first := lines.At(0)
		last := lines.At(lines.Len() - 1)
		lineStart := lineStartOf(content, first.Start)
		// segments may or may not include their trailing newline
		lastByte := last.Stop
		if lastByte > last.Start {
			lastByte--
		}
		bodyStart := lineEndOf(content, lastByte)
		if isSetext(content[lineStart:first.Start]) {
			// skip the "---" underline
			bodyStart = lineEndOf(content, bodyStart)
		}

		headings = append(headings, questionHeading{
			question:  strings.TrimSpace(question.String()),
			lineStart: lineStart,
			bodyStart: bodyStart,
		})
	}

	entries := make([]lexical.Entry, 0, len(headings))
	for i, h := range headings {
		end := len(content)
		if i+1 < len(headings) {
			end = headings[i+1].lineStart
		}
		answer := ""
		if h.bodyStart < end {
			answer = string(bytes.TrimSpace(content[h.bodyStart:end]))
		}
		entries = append(entries, lexical.Entry{
			Question: h.question,
			Answer:   answer,
		})
	}
	return entries
}

// ParseMarkdown parses content with a default MarkdownParser.
func ParseMarkdown(content []byte) []lexical.Entry {
	return NewMarkdownParser().Parse(content)
}

func lineStartOf(content []byte, offset int) int {
	if i := bytes.LastIndexByte(content[:offset], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// lineEndOf returns the offset just past the newline ending the line that
// contains offset, or len(content) on the last line.
func lineEndOf(content []byte, offset int) int {
	if offset >= len(content) {
		return len(content)
	}
	if i := bytes.IndexByte(content[offset:], '\n'); i >= 0 {
		return offset + i + 1
	}
	return len(content)
}

// isSetext reports whether the heading prefix lacks the ATX "#" marker.
func isSetext(prefix []byte) bool {
	return !bytes.HasPrefix(bytes.TrimLeft(prefix, " "), []byte("#"))
}
