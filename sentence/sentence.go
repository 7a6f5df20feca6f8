// Package sentence segments plain text into sentences for the summarizer's
// chunking pass and the timeline extractor's event scoping.
package sentence

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/sentences"
)

// Split returns the trimmed, non-empty sentences of text in order.
func Split(text string) []string {
	var out []string
	tokens := sentences.FromString(text)
	for tokens.Next() {
		s := strings.TrimSpace(tokens.Value())
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Chunk groups sentences into chunks no longer than maxLen characters,
// never breaking inside a sentence. A single sentence longer than maxLen
// becomes its own chunk rather than being split mid-sentence.
func Chunk(text string, maxLen int) []string {
	if maxLen <= 0 || len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	var b strings.Builder
	for _, s := range Split(text) {
		if b.Len() > 0 && b.Len()+1+len(s) > maxLen {
			chunks = append(chunks, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	if len(chunks) == 0 {
		return []string{text}
	}
	return chunks
}
