package chunker

import (
	"regexp"
	"strings"

	"examhelper/internal/domain"
)

// questionStartRe marks the start of an exam question: a question
// number, an optional lettered sub-part, and an optional roman-numeral
// sub-sub-part. It deliberately matches anywhere in the text, not just
// at line starts, because PDF extraction frequently loses newlines.
// The cost is the occasional false trigger on a number in running text;
// that permissiveness is part of the retrieval contract and must not be
// tightened.
var questionStartRe = regexp.MustCompile(`(?i)(?:^|\n)\s*(\d+)\s*(\([a-z]\))?\s*(\([ivx]+\))?`)

// QuestionChunker splits raw document text into question-addressable
// chunks.
type QuestionChunker struct{}

func New() *QuestionChunker {
	return &QuestionChunker{}
}

// Split cuts the text at every question-start match. Each chunk spans
// from one match start to the next (the last runs to the end of text).
// A document with no recognizable question start becomes a single chunk
// with an empty QID. Chunks that trim to nothing are dropped.
func (c *QuestionChunker) Split(text string) []domain.Chunk {
	matches := questionStartRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []domain.Chunk{{Text: strings.TrimSpace(text)}}
	}

	chunks := make([]domain.Chunk, 0, len(matches))
	for i, m := range matches {
		start := m[0]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		chunkText := strings.TrimSpace(text[start:end])
		if chunkText == "" {
			continue
		}
		chunks = append(chunks, domain.Chunk{
			Text: chunkText,
			QID:  formatQID(text, m),
		})
	}
	return chunks
}

// formatQID joins the matched groups space-separated, as written in the
// source text. Comparison against a query filter is case-insensitive,
// but the stored form is not normalized.
func formatQID(text string, m []int) string {
	parts := []string{text[m[2]:m[3]]}
	for _, g := range []int{4, 6} {
		if m[g] >= 0 {
			parts = append(parts, text[m[g]:m[g+1]])
		}
	}
	return strings.Join(parts, " ")
}
