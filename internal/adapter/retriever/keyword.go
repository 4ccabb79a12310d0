package retriever

import (
	"sort"
	"strings"

	"examhelper/internal/adapter/analyzer"
)

// Fallback window sizing for scoring raw mark-scheme text when no
// prebuilt index exists.
const (
	fallbackChunkSize = 800
	fallbackOverlap   = 120
)

// KeywordScorer is the slower no-index path: it slices raw mark-scheme
// text into overlapping character windows and ranks them by token-set
// overlap with the question. It needs no fitted model, only the text.
type KeywordScorer struct{}

func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{}
}

// BestChunks returns up to maxChunks positive-scoring windows of the
// mark-scheme text, best first.
func (s *KeywordScorer) BestChunks(questionText, msText string, maxChunks int) []string {
	queryTokens := analyzer.MatchTokens(questionText)
	windows := windowText(msText, fallbackChunkSize, fallbackOverlap)

	type scoredWindow struct {
		score float64
		text  string
	}
	scored := make([]scoredWindow, 0, len(windows))
	for _, w := range windows {
		scored = append(scored, scoredWindow{
			score: jaccard(queryTokens, analyzer.MatchTokens(w)),
			text:  w,
		})
	}
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})

	var results []string
	for _, sw := range scored {
		if len(results) == maxChunks {
			break
		}
		if sw.score <= 0 {
			continue
		}
		results = append(results, sw.text)
	}
	return results
}

func windowText(text string, size, overlap int) []string {
	var windows []string
	start := 0
	for start < len(text) {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		if w := strings.TrimSpace(text[start:end]); w != "" {
			windows = append(windows, w)
		}
		if end == len(text) {
			break
		}
		start = end - overlap
		if start < 0 {
			start = 0
		}
	}
	return windows
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
