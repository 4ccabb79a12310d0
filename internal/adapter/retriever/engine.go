package retriever

import (
	"fmt"
	"sort"
	"strings"

	"examhelper/internal/adapter/analyzer"
	"examhelper/internal/adapter/vectorizer"
	"examhelper/internal/domain"
	"examhelper/internal/port"
)

var _ port.Retriever = (*Engine)(nil)

// boostWeight caps the keyword-overlap contribution to a combined
// score. The boost scales linearly with the fraction of query terms
// found in a chunk, so it stays in [0, boostWeight].
const boostWeight = 0.2

// Engine scores a free-text question against a fitted vector index.
// It holds an immutable snapshot: chunk i is scored by matrix row i.
type Engine struct {
	chunks []domain.Chunk
	model  *vectorizer.Vectorizer
	matrix vectorizer.Matrix
}

// NewEngine wires a chunk collection to its fitted model. The row/chunk
// counts must agree or scores would silently attach to the wrong
// chunks, so a mismatch is rejected here rather than detected later.
func NewEngine(chunks []domain.Chunk, model *vectorizer.Vectorizer, matrix vectorizer.Matrix) (*Engine, error) {
	if len(chunks) != len(matrix) {
		return nil, fmt.Errorf("index mismatch: %d chunks but %d matrix rows", len(chunks), len(matrix))
	}
	return &Engine{chunks: chunks, model: model, matrix: matrix}, nil
}

// Query ranks chunks against the question text and returns up to topK
// of them, best first. Only strictly positive combined scores qualify;
// an empty result is a normal outcome, not an error. When qidFilter is
// set, candidates are restricted to chunks whose identifier equals it
// case-insensitively, with no fallback to an unfiltered search.
func (e *Engine) Query(questionText string, topK int, qidFilter string) []domain.Chunk {
	candidates := e.candidateIndexes(qidFilter)
	if len(candidates) == 0 {
		return nil
	}

	terms := analyzer.QueryTerms(questionText)
	expanded := analyzer.ExpandQuery(questionText, terms)
	queryVec := e.model.Transform(expanded)

	scored := make([]domain.ScoredChunk, 0, len(candidates))
	for _, i := range candidates {
		score := vectorizer.Dot(queryVec, e.matrix[i]) + keywordBoost(terms, e.chunks[i].Text)
		scored = append(scored, domain.ScoredChunk{Chunk: e.chunks[i], Score: score})
	}
	// Stable: ties keep candidate order so results are reproducible.
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	results := make([]domain.Chunk, 0, topK)
	for _, sc := range scored {
		if len(results) == topK {
			break
		}
		if sc.Score <= 0 {
			continue
		}
		results = append(results, sc.Chunk)
	}
	return results
}

func (e *Engine) candidateIndexes(qidFilter string) []int {
	indexes := make([]int, 0, len(e.chunks))
	if qidFilter == "" {
		for i := range e.chunks {
			indexes = append(indexes, i)
		}
		return indexes
	}

	want := strings.ToLower(strings.TrimSpace(qidFilter))
	for i := range e.chunks {
		if strings.ToLower(e.chunks[i].QID) == want {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// keywordBoost rewards chunks containing the query's terms verbatim.
// Acronym terms also hit on their expansion phrase, so "alu" matches a
// chunk that only spells out "arithmetic logic unit".
func keywordBoost(terms map[string]struct{}, chunkText string) float64 {
	if len(terms) == 0 {
		return 0
	}
	chunkLower := strings.ToLower(chunkText)
	hits := 0
	for t := range terms {
		if phrase, ok := analyzer.AcronymExpansion(t); ok {
			if strings.Contains(chunkLower, t) || strings.Contains(chunkLower, phrase) {
				hits++
			}
			continue
		}
		if strings.Contains(chunkLower, t) {
			hits++
		}
	}
	return boostWeight * float64(hits) / float64(len(terms))
}
