package port

import "examhelper/internal/domain"

// Retriever ranks chunks against a question. An empty result is a
// normal outcome (nothing matched, or nothing scored positive), never
// an error.
type Retriever interface {
	Query(questionText string, topK int, qidFilter string) []domain.Chunk
}
