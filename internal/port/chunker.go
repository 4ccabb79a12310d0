package port

import "examhelper/internal/domain"

type Chunker interface {
	Split(text string) []domain.Chunk
}
