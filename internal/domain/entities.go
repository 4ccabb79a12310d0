package domain

// PaperType values distinguish the two document kinds in a paper corpus.
const (
	PaperTypeQP = "qp"
	PaperTypeMS = "ms"
)

// Chunk is the retrieval unit: a contiguous slice of a source document,
// keyed by the question identifier detected at its start. Chunks are
// created once during indexing and never mutated; a reindex replaces
// the whole collection.
type Chunk struct {
	Text      string `json:"text"`
	Source    string `json:"source"`
	QID       string `json:"qid,omitempty"`
	PaperID   string `json:"paper_id,omitempty"`
	PaperType string `json:"paper_type,omitempty"`
}

// ScoredChunk pairs a chunk with its combined retrieval score.
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// Answer is the two-section response the system produces, either from a
// generation back-end or from the deterministic formatter.
type Answer struct {
	Exact string `json:"exact_answer"`
	Short string `json:"short_explanation"`
}
