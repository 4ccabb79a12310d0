package vectorizer

import (
	"encoding/json"
	"fmt"

	"examhelper/internal/domain"
)

type modelState struct {
	Terms  []string  `json:"terms"`
	IDF    []float64 `json:"idf"`
	Matrix Matrix    `json:"matrix"`
}

// Marshal serializes the fitted model and its matrix as one blob. The
// two halves are meaningless apart, so they share an artifact.
func Marshal(v *Vectorizer, m Matrix) ([]byte, error) {
	return json.Marshal(modelState{Terms: v.terms, IDF: v.idf, Matrix: m})
}

// Unmarshal restores a fitted model and matrix from Marshal output.
func Unmarshal(data []byte) (*Vectorizer, Matrix, error) {
	var state modelState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, nil, fmt.Errorf("decode vector model: %w", err)
	}
	if len(state.Terms) != len(state.IDF) {
		return nil, nil, fmt.Errorf("decode vector model: %d terms but %d idf weights", len(state.Terms), len(state.IDF))
	}

	v := &Vectorizer{
		vocab: make(map[string]int, len(state.Terms)),
		terms: state.Terms,
		idf:   state.IDF,
	}
	for i, term := range state.Terms {
		v.vocab[term] = i
	}
	return v, state.Matrix, nil
}

// MarshalChunks serializes the chunk collection as ordered, indented
// JSON so the artifact stays human-inspectable.
func MarshalChunks(chunks []domain.Chunk) ([]byte, error) {
	return json.MarshalIndent(chunks, "", "  ")
}

// UnmarshalChunks restores the ordered chunk collection.
func UnmarshalChunks(data []byte) ([]domain.Chunk, error) {
	var chunks []domain.Chunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return nil, fmt.Errorf("decode chunks: %w", err)
	}
	return chunks, nil
}
