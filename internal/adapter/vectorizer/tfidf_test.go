package vectorizer

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"examhelper/internal/domain"
)

func testChunks() []domain.Chunk {
	return []domain.Chunk{
		{Text: "arithmetic logic unit performs calculations", QID: "1 (a)"},
		{Text: "random access memory holds data temporarily", QID: "1 (b)"},
		{Text: "the control unit decodes instructions", QID: "2"},
	}
}

func TestFit_EmptyChunks(t *testing.T) {
	_, _, err := Fit(nil)
	if !errors.Is(err, ErrNoChunks) {
		t.Errorf("expected ErrNoChunks, got %v", err)
	}
}

func TestFit_RowPerChunk(t *testing.T) {
	chunks := testChunks()
	model, matrix, err := Fit(chunks)
	if err != nil {
		t.Fatal(err)
	}
	if len(matrix) != len(chunks) {
		t.Errorf("matrix rows = %d, want %d", len(matrix), len(chunks))
	}
	if model.VocabularySize() == 0 {
		t.Error("expected non-empty vocabulary")
	}
}

func TestFit_RowsAreL2Normalized(t *testing.T) {
	_, matrix, err := Fit(testChunks())
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range matrix {
		if got := Dot(row, row); math.Abs(got-1) > 1e-9 {
			t.Errorf("row %d self-similarity = %f, want 1", i, got)
		}
	}
}

func TestTransform_MatchingChunkScoresHighest(t *testing.T) {
	chunks := testChunks()
	model, matrix, err := Fit(chunks)
	if err != nil {
		t.Fatal(err)
	}

	query := model.Transform("arithmetic logic unit")
	best, bestScore := -1, 0.0
	for i, row := range matrix {
		if s := Dot(query, row); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best != 0 {
		t.Errorf("best match = chunk %d (score %f), want chunk 0", best, bestScore)
	}
}

func TestTransform_OutOfVocabularyIsZero(t *testing.T) {
	model, _, err := Fit(testChunks())
	if err != nil {
		t.Fatal(err)
	}
	vec := model.Transform("photosynthesis chlorophyll")
	if len(vec.Indices) != 0 {
		t.Errorf("OOV query should produce an empty vector, got %+v", vec)
	}
}

func TestFit_Deterministic(t *testing.T) {
	chunks := testChunks()
	_, m1, err := Fit(chunks)
	if err != nil {
		t.Fatal(err)
	}
	_, m2, err := Fit(chunks)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m1, m2) {
		t.Error("repeated fits over the same corpus diverged")
	}
}

func TestNgrams_BigramsAndStopwords(t *testing.T) {
	grams := ngrams("the control unit")

	want := map[string]bool{"control": true, "unit": true, "control unit": true}
	if len(grams) != len(want) {
		t.Fatalf("ngrams = %v, want %v", grams, want)
	}
	for _, g := range grams {
		if !want[g] {
			t.Errorf("unexpected gram %q", g)
		}
	}
}

func TestNgrams_AppliesNormalization(t *testing.T) {
	grams := ngrams("real - time")

	found := false
	for _, g := range grams {
		if g == "real" {
			found = true
		}
	}
	if !found {
		t.Errorf("normalized real-time should tokenize to its words, got %v", grams)
	}
}
