package chunker

import (
	"strings"
	"testing"
)

func TestSplit_NoQuestionMarkers(t *testing.T) {
	c := New()
	text := "  General notes about the marking process.  "

	chunks := c.Split(text)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != strings.TrimSpace(text) {
		t.Errorf("chunk text = %q, want trimmed input", chunks[0].Text)
	}
	if chunks[0].QID != "" {
		t.Errorf("expected empty qid, got %q", chunks[0].QID)
	}
}

func TestSplit_TwoQuestionParts(t *testing.T) {
	c := New()
	text := "1 (a) Define a register.\n1 (b) (i) State its purpose."

	chunks := c.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].QID != "1 (a)" {
		t.Errorf("first qid = %q, want %q", chunks[0].QID, "1 (a)")
	}
	if chunks[1].QID != "1 (b) (i)" {
		t.Errorf("second qid = %q, want %q", chunks[1].QID, "1 (b) (i)")
	}
	if !strings.Contains(chunks[0].Text, "Define a register.") {
		t.Errorf("first chunk text = %q", chunks[0].Text)
	}
	if !strings.Contains(chunks[1].Text, "State its purpose.") {
		t.Errorf("second chunk text = %q", chunks[1].Text)
	}
}

func TestSplit_NumberOnlyBoundary(t *testing.T) {
	c := New()
	text := "2 Explain pipelining.\n3 Describe caching."

	chunks := c.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].QID != "2" || chunks[1].QID != "3" {
		t.Errorf("qids = %q, %q", chunks[0].QID, chunks[1].QID)
	}
}

// Boundary matching is deliberately permissive: with newlines lost to
// PDF extraction, a qid in running text still starts a chunk.
func TestSplit_BoundaryWithoutLineStart(t *testing.T) {
	c := New()
	text := "preamble\n1 (a) first answer text\n1 (b) second answer text"

	chunks := c.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	for i, want := range []string{"1 (a)", "1 (b)"} {
		if chunks[i].QID != want {
			t.Errorf("chunk %d qid = %q, want %q", i, chunks[i].QID, want)
		}
	}
}

func TestSplit_ContiguousCoverage(t *testing.T) {
	c := New()
	text := "1 (a) alpha\n2 (b) beta\n3 gamma"

	chunks := c.Split(text)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	// Each chunk spans boundary to boundary, in document order.
	joined := chunks[0].Text + "\n" + chunks[1].Text + "\n" + chunks[2].Text
	if joined != strings.TrimSpace(text) {
		t.Errorf("chunks do not reconstruct boundary coverage: %q", joined)
	}
}

func TestSplit_RomanNumerals(t *testing.T) {
	c := New()
	text := "4 (c) (iv) Justify your answer.\n5 next question"

	chunks := c.Split(text)
	if chunks[0].QID != "4 (c) (iv)" {
		t.Errorf("qid = %q, want %q", chunks[0].QID, "4 (c) (iv)")
	}
}

func TestSplit_DropsEmptyChunks(t *testing.T) {
	c := New()
	// The first boundary has nothing but whitespace before the next.
	text := "1   \n2 real content here"

	chunks := c.Split(text)
	for _, ch := range chunks {
		if strings.TrimSpace(ch.Text) == "" {
			t.Errorf("empty chunk survived: %+v", ch)
		}
	}
}
