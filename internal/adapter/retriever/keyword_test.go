package retriever

import (
	"strings"
	"testing"
)

func TestBestChunks_RanksMatchingWindowFirst(t *testing.T) {
	s := NewKeywordScorer()
	msText := strings.Repeat("unrelated filler text about nothing in particular. ", 20) +
		"A register is a small fast storage location inside the processor. " +
		strings.Repeat("more filler content follows here afterwards again. ", 20)

	chunks := s.BestChunks("Define a register in the processor", msText, 2)
	if len(chunks) == 0 {
		t.Fatal("expected at least one chunk")
	}
	if !strings.Contains(chunks[0], "register") {
		t.Errorf("top chunk does not mention the query subject: %q", chunks[0])
	}
}

func TestBestChunks_NoOverlapReturnsNothing(t *testing.T) {
	s := NewKeywordScorer()
	chunks := s.BestChunks("quantum entanglement", "registers hold data in the processor", 3)
	if len(chunks) != 0 {
		t.Errorf("expected no chunks for zero overlap, got %d", len(chunks))
	}
}

func TestBestChunks_RespectsLimit(t *testing.T) {
	s := NewKeywordScorer()
	msText := strings.Repeat("the processor executes instructions stored in memory. ", 100)

	chunks := s.BestChunks("processor instructions", msText, 2)
	if len(chunks) > 2 {
		t.Errorf("expected at most 2 chunks, got %d", len(chunks))
	}
}

func TestWindowText_OverlapAndCoverage(t *testing.T) {
	text := strings.Repeat("abcdefghij", 200) // 2000 chars
	windows := windowText(text, 800, 120)

	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}
	// Consecutive windows share the overlap region.
	tail := windows[0][len(windows[0])-120:]
	if !strings.HasPrefix(windows[1], tail) {
		t.Error("second window does not start with the first window's overlap")
	}
}

func TestJaccard(t *testing.T) {
	a := map[string]struct{}{"register": {}, "processor": {}}
	b := map[string]struct{}{"register": {}, "memory": {}}

	got := jaccard(a, b)
	if want := 1.0 / 3.0; got != want {
		t.Errorf("jaccard = %f, want %f", got, want)
	}
	if jaccard(nil, b) != 0 {
		t.Error("empty set should score 0")
	}
}
