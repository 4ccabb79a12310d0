package analyzer

import "testing"

func TestExpandQuery_AppendsExpansion(t *testing.T) {
	q := "What is the ALU?"
	got := ExpandQuery(q, QueryTerms(q))
	want := "What is the ALU? arithmetic logic unit"
	if got != want {
		t.Errorf("ExpandQuery = %q, want %q", got, want)
	}
}

func TestExpandQuery_NoAcronymUnchanged(t *testing.T) {
	q := "Describe paging in virtual memory"
	if got := ExpandQuery(q, QueryTerms(q)); got != q {
		t.Errorf("ExpandQuery changed a query with no acronyms: %q", got)
	}
}

func TestExpandQuery_MultipleAcronymsSortedOrder(t *testing.T) {
	q := "compare RAM and ROM and the CPU"
	got := ExpandQuery(q, QueryTerms(q))
	// Appended in sorted acronym order: cpu, ram, rom.
	want := q + " central processing unit random access memory read only memory"
	if got != want {
		t.Errorf("ExpandQuery = %q, want %q", got, want)
	}
}

func TestAcronymExpansion(t *testing.T) {
	if phrase, ok := AcronymExpansion("cu"); !ok || phrase != "control unit" {
		t.Errorf("AcronymExpansion(cu) = %q, %v", phrase, ok)
	}
	if _, ok := AcronymExpansion("gpu"); ok {
		t.Error("unknown acronym should not expand")
	}
}
