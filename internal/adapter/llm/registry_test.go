package llm

import (
	"strings"
	"testing"
)

func TestNew_KnownProviders(t *testing.T) {
	for _, name := range []string{"openai", "groq", "OpenAI", "GROQ"} {
		gen, err := New(name, "test-model")
		if err != nil {
			t.Errorf("New(%q): %v", name, err)
			continue
		}
		if got := gen.Name(); got != strings.ToLower(name) {
			t.Errorf("New(%q).Name() = %q", name, got)
		}
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New("anthropic", "test-model")
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	for _, want := range []string{`"anthropic"`, "groq", "openai"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestProviders_Sorted(t *testing.T) {
	got := Providers()
	if len(got) != 2 || got[0] != "groq" || got[1] != "openai" {
		t.Errorf("Providers() = %v, want [groq openai]", got)
	}
}
