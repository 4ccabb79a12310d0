package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerate_MissingAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	c := NewGroq("test-model")
	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error without API key")
	}
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("error type %T, want *GenerationError", err)
	}
	if gerr.Provider != "groq" {
		t.Errorf("provider = %q, want groq", gerr.Provider)
	}
}

func TestGenerate_ReturnsOutputText(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"output_text": "Exact Answer: the ALU"}`))
	}))
	defer srv.Close()

	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_BASE_URL", srv.URL)

	c := NewGroq("test-model")
	text, err := c.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Exact Answer: the ALU" {
		t.Errorf("text = %q", text)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestGenerate_ClientErrorDoesNotRetry(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, `{"error": "bad request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", srv.URL)

	c := NewOpenAI("test-model")
	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "api error 400") {
		t.Errorf("err = %v", err)
	}
	if requests != 1 {
		t.Errorf("made %d requests, want 1", requests)
	}
}

func TestGenerate_EmptyOutputFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"output": []}`))
	}))
	defer srv.Close()

	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_BASE_URL", srv.URL)

	c := NewGroq("test-model")
	if _, err := c.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty output")
	}
}

func TestExtractOutputText_WalksOutputArray(t *testing.T) {
	resp := generateResponse{
		Output: []outputMessage{
			{Type: "reasoning", Content: []outputContent{{Type: "output_text", Text: "ignored"}}},
			{Type: "message", Content: []outputContent{
				{Type: "output_text", Text: "first"},
				{Type: "refusal", Text: "skipped"},
				{Type: "output_text", Text: "second"},
			}},
		},
	}
	if got := extractOutputText(resp); got != "first\nsecond" {
		t.Errorf("got %q, want %q", got, "first\nsecond")
	}
}

func TestExtractOutputText_PrefersAggregateField(t *testing.T) {
	resp := generateResponse{
		OutputText: "aggregate",
		Output:     []outputMessage{{Type: "message", Content: []outputContent{{Type: "output_text", Text: "walked"}}}},
	}
	if got := extractOutputText(resp); got != "aggregate" {
		t.Errorf("got %q, want %q", got, "aggregate")
	}
}
