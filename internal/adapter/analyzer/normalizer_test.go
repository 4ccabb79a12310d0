package analyzer

import "testing"

func TestNormalize_RealTimeVariants(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a real - time system", "a real-time system"},
		{"a real time system", "a real-time system"},
		{"a Real Time system", "a real-time system"},
		{"a real-time system", "a real-time system"},
		{"realtime is untouched", "realtime is untouched"},
		{"surreal time keeps its words", "surreal time keeps its words"},
	}

	for _, tt := range tests {
		got := Normalize(tt.input)
		if got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"real - time processing of real time data",
		"no variants here",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
