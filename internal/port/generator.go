package port

import "context"

// Generator is a text-generation back-end. Implementations wrap one
// provider each; callers must treat any error as recoverable and fall
// back to the deterministic formatter.
type Generator interface {
	// Generate produces raw model output for the prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name, for diagnostics.
	Name() string
}
