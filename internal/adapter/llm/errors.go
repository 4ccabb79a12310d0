package llm

import "fmt"

// GenerationError wraps any failure of a generation back-end: missing
// credentials, transport failures, rate limiting, malformed responses.
// It is never fatal to an answer operation; callers recover by falling
// back to the deterministic formatter.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func genErr(provider string, format string, args ...any) *GenerationError {
	return &GenerationError{Provider: provider, Err: fmt.Errorf(format, args...)}
}
