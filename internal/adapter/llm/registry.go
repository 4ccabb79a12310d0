package llm

import (
	"fmt"
	"sort"
	"strings"

	"examhelper/internal/port"
)

// constructors map provider names to back-end factories. Dispatch is
// validated here at the boundary; the answer pipeline only ever sees a
// port.Generator.
var constructors = map[string]func(model string) port.Generator{
	"openai": func(model string) port.Generator { return NewOpenAI(model) },
	"groq":   func(model string) port.Generator { return NewGroq(model) },
}

// New returns the Generator for a provider name, case-insensitively.
func New(provider, model string) (port.Generator, error) {
	ctor, ok := constructors[strings.ToLower(provider)]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (have: %s)", provider, strings.Join(Providers(), ", "))
	}
	return ctor(model), nil
}

// Providers lists the registered provider names, sorted.
func Providers() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
