package analyzer

import "regexp"

var (
	hyphenRealTime = regexp.MustCompile(`(?i)\breal\s*-\s*time\b`)
	spacedRealTime = regexp.MustCompile(`(?i)\breal\s+time\b`)
)

// Normalize canonicalizes hyphenation variants that affect retrieval.
// It is idempotent and must be applied identically to corpus text at
// build time and to query text at query time, so the vectorizer sees
// the same surface form on both sides. New canonicalization rules
// belong here, not in the tokenizers.
func Normalize(text string) string {
	text = hyphenRealTime.ReplaceAllString(text, "real-time")
	text = spacedRealTime.ReplaceAllString(text, "real-time")
	return text
}
