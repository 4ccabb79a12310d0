package analyzer

import (
	"regexp"
	"strings"
)

// queryNoiseTerms add no retrieval signal for this question bank. They
// are distinct from the general stopword list and filtered only from
// extracted query terms.
var queryNoiseTerms = map[string]struct{}{
	"purpose":  {},
	"function": {},
	"role":     {},
}

var (
	queryTokenRe = regexp.MustCompile(`[a-z0-9-]+`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9\s]`)

	matchStops = matchStopwords()
	baseStops  = baseStopwords()
)

// QueryTerms extracts the lowercase alphanumeric/hyphen terms of a
// question, dropping short tokens and domain-noise words. The result
// feeds acronym expansion and the keyword boost.
func QueryTerms(questionText string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, tok := range queryTokenRe.FindAllString(strings.ToLower(questionText), -1) {
		if len(tok) < 2 {
			continue
		}
		if _, noise := queryNoiseTerms[tok]; noise {
			continue
		}
		terms[tok] = struct{}{}
	}
	return terms
}

// MatchTokens returns the set of lowercase alphanumeric/hyphen tokens
// of length >= 2 with stopwords and command words removed. Used by the
// keyword fallback scorer, never by the statistical vectorizer.
func MatchTokens(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, tok := range queryTokenRe.FindAllString(strings.ToLower(text), -1) {
		if len(tok) < 2 {
			continue
		}
		if _, stop := matchStops[tok]; stop {
			continue
		}
		tokens[tok] = struct{}{}
	}
	return tokens
}

// ContentTokens returns the ordered, duplicate-preserving token stream
// of a text with the base stopword list removed. Command words are kept
// since frequency extraction happens over mark-scheme wording, not
// question wording.
func ContentTokens(text string) []string {
	var tokens []string
	for _, tok := range splitNormalized(text) {
		if _, stop := baseStops[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func splitNormalized(text string) []string {
	text = nonAlnumRe.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(text)
}
