// Package formatter renders a deterministic answer from retrieved
// mark-scheme chunks. It is the path of record when no generation
// back-end is configured and the fallback when one fails.
package formatter

import (
	"regexp"
	"sort"
	"strings"

	"examhelper/internal/adapter/analyzer"
	"examhelper/internal/domain"
)

const (
	minDepth = 2
	maxDepth = 6

	shortExplanationLimit = 240
)

// noMatchAnswer is the user-visible degraded result when retrieval
// found nothing. It is a valid answer, not an error.
var noMatchAnswer = domain.Answer{
	Exact: "- Insufficient mark-scheme match found. Please refine the question text.",
	Short: "I could not find a close match in the mark scheme.",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Format builds the two-section answer from the retrieved chunk texts.
// The answer depth comes from the explicit mark value when present
// (clamped to [2,6]), otherwise from the command-word band.
func Format(questionText, commandWord string, marks int, chunkTexts []string) domain.Answer {
	combined := strings.TrimSpace(strings.Join(chunkTexts, "\n\n"))
	if combined == "" {
		return noMatchAnswer
	}

	depth := answerDepth(commandWord, marks)
	keywords := topKeywords(combined, depth+2)
	if len(keywords) > depth {
		keywords = keywords[:depth]
	}

	lines := make([]string, len(keywords))
	for i, kw := range keywords {
		lines[i] = "- " + kw
	}

	summary := whitespaceRe.ReplaceAllString(combined, " ")
	summary = strings.TrimSpace(summary)
	// Truncation counts code points, not bytes: PDF extraction leaves
	// en-dashes and curly quotes in corpus text.
	if runes := []rune(summary); len(runes) > shortExplanationLimit {
		summary = string(runes[:shortExplanationLimit]) + "..."
	}

	return domain.Answer{
		Exact: strings.Join(lines, "\n"),
		Short: summary,
	}
}

// answerDepth maps marks or the command word to a bullet count.
func answerDepth(commandWord string, marks int) int {
	if marks > 0 {
		if marks < minDepth {
			return minDepth
		}
		if marks > maxDepth {
			return maxDepth
		}
		return marks
	}

	switch commandWord {
	case "identify", "state", "give", "define":
		return 2
	case "describe", "outline", "compare", "contrast":
		return 3
	case "explain", "discuss", "evaluate", "justify":
		return 4
	default:
		// Covers "unspecified" and any unknown verb.
		return 3
	}
}

// topKeywords returns the maxTerms most frequent content tokens of the
// text. Ties break by first appearance so the output never depends on
// map iteration order.
func topKeywords(text string, maxTerms int) []string {
	tokens := analyzer.ContentTokens(text)

	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	var order []string
	for i, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			firstSeen[tok] = i
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if len(order) > maxTerms {
		order = order[:maxTerms]
	}
	return order
}
