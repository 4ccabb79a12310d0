package llm

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	shortHeadingRe = regexp.MustCompile(`(?i)\bShort Explanation:\s*`)
	exactHeadingRe = regexp.MustCompile(`(?i)\bExact Answer:\s*`)
)

// BuildPrompt renders the marking prompt. The model is constrained to
// the retrieved mark-scheme content and to the two-section output
// format that ParseSections expects.
func BuildPrompt(questionText, commandWord string, marks int, chunks []string) string {
	marksText := "unspecified"
	if marks > 0 {
		marksText = fmt.Sprintf("%d", marks)
	}
	msText := strings.TrimSpace(strings.Join(chunks, "\n\n"))

	return "You are an exam-marking assistant for CIE A Level Computer Science (9618).\n" +
		"Use ONLY the provided mark scheme content. Do not invent facts.\n" +
		"Return exactly two sections with these headings:\n" +
		"Exact Answer:\n" +
		"Short Explanation:\n\n" +
		fmt.Sprintf("Command word: %s\n", commandWord) +
		fmt.Sprintf("Marks: %s\n", marksText) +
		fmt.Sprintf("Question: %s\n\n", questionText) +
		"Mark Scheme Content:\n" +
		msText + "\n"
}

// ParseSections splits raw model output on the two expected headings.
// When the model ignored the format, the whole text becomes the exact
// answer and the explanation stays empty.
func ParseSections(text string) (exact, short string) {
	parts := shortHeadingRe.Split(text, 2)
	if len(parts) == 2 {
		short = strings.TrimSpace(parts[1])
		left := exactHeadingRe.Split(parts[0], -1)
		exact = strings.TrimSpace(left[len(left)-1])
		return exact, short
	}
	return strings.TrimSpace(text), ""
}
