// Package detector derives the command word and mark value from free
// question wording. Both feed the answer formatter's depth heuristic.
package detector

import (
	"regexp"
	"strconv"
	"strings"
)

// CommandUnspecified is returned when no command word can be inferred.
const CommandUnspecified = "unspecified"

// commandWords in priority order; the first one found in the question
// wins.
var commandWords = []string{
	"identify", "state", "give", "define", "describe", "explain",
	"outline", "compare", "contrast", "discuss", "evaluate", "justify",
}

// commandAliases map natural phrasings onto the fixed vocabulary.
var commandAliases = []struct {
	alias  string
	mapped string
}{
	{"how", "explain"},
	{"why", "explain"},
	{"what", "describe"},
	{"list", "identify"},
	{"name", "identify"},
}

var (
	wordRes      = compileWordPatterns()
	morePointsRe = regexp.MustCompile(`\bgive\s+me\s+\d+\s+more\s+points?\b`)
	anyMoreRe    = regexp.MustCompile(`\bmore\s+points?\b`)
	howRe        = regexp.MustCompile(`\bhow\b`)
	whyRe        = regexp.MustCompile(`\bwhy\b`)
	whatIsRe     = regexp.MustCompile(`\bwhat\s+is\b|\bwhat\s+are\b`)

	parenMarksRe = regexp.MustCompile(`\((\d+)\s*(?:marks?)?\)`)
	bareMarksRe  = regexp.MustCompile(`\b(\d+)\s*marks?\b`)
)

func compileWordPatterns() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(commandWords)+len(commandAliases))
	for _, w := range commandWords {
		res[w] = regexp.MustCompile(`\b` + w + `\b`)
	}
	for _, a := range commandAliases {
		res[a.alias] = regexp.MustCompile(`\b` + a.alias + `\b`)
	}
	return res
}

// CommandWord detects the question's command verb, mapping common
// aliases and follow-up phrasings onto the fixed vocabulary.
func CommandWord(questionText string) string {
	lower := strings.ToLower(questionText)

	for _, w := range commandWords {
		if wordRes[w].MatchString(lower) {
			return w
		}
	}
	for _, a := range commandAliases {
		if wordRes[a.alias].MatchString(lower) {
			return a.mapped
		}
	}
	if inferred := inferFromPatterns(lower); inferred != "" {
		return inferred
	}
	return CommandUnspecified
}

func inferFromPatterns(lower string) string {
	// Follow-up style requests: "give me 2 more points".
	if morePointsRe.MatchString(lower) || anyMoreRe.MatchString(lower) {
		return "give"
	}
	if howRe.MatchString(lower) || whyRe.MatchString(lower) {
		return "explain"
	}
	if whatIsRe.MatchString(lower) {
		return "describe"
	}
	return ""
}

// Marks extracts an explicit mark value such as "(4)", "(4 marks)" or
// "4 marks". It returns 0 when the question carries none.
func Marks(questionText string) int {
	lower := strings.ToLower(questionText)
	for _, re := range []*regexp.Regexp{parenMarksRe, bareMarksRe} {
		if m := re.FindStringSubmatch(lower); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}
