package analyzer

import (
	"sort"
	"strings"
)

// acronymExpansions maps domain acronyms to their spelled-out phrases.
// The table is fixed at compile time; expansion never replaces the
// original wording, it only appends.
var acronymExpansions = map[string]string{
	"alu": "arithmetic logic unit",
	"cu":  "control unit",
	"ram": "random access memory",
	"rom": "read only memory",
	"cpu": "central processing unit",
}

// AcronymExpansion returns the spelled-out phrase for a known acronym.
func AcronymExpansion(term string) (string, bool) {
	phrase, ok := acronymExpansions[term]
	return phrase, ok
}

// ExpandQuery appends the expansion phrase of every known acronym among
// the extracted terms to the original question text. When no term
// matches, the text is returned unchanged. Expansions are appended in
// sorted acronym order so repeated queries vectorize identically.
func ExpandQuery(questionText string, terms map[string]struct{}) string {
	var acronyms []string
	for t := range terms {
		if _, ok := acronymExpansions[t]; ok {
			acronyms = append(acronyms, t)
		}
	}
	if len(acronyms) == 0 {
		return questionText
	}
	sort.Strings(acronyms)

	phrases := make([]string, len(acronyms))
	for i, a := range acronyms {
		phrases[i] = acronymExpansions[a]
	}
	return questionText + " " + strings.Join(phrases, " ")
}
