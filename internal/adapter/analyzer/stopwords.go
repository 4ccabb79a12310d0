package analyzer

// commandWords are question command verbs. They carry no retrieval
// signal when matching a question against mark-scheme text, but they do
// matter for frequency-based keyword extraction, so the two token
// helpers use different stopword sets.
var commandWords = []string{
	"explain", "describe", "identify", "state", "give", "define",
	"outline", "compare", "contrast",
}

func baseStopwords() map[string]struct{} {
	stops := []string{
		"the", "and", "or", "to", "of", "a", "an", "in", "on", "for",
		"with", "by", "is", "are", "was", "were", "be", "been", "being",
		"that", "this", "these", "those", "as", "at", "from", "it",
		"its", "into", "over", "under", "between", "within", "without",
		"use", "used", "using", "can", "may", "will", "would", "should",
		"could", "do", "does", "did", "done", "what", "which", "how",
		"why",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}

func matchStopwords() map[string]struct{} {
	m := baseStopwords()
	for _, w := range commandWords {
		m[w] = struct{}{}
	}
	return m
}
