package vectorizer

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"

	"examhelper/internal/adapter/analyzer"
	"examhelper/internal/domain"
)

// ErrNoChunks is returned when an index build is attempted over an
// empty chunk collection. There is nothing to weight term frequencies
// against, so the build is fatal; the caller must supply a corpus.
var ErrNoChunks = errors.New("no chunks available to build index")

// Vectorizer is the frozen state of a fitted TF-IDF model: the
// vocabulary over unigrams and bigrams plus per-term inverse document
// frequencies. It does not update after Fit; changing the corpus means
// a full rebuild.
type Vectorizer struct {
	vocab map[string]int
	terms []string
	idf   []float64
}

// Fit builds the vocabulary and IDF weights from the chunk collection
// and returns the fitted model together with the document-term matrix,
// one L2-normalized row per chunk in chunk order.
func Fit(chunks []domain.Chunk) (*Vectorizer, Matrix, error) {
	if len(chunks) == 0 {
		return nil, nil, ErrNoChunks
	}

	grams := make([][]string, len(chunks))
	df := make(map[string]int)
	for i, c := range chunks {
		grams[i] = ngrams(c.Text)
		seen := make(map[string]struct{}, len(grams[i]))
		for _, g := range grams[i] {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			df[g]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(chunks))
	for i, term := range terms {
		v.vocab[term] = i
		// Smoothed IDF so unseen document counts never divide by zero.
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	matrix := make(Matrix, len(chunks))
	for i := range chunks {
		matrix[i] = v.weigh(grams[i])
	}
	return v, matrix, nil
}

// Transform vectorizes a query into the fitted space. Terms outside the
// frozen vocabulary contribute zero weight; the model is never refit at
// query time.
func (v *Vectorizer) Transform(text string) Vector {
	return v.weigh(ngrams(text))
}

// VocabularySize reports the number of distinct n-gram terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.terms)
}

func (v *Vectorizer) weigh(grams []string) Vector {
	counts := make(map[int]int)
	for _, g := range grams {
		if col, ok := v.vocab[g]; ok {
			counts[col]++
		}
	}

	vec := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for col := range counts {
		vec.Indices = append(vec.Indices, col)
	}
	sort.Ints(vec.Indices)
	for _, col := range vec.Indices {
		vec.Values = append(vec.Values, float64(counts[col])*v.idf[col])
	}
	return l2Normalize(vec)
}

// ngrams produces the unigram and bigram term stream of a text:
// normalized, lowercased, word tokens of length >= 2, English stopwords
// removed before bigram formation.
func ngrams(text string) []string {
	words := splitWords(analyzer.Normalize(text))

	kept := words[:0]
	for _, w := range words {
		if _, stop := englishStopwords[w]; stop {
			continue
		}
		kept = append(kept, w)
	}

	grams := make([]string, 0, 2*len(kept))
	grams = append(grams, kept...)
	for i := 0; i+1 < len(kept); i++ {
		grams = append(grams, kept[i]+" "+kept[i+1])
	}
	return grams
}

func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() >= 2 {
			words = append(words, current.String())
		}
		current.Reset()
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return words
}
