package vectorizer

import "math"

// Vector is a sparse row in the document-term matrix. Indices are
// vocabulary column positions in strictly ascending order, Values the
// corresponding TF-IDF weights.
type Vector struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// Matrix holds one row per chunk, in chunk order. The coupling is
// positional: row i scores chunk i, there is no explicit foreign key,
// so the two collections are only ever written and read together.
type Matrix []Vector

// Dot computes the linear-kernel similarity of two sparse vectors.
// Rows are L2-normalized at build time, so this is cosine similarity.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

func l2Normalize(v Vector) Vector {
	var norm float64
	for _, x := range v.Values {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return v
	}
	for i := range v.Values {
		v.Values[i] /= norm
	}
	return v
}
