package chapters

import "math"

// Cosine returns the cosine similarity of two equal-length vectors,
// in [-1, 1]. A zero vector yields NaN, which compares false against
// any threshold and so never reads as a topic change.
func Cosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return math.NaN()
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
