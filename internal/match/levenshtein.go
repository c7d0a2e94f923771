package match

import "github.com/agnivade/levenshtein"

// Distance computes the Levenshtein distance between two strings, counted in
// runes.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity is 1 - Distance/maxLen: 1.0 for identical strings, 0.0 for
// completely different ones.
func Similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1.0
	}

	return 1.0 - float64(Distance(a, b))/float64(max(la, lb))
}
