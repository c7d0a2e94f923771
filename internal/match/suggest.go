package match

import (
	"sort"
)

// DefaultMinScore is the similarity below which a name is not suggested.
const DefaultMinScore = 0.6

// Candidate is a known name scored against a lookup target.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by score descending, then by name.
type CandidateList []Candidate

// Rank scores every name against target. Names are compared after
// NormalizeName; a shared CamelCase token lifts the score slightly so that
// "MeshReader" ranks above "Reader" for target "Mesh".
func Rank(target string, names []string) CandidateList {
	norm := NormalizeName(target)
	targetTokens := map[string]struct{}{}

	for _, t := range Tokens(target) {
		targetTokens[t] = struct{}{}
	}

	list := make(CandidateList, 0, len(names))

	for _, name := range names {
		score := Similarity(norm, NormalizeName(name))

		for _, t := range Tokens(name) {
			if _, ok := targetTokens[t]; ok {
				score += 0.05

				break
			}
		}

		list = append(list, Candidate{Name: name, Score: min(score, 1.0)})
	}

	sort.Sort(list)

	return list
}

// Suggest returns up to n names scoring at least minScore, best first.
// The target itself is never suggested.
func Suggest(target string, names []string, n int, minScore float64) []string {
	var out []string

	for _, c := range Rank(target, names).AboveThreshold(minScore) {
		if c.Name == target {
			continue
		}

		if len(out) == n {
			break
		}

		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
