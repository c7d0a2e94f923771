// Package match ranks declaration names by similarity so that a failed
// lookup can point at the names the user most likely meant.
//
// Key functions:
//   - NormalizeName: folds a C++ name for fuzzy comparison
//   - Distance: computes edit distance between strings
//   - Rank: scores every known name against a target
//   - Suggest: returns the closest names above a threshold
package match
