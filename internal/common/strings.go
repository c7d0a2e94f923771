package common

import "unicode"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// CapitalizeFirst upper-cases the first rune of s when s has more than one rune.
// Single-rune strings are returned unchanged.
func CapitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) <= 1 {
		return s
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
