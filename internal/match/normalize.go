package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a C++ name for fuzzy comparison:
// 1. Drop namespace qualifiers ("cppwg::Foo" -> "Foo").
// 2. Case-fold to lower.
// 3. Strip separators (_, spaces) and template punctuation (<, >, ,).
func NormalizeName(s string) string {
	if open := strings.IndexByte(s, '<'); open >= 0 {
		s = unqualify(s[:open]) + s[open:]
	} else {
		s = unqualify(s)
	}

	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Tokens splits a name into lowercase CamelCase tokens, ignoring template
// arguments. Examples:
//   - "AbstractMesh<2,2>" -> ["abstract", "mesh"]
//   - "HTTPServer" -> ["http", "server"]
func Tokens(s string) []string {
	if open := strings.IndexByte(s, '<'); open >= 0 {
		s = s[:open]
	}

	s = unqualify(s)

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(unicode.ToLower(r))
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func unqualify(s string) string {
	if idx := strings.LastIndex(s, "::"); idx >= 0 {
		return s[idx+2:]
	}

	return s
}

func isSeparator(r rune) bool {
	return r == '_' || r == ' ' || r == '<' || r == '>' || r == ','
}

// startsToken reports a lower-to-upper transition or the end of an acronym
// ("XMLParser" splits before 'P').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if unicode.IsUpper(r) && !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && nextLower
}
