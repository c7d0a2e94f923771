package source

import (
	"strings"
)

// declKeywords are the class-key spellings that introduce a class template.
var declKeywords = []string{"class", "struct"}

// FindClass reports whether normalized source text declares name as a class
// template with exactly the given signature. The signature is normalized the
// same way as the text, so only its tokens matter. Attributes and alignas
// between the class key and the name are skipped, and a final specifier may
// follow the name.
func FindClass(normalized, name, signature string) bool {
	sig := strings.TrimSpace(signature)
	if !strings.HasPrefix(sig, "<") {
		sig = "<" + sig + ">"
	}

	for _, kw := range declKeywords {
		head := Normalize("template" + sig + " " + kw)
		if containsDecl(normalized, head, name) {
			return true
		}
	}

	return false
}

// containsDecl finds head at an identifier boundary and checks that the
// declared name follows it.
func containsDecl(text, head, name string) bool {
	for from := 0; from <= len(text)-len(head); {
		idx := strings.Index(text[from:], head)
		if idx < 0 {
			return false
		}

		start := from + idx
		end := start + len(head)

		if (start == 0 || !isIdent(text[start-1])) && end < len(text) && !isIdent(text[end]) &&
			declares(text[end:], name) {
			return true
		}

		from = start + 1
	}

	return false
}

// declares reports whether rest, the text after the class key, names the
// class and then ends the declaration head.
func declares(rest, name string) bool {
	rest = skipSpecifiers(rest)
	if !strings.HasPrefix(rest, name) {
		return false
	}

	rest = rest[len(name):]

	if after, ok := strings.CutPrefix(rest, " final"); ok {
		rest = after
	}

	return rest == "" || isTerminator(rest[0])
}

// skipSpecifiers drops [[...]] attribute groups and alignas(...) between the
// class key and the class name.
func skipSpecifiers(s string) string {
	for {
		s = strings.TrimLeft(s, " ")

		switch {
		case strings.HasPrefix(s, "[["):
			end := strings.Index(s, "]]")
			if end < 0 {
				return s
			}

			s = s[end+2:]
		case strings.HasPrefix(s, "alignas("):
			end := closingParen(s, len("alignas"))
			if end < 0 {
				return s
			}

			s = s[end+1:]
		default:
			return s
		}
	}
}

// closingParen returns the index of the parenthesis closing the one at open,
// or -1.
func closingParen(s string, open int) int {
	depth := 0

	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

func isTerminator(c byte) bool {
	return c == '{' || c == ':' || c == ';'
}

func isIdent(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
