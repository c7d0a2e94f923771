package source

import (
	"strings"
	"unicode"
)

// tight lists the characters that never keep a neighbouring space after
// normalization.
const tight = "<>,=:;{}()*&"

// Normalize strips comments and preprocessor directives from C++ source and
// collapses whitespace. String and character literals are kept verbatim.
func Normalize(text string) string {
	return collapse(stripPreprocessor(stripComments(text)))
}

func stripComments(text string) string {
	var b strings.Builder

	b.Grow(len(text))

	const (
		code = iota
		lineComment
		blockComment
		stringLit
		charLit
	)

	state := code

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch state {
		case code:
			switch {
			case c == '/' && i+1 < len(text) && text[i+1] == '/':
				state = lineComment
				i++
			case c == '/' && i+1 < len(text) && text[i+1] == '*':
				state = blockComment
				i++
				// A block comment separates tokens.
				b.WriteByte(' ')
			case c == '"':
				state = stringLit
				b.WriteByte(c)
			case c == '\'':
				state = charLit
				b.WriteByte(c)
			default:
				b.WriteByte(c)
			}

		case lineComment:
			if c == '\n' {
				state = code
				b.WriteByte(c)
			}

		case blockComment:
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				state = code
				i++
			} else if c == '\n' {
				b.WriteByte(c)
			}

		case stringLit, charLit:
			b.WriteByte(c)

			quote := byte('"')
			if state == charLit {
				quote = '\''
			}

			switch {
			case c == '\\' && i+1 < len(text):
				i++
				b.WriteByte(text[i])
			case c == quote, c == '\n':
				state = code
			}
		}
	}

	return b.String()
}

// stripPreprocessor drops directive lines, including their backslash
// continuations.
func stripPreprocessor(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	continued := false

	for _, line := range lines {
		trimmed := strings.TrimRightFunc(line, unicode.IsSpace)

		if continued || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continued = strings.HasSuffix(trimmed, "\\")
			continue
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func collapse(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	var b strings.Builder

	b.Grow(len(text))

	for i, f := range fields {
		if i > 0 {
			prev := fields[i-1]
			if !strings.ContainsRune(tight, rune(prev[len(prev)-1])) && !strings.ContainsRune(tight, rune(f[0])) {
				b.WriteByte(' ')
			}
		}

		b.WriteString(f)
	}

	return b.String()
}
