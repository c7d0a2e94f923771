package config

import "strings"

// SignatureParam is one parameter of a template signature.
type SignatureParam struct {
	// Name is the parameter identifier, e.g. "DIM_B".
	Name string
	// Default is the default-argument text ("" when there is none).
	Default string
	// HasDefault is true when the parameter is declared with "= ...".
	HasDefault bool
}

// SignatureParams splits a template signature such as
// "<unsigned DIM_A, unsigned DIM_B = DIM_A>" into its parameters.
// Commas nested in <>, () or [] do not split parameters.
func SignatureParams(signature string) []SignatureParam {
	body := strings.TrimSpace(signature)
	body = strings.TrimPrefix(body, "<")
	body = strings.TrimSuffix(body, ">")
	body = strings.TrimSpace(body)

	if body == "" {
		return nil
	}

	parts := SplitTopLevel(body)
	params := make([]SignatureParam, 0, len(parts))

	for _, part := range parts {
		var p SignatureParam

		decl := part
		if i := strings.Index(part, "="); i >= 0 {
			decl = part[:i]
			p.Default = strings.TrimSpace(part[i+1:])
			p.HasDefault = true
		}

		if fields := strings.Fields(decl); len(fields) > 0 {
			p.Name = fields[len(fields)-1]
		}

		params = append(params, p)
	}

	return params
}

// FirstDefaultIndex returns the position of the first defaulted parameter of
// the signature, or -1 when no parameter has a default.
func FirstDefaultIndex(signature string) int {
	for i, p := range SignatureParams(signature) {
		if p.HasDefault {
			return i
		}
	}

	return -1
}

// SplitTopLevel splits s on commas that are not nested in brackets.
func SplitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i, r := range s {
		switch r {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}

	return append(parts, strings.TrimSpace(s[start:]))
}
