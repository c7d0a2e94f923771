package source

import (
	"wrapgen/internal/config"
)

// Target is an entity whose template arguments may be discovered from its
// header.
type Target interface {
	Name() string
	// SourceFilePath is the absolute header path, or "" when unknown.
	SourceFilePath() string
	// HasExplicitArgLists reports whether argument lists were configured
	// directly, including an explicitly empty list.
	HasExplicitArgLists() bool
	// Candidates returns the gathered template substitutions in the order
	// they should be tried.
	Candidates() ([]config.TemplateSubstitution, error)
	// ApplyTemplate records a successful match.
	ApplyTemplate(m Match)
}

// Match is the outcome of a successful signature match.
type Match struct {
	Signature string
	ArgLists  config.ArgLists
	Params    []string
}

// Matcher discovers template instantiations for targets.
type Matcher struct {
	reader Reader
}

// NewMatcher creates a Matcher reading through r.
func NewMatcher(r Reader) *Matcher {
	return &Matcher{reader: r}
}

// Extract tries the target's candidates against its header and applies the
// first one that matches. It reports whether a match was applied. Targets
// with explicit argument lists, without a header, or without candidates are
// left untouched.
func (m *Matcher) Extract(t Target) (bool, error) {
	if t.HasExplicitArgLists() || t.SourceFilePath() == "" {
		return false, nil
	}

	candidates, err := t.Candidates()
	if err != nil {
		return false, err
	}

	if len(candidates) == 0 {
		return false, nil
	}

	text, err := m.reader.Read(t.SourceFilePath())
	if err != nil {
		return false, err
	}

	for _, c := range candidates {
		if !FindClass(text, t.Name(), c.Signature) {
			continue
		}

		params := config.SignatureParams(c.Signature)
		names := make([]string, len(params))

		for i, p := range params {
			names[i] = p.Name
		}

		t.ApplyTemplate(Match{
			Signature: c.Signature,
			ArgLists:  c.Replacement.Clone(),
			Params:    names,
		})

		return true, nil
	}

	return false, nil
}
