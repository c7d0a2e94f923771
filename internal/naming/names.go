package naming

import (
	"errors"
	"fmt"
	"strings"

	"wrapgen/internal/common"
	"wrapgen/internal/config"
)

// ErrDuplicateIdentifier is returned when two names resolve to the same
// embedding identifier.
var ErrDuplicateIdentifier = errors.New("duplicate resolved identifier")

// stripped holds the characters removed from embedding identifiers.
var stripped = strings.NewReplacer("<", "", ">", "", ",", "", " ", "")

// Input is everything the resolver needs to know about one entity.
type Input struct {
	Name     string
	Override string
	// ArgLists holds one argument tuple per instantiation. It is only
	// consulted when Templated is set.
	ArgLists     config.ArgLists
	Templated    bool
	Replacements config.Replacements
}

// Names are the parallel name sequences of one entity.
type Names struct {
	Cpp         []string
	Identifiers []string
}

// Len returns the number of instantiations.
func (n Names) Len() int { return len(n.Cpp) }

// Resolve computes both name sequences and checks that the identifiers are
// pairwise distinct.
func Resolve(in Input) (Names, error) {
	names := Names{
		Cpp:         CppNames(in.Name, in.ArgLists, in.Templated),
		Identifiers: Identifiers(in.Name, in.Override, in.ArgLists, in.Templated, in.Replacements),
	}

	seen := make(map[string]int, len(names.Identifiers))

	for i, id := range names.Identifiers {
		if j, ok := seen[id]; ok {
			return Names{}, fmt.Errorf("%s: %q and %q both resolve to %q: %w",
				in.Name, names.Cpp[j], names.Cpp[i], id, ErrDuplicateIdentifier)
		}

		seen[id] = i
	}

	return names, nil
}

// CppNames returns the canonical C++ names. A single space precedes the
// closing bracket so that nested templates never produce ">>".
func CppNames(name string, argLists config.ArgLists, templated bool) []string {
	if !templated {
		return []string{name}
	}

	out := make([]string, 0, len(argLists))
	for _, args := range argLists {
		out = append(out, name+"<"+strings.Join(args, ",")+" >")
	}

	return out
}

// Identifiers returns the embedding-language identifiers.
func Identifiers(name, override string, argLists config.ArgLists, templated bool, table config.Replacements) []string {
	base := name
	if override != "" {
		base = override
	}

	if !templated {
		return []string{base}
	}

	base = Clean(base, table)

	out := make([]string, 0, len(argLists))

	for _, args := range argLists {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = Clean(arg, table)
		}

		out = append(out, base+strings.Join(parts, "_"))
	}

	return out
}

// Clean applies the replacement table in order, strips template punctuation
// and capitalizes the first character of anything longer than one character.
func Clean(s string, table config.Replacements) string {
	for _, r := range table {
		if r.From == "" {
			continue
		}

		s = strings.ReplaceAll(s, r.From, r.To)
	}

	return common.CapitalizeFirst(stripped.Replace(s))
}

// Owned is a resolved entity as seen by the module-level uniqueness check.
type Owned struct {
	Entity string
	Names  Names
}

// CheckUnique reports the first identifier shared by two entities of the
// same module.
func CheckUnique(module string, entities []Owned) error {
	owner := map[string]string{}

	for _, e := range entities {
		for _, id := range e.Names.Identifiers {
			if prev, ok := owner[id]; ok {
				return fmt.Errorf("module %s: %q resolves for both %s and %s: %w",
					module, id, prev, e.Entity, ErrDuplicateIdentifier)
			}

			owner[id] = e.Entity
		}
	}

	return nil
}
