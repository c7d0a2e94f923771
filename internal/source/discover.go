package source

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Discover returns the headers under the given directories whose base name
// matches one of patterns, sorted and without duplicates. Patterns are globs
// and may use alternatives, e.g. "{*.hpp,*.hxx}".
func Discover(locations, patterns []string) ([]string, error) {
	globs, err := compile(patterns)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}

	var out []string

	for _, loc := range locations {
		err := filepath.WalkDir(loc, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			if matchAny(d.Name(), globs) {
				if _, dup := seen[path]; !dup {
					seen[path] = struct{}{}
					out = append(out, path)
				}
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", loc, err)
		}
	}

	sort.Strings(out)

	return out, nil
}

// ByStem indexes headers by their base name without extension. When two
// headers share a stem the first in sorted order wins.
func ByStem(headers []string) map[string]string {
	idx := make(map[string]string, len(headers))

	for _, h := range headers {
		base := filepath.Base(h)
		stem := strings.TrimSuffix(base, filepath.Ext(base))

		if _, ok := idx[stem]; !ok {
			idx[stem] = h
		}
	}

	return idx
}

// Under reports whether path lies inside one of the directories.
func Under(path string, dirs []string) bool {
	for _, d := range dirs {
		rel, err := filepath.Rel(d, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}

	return false
}

func compile(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}

		out = append(out, g)
	}

	return out, nil
}

func matchAny(name string, globs []glob.Glob) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}

	return false
}
