package plan

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"wrapgen/internal/config"
	"wrapgen/internal/decl"
	"wrapgen/internal/model"
	"wrapgen/internal/source"
)

// populate adds every declaration found under the module source locations
// to modules configured with CPPWG_ALL. Template instantiations and
// entities already listed are skipped.
func (r *Runner) populate(m *model.Module) {
	locs := m.SourceLocations()

	if m.AllClasses() {
		for _, d := range r.ns.Classes() {
			if !eligible(d, locs) || m.HasClass(d.Name()) {
				continue
			}

			m.AddClass(config.EntityDef{Name: d.Name(), SourceFilePath: d.File()})
		}
	}

	if m.AllFreeFunctions() {
		seen := names(m.FreeFunctions())

		for _, f := range r.ns.Functions() {
			if !eligible(f, locs) || seen[f.Name()] {
				continue
			}

			seen[f.Name()] = true
			m.AddFreeFunction(config.EntityDef{Name: f.Name(), SourceFilePath: f.File()})
		}
	}

	if m.AllVariables() {
		seen := names(m.Variables())

		for _, v := range r.ns.Variables() {
			if !eligible(v, locs) || seen[v.Name()] {
				continue
			}

			seen[v.Name()] = true
			m.AddVariable(config.EntityDef{Name: v.Name(), SourceFilePath: v.File()})
		}
	}

	r.logger.WithFields(logrus.Fields{
		"module":         m.Name(),
		"classes":        len(m.Classes()),
		"free_functions": len(m.FreeFunctions()),
		"variables":      len(m.Variables()),
	}).Debug("module populated")
}

func eligible(h decl.Handle, locs []string) bool {
	if strings.ContainsRune(h.Name(), '<') || h.File() == "" {
		return false
	}

	return source.Under(h.File(), locs)
}

func names[E interface{ Name() string }](entities []E) map[string]bool {
	out := make(map[string]bool, len(entities))
	for _, e := range entities {
		out[e.Name()] = true
	}

	return out
}

// mapSources assigns a header to every class without one. The header is the
// discovered file whose base name equals the configured source_file, or the
// class name when no source_file is set. A source_file matching no header
// leaves the class unmapped.
func (r *Runner) mapSources(m *model.Module) error {
	if len(m.SourceLocations()) == 0 {
		return nil
	}

	patterns, err := m.Config().StringSlice(config.KeySourceHppPatterns)
	if err != nil {
		return &StageError{Stage: StageSources, Entity: m.Name(), Err: err}
	}

	headers, err := source.Discover(m.SourceLocations(), patterns)
	if err != nil {
		return &StageError{Stage: StageSources, Entity: m.Name(), Err: err}
	}

	byStem := source.ByStem(headers)

	for _, c := range m.Classes() {
		if c.SourceFilePath() != "" {
			continue
		}

		stem := c.Name()
		if c.SourceFile() != "" {
			base := filepath.Base(c.SourceFile())
			stem = strings.TrimSuffix(base, filepath.Ext(base))
		}

		if path, ok := byStem[stem]; ok {
			c.SetSourceFilePath(path)
			r.logger.WithFields(logrus.Fields{"module": m.Name(), "entity": c.Name(), "header": path}).
				Debug("header mapped")
		}
	}

	return nil
}
