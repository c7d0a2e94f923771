package config

import (
	"fmt"
	"os"

	"wrapgen/internal/diagnostic"
)

// Validate validates a package document after ExpandPaths.
// This is a structural validation step only; declarations are checked later
// against the parsed graph.
func Validate(pf *PackageFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if pf == nil {
		res.Reject(problem("package_is_nil", "", "package file is nil"))
		return res
	}

	validateSubstitutions(res, pf.Name, pf.TemplateSubstitutions)

	seenModules := map[string]struct{}{}

	for i := range pf.Modules {
		m := &pf.Modules[i]

		if _, ok := seenModules[m.Name]; ok {
			res.Reject(problem("duplicate_module", m.Name, "module %q declared twice", m.Name))
			continue
		}

		seenModules[m.Name] = struct{}{}

		validateSubstitutions(res, m.Name, m.TemplateSubstitutions)

		for _, loc := range m.SourceLocations {
			if _, err := os.Stat(loc); err != nil {
				res.Reject(problem("source_location_not_found", m.Name, "could not find source location %s", loc))
			}
		}

		validateEntities(res, m.Name, "class", m.Classes)
		validateEntities(res, m.Name, "free function", m.FreeFunctions)
		validateEntities(res, m.Name, "variable", m.Variables)
	}

	return res
}

func problem(code, owner, format string, args ...any) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Stage:   diagnostic.StageConfig,
		Code:    code,
		Entity:  owner,
		Message: fmt.Sprintf(format, args...),
	}
}

func validateEntities(res *diagnostic.Diagnostics, module, kind string, list EntityList) {
	seen := map[string]struct{}{}

	for i := range list.Entities {
		e := &list.Entities[i]

		if e.Name == "" {
			res.Reject(problem("entity_without_name", module, "%s #%d in module %q has no name", kind, i, module))
			continue
		}

		if _, ok := seen[e.Name]; ok {
			res.Reject(problem("duplicate_entity", e.Name, "%s %q listed twice in module %q", kind, e.Name, module))
		}

		seen[e.Name] = struct{}{}

		if e.SourceFilePath != "" {
			if _, err := os.Stat(e.SourceFilePath); err != nil {
				res.Reject(problem("source_file_not_found", e.Name, "could not find %s", e.SourceFilePath))
			}
		}

		validateSubstitutions(res, e.Name, e.TemplateSubstitutions)
	}
}

func validateSubstitutions(res *diagnostic.Diagnostics, owner string, subs []TemplateSubstitution) {
	for i, sub := range subs {
		if sub.Signature == "" {
			res.Reject(problem("substitution_without_signature", owner, "template substitution #%d has no signature", i))
			continue
		}

		params := SignatureParams(sub.Signature)

		required := 0
		for _, p := range params {
			if !p.HasDefault {
				required++
			}
		}

		for j, args := range sub.Replacement {
			switch {
			case len(args) > len(params):
				d := problem("substitution_arity", owner, "replacement #%d has %d arguments, signature takes %d",
					j, len(args), len(params))
				d.Cpp = sub.Signature
				res.Reject(d)
			case len(args) < required:
				d := problem("substitution_arity", owner, "replacement #%d has %d arguments, signature requires %d",
					j, len(args), required)
				d.Cpp = sub.Signature
				res.Warn(d)
			}
		}
	}
}
