package gen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"wrapgen/internal/config"
	"wrapgen/internal/model"
	"wrapgen/internal/source"
)

// DefaultHeaderCollectionFile is the file name used when none is configured.
const DefaultHeaderCollectionFile = "wrapper_header_collection.hpp"

// Instantiation is one explicit template instantiation and its typedef.
type Instantiation struct {
	Cpp        string
	Identifier string
}

// HeaderCollection is the data behind the header collection file.
type HeaderCollection struct {
	// Name is the package name; it forms the include guard.
	Name       string
	PrefixText string
	// Includes are header base names in emission order.
	Includes       []string
	Instantiations []Instantiation
}

var headerCollectionTemplate = template.Must(
	template.New("header_collection").
		Parse(`{{.PrefixText}}
#ifndef {{.Name}}_HEADERS_HPP_
#define {{.Name}}_HEADERS_HPP_

// Includes
{{range .Includes}}#include "{{.}}"
{{end}}
// Instantiate Template Classes
{{range .Instantiations}}template class {{.Cpp}};
{{end}}
// Typedefs for nicer naming
namespace cppwg
{
{{range .Instantiations}}    typedef {{.Cpp}} {{.Identifier}};
{{end}}} // namespace cppwg

#endif // {{.Name}}_HEADERS_HPP_
`))

// NewHeaderCollection collects includes and instantiations from a package
// whose names have been resolved. headers are the discovered package headers;
// they are included wholesale when any module wraps all classes or all free
// functions.
func NewHeaderCollection(pkg *model.Package, headers []string) (*HeaderCollection, error) {
	prefix, err := pkg.Config().String(config.KeyPrefixText)
	if err != nil {
		return nil, fmt.Errorf("reading prefix text: %w", err)
	}

	h := &HeaderCollection{Name: pkg.Name(), PrefixText: prefix}

	seen := map[string]bool{}
	include := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			h.Includes = append(h.Includes, name)
		}
	}

	if includeAll(pkg) {
		for _, path := range headers {
			include(filepath.Base(path))
		}
	} else {
		for _, m := range pkg.Modules() {
			for _, c := range m.Classes() {
				if c.Excluded() {
					continue
				}

				switch {
				case c.SourceFile() != "":
					include(c.SourceFile())
				case c.SourceFilePath() != "":
					include(filepath.Base(c.SourceFilePath()))
				}
			}

			for _, f := range m.FreeFunctions() {
				if f.SourceFilePath() != "" {
					include(filepath.Base(f.SourceFilePath()))
				}
			}
		}
	}

	for _, c := range pkg.Classes() {
		if c.Excluded() || !c.Templated() || len(c.ArgLists()) == 0 {
			continue
		}

		names := c.Names()
		for i := range names.Cpp {
			h.Instantiations = append(h.Instantiations, Instantiation{
				Cpp:        strings.TrimSpace(names.Cpp[i]),
				Identifier: strings.TrimSpace(names.Identifiers[i]),
			})
		}
	}

	return h, nil
}

func includeAll(pkg *model.Package) bool {
	for _, m := range pkg.Modules() {
		if m.AllClasses() || m.AllFreeFunctions() {
			return true
		}
	}

	return false
}

// Render executes the header collection template.
func (h *HeaderCollection) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := headerCollectionTemplate.Execute(&buf, h); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// File renders the collection into a file named filename, or
// DefaultHeaderCollectionFile when filename is empty.
func (h *HeaderCollection) File(filename string) (GeneratedFile, error) {
	if filename == "" {
		filename = DefaultHeaderCollectionFile
	}

	content, err := h.Render()
	if err != nil {
		return GeneratedFile{}, err
	}

	return GeneratedFile{Filename: filename, Content: content}, nil
}

// DiscoverHeaders lists the headers of every module in module order, each
// module's headers sorted, without duplicates.
func DiscoverHeaders(pkg *model.Package) ([]string, error) {
	seen := map[string]bool{}

	var out []string

	for _, m := range pkg.Modules() {
		if len(m.SourceLocations()) == 0 {
			continue
		}

		patterns, err := m.Config().StringSlice(config.KeySourceHppPatterns)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", m.Name(), err)
		}

		headers, err := source.Discover(m.SourceLocations(), patterns)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", m.Name(), err)
		}

		for _, path := range headers {
			if !seen[path] {
				seen[path] = true
				out = append(out, path)
			}
		}
	}

	return out, nil
}
