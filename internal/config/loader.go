package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default names used when the document leaves them empty.
const (
	DefaultPackageName = "cppwg_package"
	DefaultModuleName  = "cppwg_module"
)

// LoadFile loads and parses a YAML package document from the given path.
func LoadFile(path string) (*PackageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read package file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a PackageFile.
func Parse(data []byte) (*PackageFile, error) {
	var pf PackageFile

	err := yaml.Unmarshal(data, &pf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse package YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&pf)

	return &pf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(pf *PackageFile) {
	if pf.Name == "" {
		pf.Name = DefaultPackageName
	}

	for i := range pf.Modules {
		m := &pf.Modules[i]
		if m.Name == "" {
			m.Name = DefaultModuleName
		}
	}
}

// ExpandPaths rewrites every configured path to an absolute path under
// sourceRoot. Empty paths stay empty.
func ExpandPaths(pf *PackageFile, sourceRoot string) {
	expandOptions(&pf.Options, sourceRoot)

	for i := range pf.Modules {
		m := &pf.Modules[i]
		expandOptions(&m.Options, sourceRoot)

		for j, loc := range m.SourceLocations {
			m.SourceLocations[j] = FullPath(sourceRoot, loc)
		}

		for _, list := range []*EntityList{&m.Classes, &m.FreeFunctions, &m.Variables} {
			for k := range list.Entities {
				e := &list.Entities[k]
				e.SourceFilePath = FullPath(sourceRoot, e.SourceFilePath)
				expandOptions(&e.Options, sourceRoot)
			}
		}
	}
}

func expandOptions(o *Options, sourceRoot string) {
	if o.CustomGenerator != nil && *o.CustomGenerator != "" {
		p := ConvertPath(sourceRoot, *o.CustomGenerator)
		o.CustomGenerator = &p
	}
}

// ConvertPath replaces the CPPWG_SOURCEROOT placeholder and makes the path absolute.
func ConvertPath(sourceRoot, rawPath string) string {
	if rawPath == "" {
		return ""
	}

	p := strings.ReplaceAll(rawPath, SourceRootPlaceholder, sourceRoot)

	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}

	return abs
}

// FullPath resolves a path relative to the source root. Absolute paths and
// paths using the placeholder are honored as written.
func FullPath(sourceRoot, relPath string) string {
	if relPath == "" {
		return ""
	}

	if strings.Contains(relPath, SourceRootPlaceholder) {
		return ConvertPath(sourceRoot, relPath)
	}

	if filepath.IsAbs(relPath) {
		return filepath.Clean(relPath)
	}

	return ConvertPath(sourceRoot, filepath.Join(sourceRoot, relPath))
}
