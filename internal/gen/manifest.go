package gen

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"wrapgen/internal/model"
	"wrapgen/internal/plan"
)

// DefaultManifestFile is the manifest file name used when none is configured.
const DefaultManifestFile = "wrapgen_manifest.yaml"

// Manifest summarizes a resolved package.
type Manifest struct {
	Package string           `yaml:"package"`
	Modules []ModuleManifest `yaml:"modules"`
	// Order lists class names in emission order.
	Order   []string       `yaml:"order,omitempty"`
	Dropped []DroppedEdge  `yaml:"dropped,omitempty"`
	Notes   []ManifestNote `yaml:"notes,omitempty"`
}

// ModuleManifest lists the entities of one module.
type ModuleManifest struct {
	Name          string           `yaml:"name"`
	Classes       []EntityManifest `yaml:"classes,omitempty"`
	FreeFunctions []EntityManifest `yaml:"free_functions,omitempty"`
	Variables     []EntityManifest `yaml:"variables,omitempty"`
}

// EntityManifest records the resolved state of one entity.
type EntityManifest struct {
	Name        string   `yaml:"name"`
	Excluded    bool     `yaml:"excluded,omitempty"`
	Header      string   `yaml:"header,omitempty"`
	Signature   string   `yaml:"template_signature,omitempty"`
	Params      []string `yaml:"template_params,omitempty"`
	Cpp         []string `yaml:"cpp_names,omitempty"`
	Identifiers []string `yaml:"identifiers,omitempty"`
	Bases       []string `yaml:"bases,omitempty"`
	Requires    []string `yaml:"requires,omitempty"`
}

// DroppedEdge is a requires edge left out of the order.
type DroppedEdge struct {
	Before string `yaml:"before"`
	After  string `yaml:"after"`
}

// ManifestNote is a warning raised during the run.
type ManifestNote struct {
	Stage   string `yaml:"stage"`
	Code    string `yaml:"code"`
	Entity  string `yaml:"entity,omitempty"`
	Cpp     string `yaml:"cpp_name,omitempty"`
	Message string `yaml:"message"`
}

// NewManifest builds the manifest of a run result.
func NewManifest(res *plan.Result) *Manifest {
	m := &Manifest{Package: res.Package.Name()}

	for _, mod := range res.Package.Modules() {
		mm := ModuleManifest{Name: mod.Name()}

		for _, c := range mod.Classes() {
			em := entityManifest(c)
			if res.Relations != nil {
				em.Bases = classNames(res.Relations.BasesOf(c))
				em.Requires = classNames(res.Relations.Required(c))
			}

			mm.Classes = append(mm.Classes, em)
		}

		for _, f := range mod.FreeFunctions() {
			mm.FreeFunctions = append(mm.FreeFunctions, entityManifest(f))
		}

		for _, v := range mod.Variables() {
			mm.Variables = append(mm.Variables, entityManifest(v))
		}

		m.Modules = append(m.Modules, mm)
	}

	m.Order = classNames(res.Order)

	for _, e := range res.Dropped {
		m.Dropped = append(m.Dropped, DroppedEdge{Before: e.Before.Name(), After: e.After.Name()})
	}

	for _, w := range res.Diagnostics.Warnings {
		m.Notes = append(m.Notes, ManifestNote{
			Stage:   string(w.Stage),
			Code:    w.Code,
			Entity:  w.Entity,
			Cpp:     w.Cpp,
			Message: w.Message,
		})
	}

	return m
}

func entityManifest(e model.Entity) EntityManifest {
	info := e.Info()
	names := info.Names()

	return EntityManifest{
		Name:        info.Name(),
		Excluded:    info.Excluded(),
		Header:      info.SourceFilePath(),
		Signature:   info.TemplateSignature(),
		Params:      info.TemplateParams(),
		Cpp:         names.Cpp,
		Identifiers: names.Identifiers,
	}
}

func classNames(cs []*model.Class) []string {
	if len(cs) == 0 {
		return nil
	}

	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}

	return out
}

// Marshal encodes the manifest as YAML with two-space indentation.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}

	return buf.Bytes(), nil
}

// File encodes the manifest into a file named filename, or
// DefaultManifestFile when filename is empty.
func (m *Manifest) File(filename string) (GeneratedFile, error) {
	if filename == "" {
		filename = DefaultManifestFile
	}

	content, err := m.Marshal()
	if err != nil {
		return GeneratedFile{}, err
	}

	return GeneratedFile{Filename: filename, Content: content}, nil
}
