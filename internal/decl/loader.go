package decl

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DumpFile is the YAML form of a parsed declaration graph.
//
//	classes:
//	  - name: "Foo<2>"
//	    file: src/Foo.hpp
//	    bases: [AbstractFoo]
//	    methods:
//	      - name: SetBar
//	        args: ["Bar<2> const &"]
//	      - name: helper
//	        access: private
//	        args: [Baz]
//	    constructors:
//	      - args: [unsigned int]
//	functions:
//	  - name: Norm
//	    args: ["Point<2> const &"]
//	variables:
//	  - name: kTolerance
//	    type: double
type DumpFile struct {
	Classes   []ClassDump    `yaml:"classes"`
	Functions []FunctionDump `yaml:"functions,omitempty"`
	Variables []VariableDump `yaml:"variables,omitempty"`
}

// ClassDump describes one class declaration.
type ClassDump struct {
	Name         string         `yaml:"name"`
	File         string         `yaml:"file,omitempty"`
	Bases        []string       `yaml:"bases,omitempty"`
	Methods      []FunctionDump `yaml:"methods,omitempty"`
	Constructors []FunctionDump `yaml:"constructors,omitempty"`
}

// FunctionDump describes a function, member function or constructor.
type FunctionDump struct {
	Name   string   `yaml:"name,omitempty"`
	File   string   `yaml:"file,omitempty"`
	Access string   `yaml:"access,omitempty"`
	Args   []string `yaml:"args,omitempty"`
}

// VariableDump describes a variable.
type VariableDump struct {
	Name string `yaml:"name"`
	File string `yaml:"file,omitempty"`
	Type string `yaml:"type,omitempty"`
}

// LoadFile loads a declaration dump from the given path.
func LoadFile(path string) (*Graph, error) {
	return LoadFileUnder(path, "")
}

// LoadFileUnder loads a declaration dump and resolves relative file paths
// against root. An empty root leaves paths untouched.
func LoadFileUnder(path, root string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration dump %s: %w", path, err)
	}

	df, err := parseDump(data)
	if err != nil {
		return nil, err
	}

	if root != "" {
		df.Rebase(root)
	}

	return Build(df)
}

// Parse builds a Graph from YAML dump data.
func Parse(data []byte) (*Graph, error) {
	df, err := parseDump(data)
	if err != nil {
		return nil, err
	}

	return Build(df)
}

func parseDump(data []byte) (*DumpFile, error) {
	var df DumpFile

	err := yaml.Unmarshal(data, &df)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration dump: %w", err)
	}

	return &df, nil
}

// Rebase joins every relative file path in the dump with root.
func (df *DumpFile) Rebase(root string) {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}

		return filepath.Join(root, p)
	}

	for i := range df.Classes {
		c := &df.Classes[i]
		c.File = join(c.File)

		for j := range c.Methods {
			c.Methods[j].File = join(c.Methods[j].File)
		}

		for j := range c.Constructors {
			c.Constructors[j].File = join(c.Constructors[j].File)
		}
	}

	for i := range df.Functions {
		df.Functions[i].File = join(df.Functions[i].File)
	}

	for i := range df.Variables {
		df.Variables[i].File = join(df.Variables[i].File)
	}
}

// Build materializes a Graph from a DumpFile.
// Bases that are not declared in the dump become external declarations so
// that derived classes still report them; one external declaration is shared
// by every class naming the same base.
func Build(df *DumpFile) (*Graph, error) {
	g := NewGraph()
	classes := make([]*Class, len(df.Classes))

	for i, cd := range df.Classes {
		if cd.Name == "" {
			return nil, fmt.Errorf("class #%d has no name", i)
		}

		c := NewClass(cd.Name, cd.File)

		for _, fd := range cd.Methods {
			f, err := buildFunc(fd, cd.File)
			if err != nil {
				return nil, fmt.Errorf("class %s method %s: %w", cd.Name, fd.Name, err)
			}

			c.AddMethod(f)
		}

		for _, fd := range cd.Constructors {
			if fd.Name == "" {
				fd.Name = cd.Name
			}

			f, err := buildFunc(fd, cd.File)
			if err != nil {
				return nil, fmt.Errorf("class %s constructor: %w", cd.Name, err)
			}

			c.AddConstructor(f)
		}

		if err := g.AddClass(c); err != nil {
			return nil, err
		}

		classes[i] = c
	}

	external := make(map[string]*Class)

	for i, cd := range df.Classes {
		for _, baseName := range cd.Bases {
			base, err := g.LookupClass(baseName)
			if err != nil {
				key := NormalizeName(baseName)
				ext, ok := external[key]

				if !ok {
					ext = NewClass(baseName, "")
					external[key] = ext
				}

				base = ext
			}

			classes[i].AddBase(base)
		}
	}

	for _, fd := range df.Functions {
		f, err := buildFunc(fd, "")
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", fd.Name, err)
		}

		g.AddFunction(f)
	}

	for _, vd := range df.Variables {
		if err := g.AddVariable(NewVar(vd.Name, vd.Type, vd.File)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func buildFunc(fd FunctionDump, defaultFile string) (*Func, error) {
	access, ok := ParseAccess(fd.Access)
	if !ok {
		return nil, fmt.Errorf("invalid access %q", fd.Access)
	}

	file := fd.File
	if file == "" {
		file = defaultFile
	}

	return NewFunc(fd.Name, access, fd.Args...).InFile(file), nil
}
