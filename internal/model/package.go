package model

import (
	"wrapgen/internal/config"
)

// Package is the root of the model.
type Package struct {
	name    string
	node    *config.Node
	modules []*Module
}

// Module is an ordered collection of entities sharing configuration.
type Module struct {
	name            string
	pkg             *Package
	node            *config.Node
	sourceLocations []string

	allClasses   bool
	allFunctions bool
	allVariables bool

	classes   []*Class
	functions []*FreeFunction
	variables []*Variable
}

// Build materializes a package document. Paths in pf are expected to be
// expanded already.
func Build(pf *config.PackageFile) *Package {
	p := &Package{
		name: pf.Name,
		node: config.NewRoot(pf.Name, pf.Options.Values(), config.Defaults()),
	}

	for i := range pf.Modules {
		md := &pf.Modules[i]

		m := &Module{
			name:            md.Name,
			pkg:             p,
			node:            p.node.Child(md.Name, md.Options.Values()),
			sourceLocations: append([]string{}, md.SourceLocations...),
			allClasses:      md.Classes.All,
			allFunctions:    md.FreeFunctions.All,
			allVariables:    md.Variables.All,
		}

		for _, def := range md.Classes.Entities {
			m.AddClass(def)
		}

		for _, def := range md.FreeFunctions.Entities {
			m.AddFreeFunction(def)
		}

		for _, def := range md.Variables.Entities {
			m.AddVariable(def)
		}

		p.modules = append(p.modules, m)
	}

	return p
}

// Name returns the package name.
func (p *Package) Name() string { return p.name }

// Config returns the package configuration node.
func (p *Package) Config() *config.Node { return p.node }

// Modules returns the modules in document order.
func (p *Package) Modules() []*Module { return p.modules }

// Classes returns every class of every module in order.
func (p *Package) Classes() []*Class {
	var out []*Class
	for _, m := range p.modules {
		out = append(out, m.classes...)
	}

	return out
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// Package returns the owning package.
func (m *Module) Package() *Package { return m.pkg }

// Config returns the module configuration node.
func (m *Module) Config() *config.Node { return m.node }

// SourceLocations returns the module source directories.
func (m *Module) SourceLocations() []string { return m.sourceLocations }

// AllClasses reports whether the module wraps every class under its source
// locations.
func (m *Module) AllClasses() bool { return m.allClasses }

// AllFreeFunctions reports whether the module wraps every free function
// under its source locations.
func (m *Module) AllFreeFunctions() bool { return m.allFunctions }

// AllVariables reports whether the module wraps every variable under its
// source locations.
func (m *Module) AllVariables() bool { return m.allVariables }

// Classes returns the module classes in order.
func (m *Module) Classes() []*Class { return m.classes }

// FreeFunctions returns the module free functions in order.
func (m *Module) FreeFunctions() []*FreeFunction { return m.functions }

// Variables returns the module variables in order.
func (m *Module) Variables() []*Variable { return m.variables }

// Entities returns classes, then free functions, then variables.
func (m *Module) Entities() []Entity {
	out := make([]Entity, 0, len(m.classes)+len(m.functions)+len(m.variables))
	for _, c := range m.classes {
		out = append(out, c)
	}

	for _, f := range m.functions {
		out = append(out, f)
	}

	for _, v := range m.variables {
		out = append(out, v)
	}

	return out
}

// AddClass appends a class configured by def.
func (m *Module) AddClass(def config.EntityDef) *Class {
	c := &Class{EntityInfo: newEntityInfo(m, def)}
	m.classes = append(m.classes, c)

	return c
}

// AddFreeFunction appends a free function configured by def.
func (m *Module) AddFreeFunction(def config.EntityDef) *FreeFunction {
	f := &FreeFunction{EntityInfo: newEntityInfo(m, def)}
	m.functions = append(m.functions, f)

	return f
}

// AddVariable appends a variable configured by def.
func (m *Module) AddVariable(def config.EntityDef) *Variable {
	v := &Variable{EntityInfo: newEntityInfo(m, def)}
	m.variables = append(m.variables, v)

	return v
}

// HasClass reports whether a class with the given name is already listed.
func (m *Module) HasClass(name string) bool {
	for _, c := range m.classes {
		if c.name == name {
			return true
		}
	}

	return false
}
