package model

import (
	"fmt"

	"wrapgen/internal/config"
	"wrapgen/internal/decl"
	"wrapgen/internal/naming"
	"wrapgen/internal/source"
)

// Entity is a class, free function or variable subject to wrapping.
type Entity interface {
	Kind() Kind
	Info() *EntityInfo
}

// EntityInfo is the state shared by every entity variant.
type EntityInfo struct {
	name           string
	nameOverride   string
	sourceFile     string
	sourceFilePath string

	module *Module
	node   *config.Node

	// templated distinguishes "not templated" from "templated with zero
	// instantiations"; explicit marks argument lists set in the document.
	templated bool
	explicit  bool

	templateParams    []string
	templateSignature string
	argLists          config.ArgLists

	names naming.Names
	decls []decl.Handle
	stage Stage
}

func newEntityInfo(m *Module, def config.EntityDef) EntityInfo {
	e := EntityInfo{
		name:           def.Name,
		nameOverride:   def.NameOverride,
		sourceFile:     def.SourceFile,
		sourceFilePath: def.SourceFilePath,
		module:         m,
		stage:          StageConfigured,
	}

	if m != nil && m.node != nil {
		e.node = m.node.Child(def.Name, def.Options.Values())
	} else {
		e.node = config.NewRoot(def.Name, def.Options.Values(), config.Defaults())
	}

	if def.TemplateArgLists != nil {
		e.templated = true
		e.explicit = true
		e.argLists = def.TemplateArgLists.Clone()
	}

	return e
}

// Info returns the shared entity state.
func (e *EntityInfo) Info() *EntityInfo { return e }

// Name returns the C++ name of the entity.
func (e *EntityInfo) Name() string { return e.name }

// NameOverride returns the configured identifier override, or "".
func (e *EntityInfo) NameOverride() string { return e.nameOverride }

// SourceFile returns the configured header base name, or "".
func (e *EntityInfo) SourceFile() string { return e.sourceFile }

// SourceFilePath returns the absolute header path, or "" when unknown.
func (e *EntityInfo) SourceFilePath() string { return e.sourceFilePath }

// SetSourceFilePath records a header found by source discovery.
func (e *EntityInfo) SetSourceFilePath(path string) { e.sourceFilePath = path }

// Module returns the owning module.
func (e *EntityInfo) Module() *Module { return e.module }

// Config returns the entity configuration node.
func (e *EntityInfo) Config() *config.Node { return e.node }

// CheckExcluded reads the excluded option, failing with config.ErrWrongType
// when the value is not a boolean.
func (e *EntityInfo) CheckExcluded() (bool, error) {
	excluded, err := e.node.Bool(config.KeyExcluded)
	if err != nil {
		return false, fmt.Errorf("%s: %w", e.name, err)
	}

	return excluded, nil
}

// Excluded reports whether the entity is excluded from wrapping. A malformed
// value reads as false; the runner rejects it through CheckExcluded before
// any later stage asks.
func (e *EntityInfo) Excluded() bool {
	excluded, err := e.CheckExcluded()

	return err == nil && excluded
}

// Templated reports whether the entity has template argument lists.
func (e *EntityInfo) Templated() bool { return e.templated }

// HasExplicitArgLists reports whether the document pinned the argument lists.
func (e *EntityInfo) HasExplicitArgLists() bool { return e.explicit }

// ArgLists returns the template argument lists, one per instantiation.
func (e *EntityInfo) ArgLists() config.ArgLists { return e.argLists }

// TemplateParams returns the parameter names of the matched signature.
func (e *EntityInfo) TemplateParams() []string { return e.templateParams }

// TemplateSignature returns the matched signature text, or "".
func (e *EntityInfo) TemplateSignature() string { return e.templateSignature }

// Candidates returns the template substitutions gathered from the package
// down to the entity, package entries first.
func (e *EntityInfo) Candidates() ([]config.TemplateSubstitution, error) {
	return e.node.Substitutions(config.RootFirst)
}

// ApplyTemplate records a template signature match. It is only valid while
// the entity is Configured.
func (e *EntityInfo) ApplyTemplate(m source.Match) {
	if e.stage != StageConfigured {
		return
	}

	e.templated = true
	e.templateSignature = m.Signature
	e.argLists = m.ArgLists
	e.templateParams = m.Params
}

// ResolveNames computes the name sequences and advances to TemplateResolved.
func (e *EntityInfo) ResolveNames() error {
	table, err := e.node.Replacements()
	if err != nil {
		return err
	}

	names, err := naming.Resolve(naming.Input{
		Name:         e.name,
		Override:     e.nameOverride,
		ArgLists:     e.argLists,
		Templated:    e.templated,
		Replacements: table,
	})
	if err != nil {
		return err
	}

	if err := e.Advance(StageTemplateResolved); err != nil {
		return err
	}

	e.names = names

	return nil
}

// Names returns the resolved name sequences.
func (e *EntityInfo) Names() naming.Names { return e.names }

// Decls returns the bound declarations, one per instantiation.
func (e *EntityInfo) Decls() []decl.Handle { return e.decls }

// Bind attaches the declarations and advances to Bound. The number of
// declarations must match the number of resolved names.
func (e *EntityInfo) Bind(decls []decl.Handle) error {
	if err := advance(e.name, e.stage, StageBound); err != nil {
		return err
	}

	if len(decls) != e.names.Len() {
		return fmt.Errorf("%s: %d declarations for %d names", e.name, len(decls), e.names.Len())
	}

	e.stage = StageBound
	e.decls = decls

	return nil
}

// Stage returns the current stage.
func (e *EntityInfo) Stage() Stage { return e.stage }

// Advance moves the entity to the next stage.
func (e *EntityInfo) Advance(to Stage) error {
	if err := advance(e.name, e.stage, to); err != nil {
		return err
	}

	e.stage = to

	return nil
}

// Class is a class or struct entity.
type Class struct {
	EntityInfo

	baseDecls []decl.Declaration
}

// Kind implements Entity.
func (c *Class) Kind() Kind { return KindClass }

// Declarations returns the bound class declarations.
func (c *Class) Declarations() []decl.Declaration {
	out := make([]decl.Declaration, 0, len(c.decls))
	for _, h := range c.decls {
		if d, ok := h.(decl.Declaration); ok {
			out = append(out, d)
		}
	}

	return out
}

// BaseDecls returns the direct bases of every bound declaration, in
// declaration order then base order.
func (c *Class) BaseDecls() []decl.Declaration { return c.baseDecls }

// SetBaseDecls records the collected base declarations.
func (c *Class) SetBaseDecls(bases []decl.Declaration) { c.baseDecls = bases }

// FreeFunction is a namespace-level function entity.
type FreeFunction struct {
	EntityInfo
}

// Kind implements Entity.
func (f *FreeFunction) Kind() Kind { return KindFreeFunction }

// Variable is a namespace-level variable entity.
type Variable struct {
	EntityInfo
}

// Kind implements Entity.
func (v *Variable) Kind() Kind { return KindVariable }
