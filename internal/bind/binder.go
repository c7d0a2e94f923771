package bind

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"wrapgen/internal/config"
	"wrapgen/internal/decl"
	"wrapgen/internal/diagnostic"
	"wrapgen/internal/match"
	"wrapgen/internal/model"
	"wrapgen/internal/naming"
)

const (
	// CodeCompressedFallback marks a class bound through its compressed name.
	CodeCompressedFallback = "compressed_name_fallback"

	maxSuggestions = 3
)

// Binder looks up declarations for entities in one namespace.
// It is not safe for concurrent use.
type Binder struct {
	ns     decl.Namespace
	logger logrus.FieldLogger
	diags  diagnostic.Diagnostics
}

// NewBinder creates a Binder. A nil logger discards output.
func NewBinder(ns decl.Namespace, logger logrus.FieldLogger) *Binder {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	return &Binder{ns: ns, logger: logger}
}

// Diagnostics returns the warnings recorded so far.
func (b *Binder) Diagnostics() diagnostic.Diagnostics { return b.diags }

// Bind attaches declarations to e and advances it to Bound. Excluded
// entities are skipped without any lookup.
func (b *Binder) Bind(e model.Entity) error {
	info := e.Info()
	if info.Excluded() {
		return nil
	}

	switch v := e.(type) {
	case *model.Class:
		return b.bindClass(v)
	case *model.FreeFunction:
		return b.bindEach(info, func(name string) (decl.Handle, error) {
			return b.ns.LookupFunction(name)
		}, b.functionNames)
	case *model.Variable:
		return b.bindEach(info, func(name string) (decl.Handle, error) {
			return b.ns.LookupVariable(name)
		}, b.variableNames)
	default:
		return fmt.Errorf("cannot bind %s %s", e.Kind(), info.Name())
	}
}

func (b *Binder) bindClass(c *model.Class) error {
	cpp := c.Names().Cpp
	handles := make([]decl.Handle, 0, len(cpp))

	var bases []decl.Declaration

	for i, name := range cpp {
		d, err := b.lookupClass(c, i, name)
		if err != nil {
			return err
		}

		handles = append(handles, d)
		bases = append(bases, d.Bases()...)
	}

	if err := c.Bind(handles); err != nil {
		return err
	}

	c.SetBaseDecls(bases)

	return nil
}

func (b *Binder) lookupClass(c *model.Class, idx int, name string) (decl.Declaration, error) {
	flat := decl.NormalizeName(name)

	d, err := b.ns.LookupClass(flat)
	if err == nil {
		return d, nil
	}

	if !errors.Is(err, decl.ErrNotFound) {
		return nil, err
	}

	sig := c.TemplateSignature()
	if !strings.Contains(sig, "=") {
		b.logger.WithField("entity", c.Name()).Errorf("could not find declaration for class %s", flat)

		return nil, b.notFound(flat, []string{flat}, b.classNames, err)
	}

	b.logger.WithField("entity", c.Name()).
		Warnf("could not find declaration for class %s: trying for a partial match", flat)

	pos := config.FirstDefaultIndex(sig)
	if pos <= 0 {
		return nil, b.notFound(flat, []string{flat}, b.classNames, ErrAmbiguousSignature)
	}

	args := c.ArgLists()[idx]
	if pos > len(args) {
		pos = len(args)
	}

	short := decl.NormalizeName(naming.CppNames(c.Name(), config.ArgLists{args[:pos]}, true)[0])

	d, err = b.ns.LookupClass(short)
	if err != nil {
		b.logger.WithField("entity", c.Name()).Errorf("could not find declaration for class %s", short)

		return nil, b.notFound(flat, []string{flat, short}, b.classNames, err)
	}

	b.logger.WithField("entity", c.Name()).Infof("found %s", short)
	b.diags.Warn(diagnostic.Diagnostic{
		Stage:   diagnostic.StageBind,
		Code:    CodeCompressedFallback,
		Entity:  c.Name(),
		Cpp:     short,
		Message: fmt.Sprintf("%s bound to %s through its default template arguments", flat, short),
	})

	return d, nil
}

func (b *Binder) bindEach(
	info *model.EntityInfo,
	lookup func(string) (decl.Handle, error),
	known func() []string,
) error {
	cpp := info.Names().Cpp
	handles := make([]decl.Handle, 0, len(cpp))

	for _, name := range cpp {
		flat := decl.NormalizeName(name)

		h, err := lookup(flat)
		if err != nil {
			if errors.Is(err, decl.ErrNotFound) {
				return b.notFound(flat, []string{flat}, known, err)
			}

			return err
		}

		handles = append(handles, h)
	}

	return info.Bind(handles)
}

func (b *Binder) notFound(name string, tried []string, known func() []string, cause error) error {
	return &NotFoundError{
		Name:        name,
		Tried:       tried,
		Suggestions: match.Suggest(name, known(), maxSuggestions, match.DefaultMinScore),
		Err:         cause,
	}
}

func (b *Binder) classNames() []string {
	return namesOf(b.ns.Classes())
}

func (b *Binder) functionNames() []string {
	return namesOf(b.ns.Functions())
}

func (b *Binder) variableNames() []string {
	return namesOf(b.ns.Variables())
}

func namesOf[H decl.Handle](hs []H) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Name()
	}

	return out
}
