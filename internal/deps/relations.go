package deps

import (
	"errors"
	"fmt"
	"regexp"

	"wrapgen/internal/decl"
	"wrapgen/internal/model"
)

// ErrNotBound is returned when a class reaches analysis before binding.
var ErrNotBound = errors.New("class is not bound")

// IsBaseOf reports whether a declaration bound to a is a direct base of b.
func IsBaseOf(a, b *model.Class) bool {
	for _, base := range b.BaseDecls() {
		for _, d := range a.Decls() {
			if decl.Handle(base) == d {
				return true
			}
		}
	}

	return false
}

// Requires reports whether a public method or constructor of a takes an
// argument whose type names b.
func Requires(a, b *model.Class) bool {
	return requires(a, wordPattern(b.Name()))
}

func requires(a *model.Class, pattern *regexp.Regexp) bool {
	for _, d := range a.Declarations() {
		if anyArgMatches(d.MemberFunctions(), pattern) || anyArgMatches(d.Constructors(), pattern) {
			return true
		}
	}

	return false
}

func anyArgMatches(fns []decl.Function, pattern *regexp.Regexp) bool {
	for _, f := range fns {
		if f.Access() != decl.AccessPublic {
			continue
		}

		for _, arg := range f.ArgumentTypes() {
			if pattern.MatchString(arg) {
				return true
			}
		}
	}

	return false
}

func wordPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
}

// Relations is the relation matrix over the analyzed classes.
type Relations struct {
	classes  []*model.Class
	index    map[*model.Class]int
	baseOf   [][]bool
	requires [][]bool
}

// Analyze computes both relations over every non-excluded class and
// advances those classes to Analyzed. Every such class must be bound.
func Analyze(classes []*model.Class) (*Relations, error) {
	var in []*model.Class

	for _, c := range classes {
		if c.Excluded() {
			continue
		}

		if c.Stage() != model.StageBound {
			return nil, fmt.Errorf("%s is %v: %w", c.Name(), c.Stage(), ErrNotBound)
		}

		in = append(in, c)
	}

	n := len(in)
	r := &Relations{
		classes:  in,
		index:    make(map[*model.Class]int, n),
		baseOf:   make([][]bool, n),
		requires: make([][]bool, n),
	}

	patterns := make([]*regexp.Regexp, n)

	for i, c := range in {
		r.index[c] = i
		r.baseOf[i] = make([]bool, n)
		r.requires[i] = make([]bool, n)
		patterns[i] = wordPattern(c.Name())
	}

	for i, a := range in {
		for j, b := range in {
			r.baseOf[i][j] = IsBaseOf(a, b)

			if i != j {
				r.requires[i][j] = requires(a, patterns[j])
			}
		}
	}

	for _, c := range in {
		if err := c.Advance(model.StageAnalyzed); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Classes returns the analyzed classes in input order.
func (r *Relations) Classes() []*model.Class { return r.classes }

// Index returns the position of c, or -1 if c was not analyzed.
func (r *Relations) Index(c *model.Class) int {
	if i, ok := r.index[c]; ok {
		return i
	}

	return -1
}

// IsBaseOf reports the relation between two analyzed classes.
func (r *Relations) IsBaseOf(a, b *model.Class) bool {
	i, j := r.Index(a), r.Index(b)

	return i >= 0 && j >= 0 && r.baseOf[i][j]
}

// Requires reports the relation between two analyzed classes. A class never
// requires itself.
func (r *Relations) Requires(a, b *model.Class) bool {
	i, j := r.Index(a), r.Index(b)

	return i >= 0 && j >= 0 && r.requires[i][j]
}

// BasesOf returns the analyzed classes that are direct bases of c.
func (r *Relations) BasesOf(c *model.Class) []*model.Class {
	j := r.Index(c)
	if j < 0 {
		return nil
	}

	var out []*model.Class

	for i, other := range r.classes {
		if r.baseOf[i][j] {
			out = append(out, other)
		}
	}

	return out
}

// Required returns the analyzed classes c requires.
func (r *Relations) Required(c *model.Class) []*model.Class {
	i := r.Index(c)
	if i < 0 {
		return nil
	}

	var out []*model.Class

	for j, other := range r.classes {
		if r.requires[i][j] {
			out = append(out, other)
		}
	}

	return out
}
