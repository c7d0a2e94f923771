package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrapgen/internal/config"
	"wrapgen/internal/decl"
	"wrapgen/internal/model"
)

// fixture builds one module whose classes are bound to the given
// declarations, in order.
func fixture(t *testing.T, decls ...*decl.Class) []*model.Class {
	t.Helper()

	pf := &config.PackageFile{Name: "p", Modules: []config.ModuleDef{{Name: "m"}}}
	for _, d := range decls {
		pf.Modules[0].Classes.Entities = append(pf.Modules[0].Classes.Entities, config.EntityDef{Name: d.Name()})
	}

	classes := model.Build(pf).Modules()[0].Classes()

	for i, c := range classes {
		require.NoError(t, c.ResolveNames())
		require.NoError(t, c.Bind([]decl.Handle{decls[i]}))
		c.SetBaseDecls(decls[i].Bases())
	}

	return classes
}

func TestIsBaseOf(t *testing.T) {
	base := decl.NewClass("Base", "")
	derived := decl.NewClass("Derived", "").AddBase(base)

	classes := fixture(t, base, derived)
	b, d := classes[0], classes[1]

	assert.True(t, IsBaseOf(b, d))
	assert.False(t, IsBaseOf(d, b))
	assert.False(t, IsBaseOf(b, b), "irreflexive without a self base")
	assert.False(t, IsBaseOf(d, d))
}

func TestIsBaseOf_IdentityNotName(t *testing.T) {
	other := decl.NewClass("Base", "other/Base.hpp")
	base := decl.NewClass("Base", "Base.hpp")
	derived := decl.NewClass("Derived", "").AddBase(other)

	classes := fixture(t, base, derived)

	assert.False(t, IsBaseOf(classes[0], classes[1]), "same name, different declaration")
}

func TestRequires(t *testing.T) {
	point := decl.NewClass("Point", "")
	pointSet := decl.NewClass("PointSet", "")
	mesh := decl.NewClass("Mesh", "").
		AddConstructor(decl.NewFunc("Mesh", decl.AccessPublic, "std::vector<Point> const &")).
		AddMethod(decl.NewFunc("Internal", decl.AccessPrivate, "PointSet*"))
	private := decl.NewClass("Private", "").
		AddMethod(decl.NewFunc("Load", decl.AccessPrivate, "Point")).
		AddMethod(decl.NewFunc("Save", decl.AccessProtected, "Point const&"))
	user := decl.NewClass("User", "").
		AddMethod(decl.NewFunc("Set", decl.AccessPublic, "int", "PointSet const &"))

	classes := fixture(t, point, pointSet, mesh, private, user)
	p, ps, m, priv, u := classes[0], classes[1], classes[2], classes[3], classes[4]

	assert.True(t, Requires(m, p), "public constructor argument")
	assert.False(t, Requires(m, ps), "private method only")
	assert.False(t, Requires(priv, p), "non-public methods never count")
	assert.True(t, Requires(u, ps))
	assert.False(t, Requires(u, p), "whole word: Point does not match PointSet")
	assert.False(t, Requires(p, m))
}

func TestAnalyze(t *testing.T) {
	base := decl.NewClass("Base", "")
	derived := decl.NewClass("Derived", "").AddBase(base).
		AddMethod(decl.NewFunc("Attach", decl.AccessPublic, "Helper&"))
	helper := decl.NewClass("Helper", "")

	classes := fixture(t, base, derived, helper)

	r, err := Analyze(classes)
	require.NoError(t, err)

	for _, c := range classes {
		assert.Equal(t, model.StageAnalyzed, c.Stage())
	}

	b, d, h := classes[0], classes[1], classes[2]
	assert.True(t, r.IsBaseOf(b, d))
	assert.False(t, r.IsBaseOf(d, b))
	assert.True(t, r.Requires(d, h))
	assert.False(t, r.Requires(h, d))
	assert.Equal(t, []*model.Class{b}, r.BasesOf(d))
	assert.Equal(t, []*model.Class{h}, r.Required(d))
	assert.Equal(t, 2, r.Index(h))
	assert.Len(t, r.Classes(), 3)
}

func TestAnalyze_SkipsExcludedAndRequiresBound(t *testing.T) {
	excluded := true
	pf := &config.PackageFile{Name: "p", Modules: []config.ModuleDef{{
		Name: "m",
		Classes: config.EntityList{Entities: []config.EntityDef{
			{Name: "Skipped", Options: config.Options{Excluded: &excluded}},
			{Name: "Unbound"},
		}},
	}}}

	classes := model.Build(pf).Modules()[0].Classes()

	_, err := Analyze(classes)
	require.ErrorIs(t, err, ErrNotBound)
	assert.Contains(t, err.Error(), "Unbound")

	r, err := Analyze(classes[:1])
	require.NoError(t, err)
	assert.Empty(t, r.Classes())
	assert.Equal(t, -1, r.Index(classes[0]))
	assert.Equal(t, model.StageConfigured, classes[0].Stage())
}

func names(cs []*model.Class) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}

	return out
}

func TestOrder(t *testing.T) {
	// Declared derived-first so that ordering has to move things.
	base := decl.NewClass("Base", "")
	helper := decl.NewClass("Helper", "")
	derived := decl.NewClass("Derived", "").AddBase(base).
		AddMethod(decl.NewFunc("Use", decl.AccessPublic, "Helper const&"))
	leaf := decl.NewClass("Leaf", "").AddBase(derived)

	classes := fixture(t, leaf, derived, helper, base)

	r, err := Analyze(classes)
	require.NoError(t, err)

	plan, err := Order(r)
	require.NoError(t, err)

	assert.Equal(t, []string{"Helper", "Base", "Derived", "Leaf"}, names(plan.Order))
	assert.Empty(t, plan.Dropped)

	again, err := Order(r)
	require.NoError(t, err)
	assert.Equal(t, plan.Order, again.Order, "deterministic")
}

func TestOrder_DropsRequiresCycle(t *testing.T) {
	a := decl.NewClass("A", "")
	b := decl.NewClass("B", "")
	a.AddMethod(decl.NewFunc("SetB", decl.AccessPublic, "B*"))
	b.AddMethod(decl.NewFunc("SetA", decl.AccessPublic, "A*"))

	classes := fixture(t, a, b)

	r, err := Analyze(classes)
	require.NoError(t, err)

	plan, err := Order(r)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A"}, names(plan.Order))
	require.Len(t, plan.Dropped, 1)
	assert.Equal(t, "A", plan.Dropped[0].Before.Name())
	assert.Equal(t, "B", plan.Dropped[0].After.Name())
}

func TestOrder_BaseWinsOverRequires(t *testing.T) {
	base := decl.NewClass("Base", "")
	derived := decl.NewClass("Derived", "").AddBase(base)
	base.AddMethod(decl.NewFunc("Clone", decl.AccessPublic, "Derived*"))

	classes := fixture(t, base, derived)

	r, err := Analyze(classes)
	require.NoError(t, err)

	plan, err := Order(r)
	require.NoError(t, err)

	assert.Equal(t, []string{"Base", "Derived"}, names(plan.Order))
	require.Len(t, plan.Dropped, 1)
}

func TestOrder_BaseCycle(t *testing.T) {
	a := decl.NewClass("A", "")
	b := decl.NewClass("B", "").AddBase(a)
	a.AddBase(b)

	classes := fixture(t, a, b)

	r, err := Analyze(classes)
	require.NoError(t, err)

	_, err = Order(r)
	require.ErrorIs(t, err, ErrBaseCycle)
}

func TestTopoSort(t *testing.T) {
	order, err := topoSort(3, func(i int) []int {
		switch i {
		case 1:
			return []int{0}
		case 2:
			return []int{1}
		default:
			return nil
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)

	_, err = topoSort(2, func(i int) []int { return []int{1 - i} })
	require.Error(t, err)

	_, err = topoSort(1, func(int) []int { return []int{5} })
	require.Error(t, err)

	order, err = topoSort(0, nil)
	require.NoError(t, err)
	assert.Nil(t, order)
}
