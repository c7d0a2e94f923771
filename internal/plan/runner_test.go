package plan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrapgen/internal/bind"
	"wrapgen/internal/config"
	"wrapgen/internal/decl"
	"wrapgen/internal/model"
	"wrapgen/internal/naming"
)

const packageYAML = `
name: shapes
template_substitutions:
  - signature: "<unsigned DIM>"
    replacement: [[2], [3]]
  - signature: "<int A, int B = A>"
    replacement: [[2, 2], [3, 3]]
modules:
  - name: geometry
    source_locations: [src/geometry]
    classes:
      - name: Base
      - name: Foo
      - name: Helper
        source_file: Helpers.hpp
      - name: Legacy
        excluded: true
    free_functions: [area]
    variables: [origin]
`

type fixture struct {
	root string
	pkg  *model.Package
	g    *decl.Graph
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newFixture(t *testing.T, doc string) *fixture {
	t.Helper()

	root := t.TempDir()
	geo := filepath.Join(root, "src", "geometry")

	write(t, filepath.Join(geo, "Base.hpp"), "class Base {};\n")
	write(t, filepath.Join(geo, "Foo.hpp"), `
#include "Base.hpp"
// template <unsigned DIM> class Foo;
template <int A, int B = A>
class Foo : public Base
{
public:
    void Use(const Helper& h);
};
`)
	write(t, filepath.Join(geo, "Helpers.hpp"), "class Helper {};\n")

	pf, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	config.ExpandPaths(pf, root)

	base := decl.NewClass("Base", filepath.Join(geo, "Base.hpp"))
	helper := decl.NewClass("Helper", filepath.Join(geo, "Helpers.hpp"))
	foo2 := decl.NewClass("Foo<2>", filepath.Join(geo, "Foo.hpp")).AddBase(base).
		AddMethod(decl.NewFunc("Use", decl.AccessPublic, "Helper const &"))
	foo3 := decl.NewClass("Foo<3>", filepath.Join(geo, "Foo.hpp")).AddBase(base)

	g := decl.NewGraph()
	for _, c := range []*decl.Class{foo2, foo3, helper, base} {
		require.NoError(t, g.AddClass(c))
	}

	g.AddFunction(decl.NewFunc("area", decl.AccessPublic, "Base const &").InFile(filepath.Join(geo, "Area.hpp")))
	require.NoError(t, g.AddVariable(decl.NewVar("origin", "double", filepath.Join(geo, "Origin.hpp"))))

	return &fixture{root: root, pkg: model.Build(pf), g: g}
}

func TestRun(t *testing.T) {
	f := newFixture(t, packageYAML)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	res, err := NewRunner(f.g, nil, logger, Config{Parallelism: 2}).Run(context.Background(), f.pkg)
	require.NoError(t, err)

	geo := res.Package.Modules()[0]
	base, foo, helper, legacy := geo.Classes()[0], geo.Classes()[1], geo.Classes()[2], geo.Classes()[3]

	assert.Equal(t, filepath.Join(f.root, "src", "geometry", "Foo.hpp"), foo.SourceFilePath(), "header mapped by class name")
	assert.Equal(t, filepath.Join(f.root, "src", "geometry", "Helpers.hpp"), helper.SourceFilePath(), "header mapped by source_file")

	assert.Equal(t, "<int A, int B = A>", foo.TemplateSignature(), "commented-out signature does not match")
	assert.Equal(t, []string{"A", "B"}, foo.TemplateParams())
	assert.Equal(t, naming.Names{
		Cpp:         []string{"Foo<2,2 >", "Foo<3,3 >"},
		Identifiers: []string{"Foo2_2", "Foo3_3"},
	}, foo.Names())
	assert.Len(t, foo.Decls(), 2)
	assert.Len(t, foo.BaseDecls(), 2)

	assert.False(t, base.Templated(), "no candidate matches a plain class")

	for _, c := range []*model.Class{base, foo, helper} {
		assert.Equal(t, model.StageAnalyzed, c.Stage(), c.Name())
	}

	assert.Equal(t, model.StageConfigured, legacy.Stage())

	assert.Equal(t, model.StageBound, geo.FreeFunctions()[0].Stage())
	assert.Equal(t, model.StageBound, geo.Variables()[0].Stage())

	assert.True(t, res.Relations.IsBaseOf(base, foo))
	assert.True(t, res.Relations.Requires(foo, helper))

	var order []string
	for _, c := range res.Order {
		order = append(order, c.Name())
	}

	assert.Equal(t, []string{"Base", "Helper", "Foo"}, order)

	require.Len(t, res.Diagnostics.Warnings, 2)
	assert.Equal(t, bind.CodeCompressedFallback, res.Diagnostics.Warnings[0].Code)

	var resolvedLogged bool

	for _, e := range hook.AllEntries() {
		if e.Message == "package resolved" {
			resolvedLogged = true

			assert.Equal(t, "shapes", e.Data["package"])
		}
	}

	assert.True(t, resolvedLogged)
}

func TestMapSources_SourceFileOverridesClassName(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")

	for _, name := range []string{"Widget.hpp", "WidgetImpl.hpp", "Gadget.hpp", "Pinned.hpp"} {
		write(t, filepath.Join(src, name), "")
	}

	pf, err := config.Parse([]byte(`
name: kit
modules:
  - name: core
    source_locations: [src]
    classes:
      - name: Widget
        source_file: WidgetImpl.hpp
      - name: Gadget
      - name: Pinned
        source_file_path: elsewhere/Pinned.hpp
      - name: Orphan
        source_file: Missing.hpp
`))
	require.NoError(t, err)
	config.ExpandPaths(pf, root)

	m := model.Build(pf).Modules()[0]

	logger, _ := test.NewNullLogger()
	require.NoError(t, NewRunner(nil, nil, logger, Config{}).mapSources(m))

	widget, gadget, pinned, orphan := m.Classes()[0], m.Classes()[1], m.Classes()[2], m.Classes()[3]

	assert.Equal(t, filepath.Join(src, "WidgetImpl.hpp"), widget.SourceFilePath(), "source_file wins over the class name")
	assert.Equal(t, filepath.Join(src, "Gadget.hpp"), gadget.SourceFilePath())
	assert.Equal(t, filepath.Join(root, "elsewhere", "Pinned.hpp"), pinned.SourceFilePath(), "configured path is kept")
	assert.Empty(t, orphan.SourceFilePath(), "no fallback to the class name")
}

func TestRun_AllPopulatesFromNamespace(t *testing.T) {
	f := newFixture(t, `
modules:
  - name: geometry
    source_locations: [src/geometry]
    classes:
      - name: Foo
        template_arg_lists: [[2], [3]]
    free_functions: CPPWG_ALL
    variables: CPPWG_ALL
  - name: extra
    source_locations: [src/geometry]
    classes: CPPWG_ALL
`)

	res, err := NewRunner(f.g, nil, nil, DefaultConfig()).Run(context.Background(), f.pkg)
	require.NoError(t, err)

	geo := res.Package.Modules()[0]
	require.Len(t, geo.FreeFunctions(), 1)
	assert.Equal(t, "area", geo.FreeFunctions()[0].Name())
	require.Len(t, geo.Variables(), 1)
	assert.Equal(t, "origin", geo.Variables()[0].Name())

	extra := res.Package.Modules()[1]

	var classNames []string
	for _, c := range extra.Classes() {
		classNames = append(classNames, c.Name())
	}

	assert.Equal(t, []string{"Helper", "Base"}, classNames, "instantiations are skipped")
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantStage Stage
		wantErr   error
	}{
		{
			name:      "missing declaration",
			doc:       "modules:\n  - name: geometry\n    classes: [Ghost]\n",
			wantStage: StageBind,
			wantErr:   decl.ErrNotFound,
		},
		{
			name: "duplicate identifiers in a module",
			doc: `
modules:
  - name: geometry
    classes:
      - name: Base
        name_override: Shared
      - name: Helper
        name_override: Shared
`,
			wantStage: StageNames,
			wantErr:   naming.ErrDuplicateIdentifier,
		},
		{
			name: "duplicate identifiers within an entity",
			doc: `
modules:
  - name: geometry
    classes:
      - name: Foo
        template_arg_lists: [[2], ["2 "]]
`,
			wantStage: StageNames,
			wantErr:   naming.ErrDuplicateIdentifier,
		},
		{
			name:      "unreadable source location",
			doc:       "modules:\n  - name: geometry\n    source_locations: [nowhere]\n    classes: [Base]\n",
			wantStage: StageSources,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.doc)

			_, err := NewRunner(f.g, nil, nil, DefaultConfig()).Run(context.Background(), f.pkg)
			require.Error(t, err)
			assert.True(t, IsStage(err, tt.wantStage), "stage of %v", err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	f := newFixture(t, packageYAML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(f.g, nil, nil, DefaultConfig()).Run(ctx, f.pkg)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStageError(t *testing.T) {
	err := &StageError{Stage: StageBind, Entity: "geometry/Foo", Err: decl.ErrNotFound}
	assert.Equal(t, "bind geometry/Foo: declaration not found", err.Error())
	assert.ErrorIs(t, err, decl.ErrNotFound)

	err = &StageError{Stage: StageOrder, Err: decl.ErrNotFound}
	assert.Equal(t, "order: declaration not found", err.Error())
}

func TestResolve_WithoutNamespace(t *testing.T) {
	f := newFixture(t, packageYAML)

	r := NewRunner(nil, nil, nil, DefaultConfig())
	require.NoError(t, r.Resolve(context.Background(), f.pkg))

	foo := f.pkg.Modules()[0].Classes()[1]
	assert.Equal(t, model.StageTemplateResolved, foo.Stage())
	assert.Equal(t, []string{"Foo2_2", "Foo3_3"}, foo.Names().Identifiers)

	_, err := r.Run(context.Background(), f.pkg)
	assert.ErrorIs(t, err, ErrNoNamespace)
}
