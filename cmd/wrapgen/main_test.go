package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPackage = `
name: shapes
template_substitutions:
  - signature: "<unsigned DIM>"
    replacement: [[2], [3]]
modules:
  - name: geometry
    source_locations: [src]
    classes:
      - name: Foo
      - name: Base
`

const testDecls = `
classes:
  - name: "Foo<2>"
    file: src/Foo.hpp
    bases: [Base]
  - name: "Foo<3>"
    file: src/Foo.hpp
    bases: [Base]
  - name: Base
    file: src/Base.hpp
`

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func newTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package_info.yaml": testPackage,
		"decls.yaml":        testDecls,
		"src/Base.hpp":      "class Base {};\n",
		"src/Foo.hpp":       "#include \"Base.hpp\"\ntemplate <unsigned DIM>\nclass Foo : public Base {};\n",
	})

	return root
}

func TestResolveCmd(t *testing.T) {
	root := newTree(t)
	out := filepath.Join(root, "out")

	stdout, err := execute(t, "resolve",
		"--source_root", root,
		"--wrapper_root", out,
		"-p", filepath.Join(root, "package_info.yaml"),
		"-d", filepath.Join(root, "decls.yaml"),
		"--manifest",
	)
	require.NoError(t, err)

	assert.Equal(t, `module geometry
  class Foo<2 > -> Foo2
  class Foo<3 > -> Foo3
  class Base -> Base
order: Base, Foo
`, stdout)

	manifest, err := os.ReadFile(filepath.Join(out, "wrapgen_manifest.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "package: shapes")
}

func TestResolveCmd_RequiresDeclarations(t *testing.T) {
	root := newTree(t)

	_, err := execute(t, "resolve", "--source_root", root, "-p", filepath.Join(root, "package_info.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declaration")
}

func TestResolveCmd_MissingPackageInfo(t *testing.T) {
	_, err := execute(t, "resolve", "--source_root", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package info path is not set")
}

func TestHeadersCmd(t *testing.T) {
	root := newTree(t)

	_, err := execute(t, "headers",
		"--source_root", root,
		"-p", filepath.Join(root, "package_info.yaml"),
		"--header_collection", "shapes_headers.hpp",
	)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(root, "shapes_headers.hpp"))
	require.NoError(t, err)

	content := string(got)
	assert.Contains(t, content, "#include \"Foo.hpp\"\n#include \"Base.hpp\"\n")
	assert.Contains(t, content, "template class Foo<2 >;\ntemplate class Foo<3 >;\n")
	assert.Contains(t, content, "    typedef Foo<3 > Foo3;\n")
}
