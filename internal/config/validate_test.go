package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrapgen/internal/diagnostic"
)

func codes(diags []string) map[string]bool {
	out := map[string]bool{}
	for _, c := range diags {
		out[c] = true
	}

	return out
}

func TestValidate_Valid(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "Foo.hpp"), []byte("class Foo {};"), 0o644))

	pf, err := Parse([]byte(`
name: pkg
modules:
  - name: core
    source_locations: [src]
    classes:
      - name: Foo
        source_file_path: src/Foo.hpp
        template_substitutions:
          - signature: "<int A, int B = A>"
            replacement: [[2], [2, 2]]
`))
	require.NoError(t, err)

	ExpandPaths(pf, root)

	res := Validate(pf)
	assert.False(t, res.HasErrors(), res.Err())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Problems(t *testing.T) {
	root := t.TempDir()

	pf, err := Parse([]byte(`
template_substitutions:
  - replacement: [[1]]
modules:
  - name: core
    source_locations: [missing_dir]
    classes:
      - name: Foo
        source_file_path: missing/Foo.hpp
      - name: Foo
      - name_override: Nameless
    free_functions:
      - name: f
        template_substitutions:
          - signature: "<int A, int B>"
            replacement: [[1, 2, 3], [1]]
  - name: core
`))
	require.NoError(t, err)

	ExpandPaths(pf, root)

	res := Validate(pf)
	require.True(t, res.HasErrors())

	errCodes, warnCodes := diagnostic.Codes(res.Errors), diagnostic.Codes(res.Warnings)

	got := codes(errCodes)
	for _, want := range []string{
		"substitution_without_signature",
		"source_location_not_found",
		"source_file_not_found",
		"duplicate_entity",
		"entity_without_name",
		"substitution_arity",
		"duplicate_module",
	} {
		assert.True(t, got[want], "missing error %s in %v", want, errCodes)
	}

	assert.True(t, codes(warnCodes)["substitution_arity"])

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, diagnostic.StageConfig, res.Warnings[0].Stage)
	assert.Equal(t, "f", res.Warnings[0].Entity)
	assert.Equal(t, "<int A, int B>", res.Warnings[0].Cpp)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "package_is_nil", res.Errors[0].Code)
}
