package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapesDir = "../../examples/shapes"

func shapesArgs(t *testing.T, cmd string, extra ...string) []string {
	t.Helper()

	root, err := filepath.Abs(shapesDir)
	require.NoError(t, err)

	args := []string{
		cmd,
		"--source_root", root,
		"-p", filepath.Join(root, "package_info.yaml"),
		"-d", filepath.Join(root, "decls.yaml"),
	}

	return append(args, extra...)
}

func TestExample_ShapesResolve(t *testing.T) {
	stdout, err := execute(t, shapesArgs(t, "resolve", "--wrapper_root", t.TempDir())...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.GreaterOrEqual(t, len(lines), 11)

	assert.Equal(t, []string{
		"module geometry",
		"  class Point<2 > -> Point2",
		"  class Point<3 > -> Point3",
		"  class AbstractShape<2,2 > -> AbstractShape2_2",
		"  class AbstractShape<3,3 > -> AbstractShape3_3",
		"  class Rectangle -> Rectangle",
		"module mesh",
		"  class Scene<2 > -> Scene2",
		"  class Scene<3 > -> Scene3",
		"  free function MakeRectangle -> MakeRectangle",
		"order: Point, AbstractShape, Rectangle, Scene",
	}, lines[:11])

	warnings := lines[11:]
	require.Len(t, warnings, 2, "both AbstractShape instantiations bind through their compressed names")
	assert.Contains(t, warnings[0], "AbstractShape<2>")
	assert.Contains(t, warnings[1], "AbstractShape<3>")
}

func TestExample_ShapesHeaders(t *testing.T) {
	out := t.TempDir()

	_, err := execute(t, shapesArgs(t, "headers", "--wrapper_root", out)...)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(out, "wrapper_header_collection.hpp"))
	require.NoError(t, err)

	want := `// This file is automatically generated by wrapgen. Do not edit.
#ifndef pyshapes_HEADERS_HPP_
#define pyshapes_HEADERS_HPP_

// Includes
#include "AbstractShape.hpp"
#include "Point.hpp"
#include "Rectangle.hpp"
#include "MeshFactory.hpp"
#include "Scene.hpp"

// Instantiate Template Classes
template class Point<2 >;
template class Point<3 >;
template class AbstractShape<2,2 >;
template class AbstractShape<3,3 >;
template class Scene<2 >;
template class Scene<3 >;

// Typedefs for nicer naming
namespace cppwg
{
    typedef Point<2 > Point2;
    typedef Point<3 > Point3;
    typedef AbstractShape<2,2 > AbstractShape2_2;
    typedef AbstractShape<3,3 > AbstractShape3_3;
    typedef Scene<2 > Scene2;
    typedef Scene<3 > Scene3;
} // namespace cppwg

#endif // pyshapes_HEADERS_HPP_
`
	assert.Equal(t, want, string(got))
}
