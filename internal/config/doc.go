// Package config provides the package document schema, its YAML loader, and
// the hierarchical configuration tree used during resolution.
//
// # Schema Overview
//
// The package document has the following structure:
//
//	name: shapes
//	source_hpp_patterns: ["*.hpp"]
//	template_substitutions:
//	  - signature: "<unsigned DIM>"
//	    replacement: [[2], [3]]
//	modules:
//	  - name: geometry
//	    source_locations: [src/geometry]
//	    classes:
//	      - name: Point
//	      - name: Rectangle
//	        name_override: Rect
//	        source_file_path: src/primitives/Rectangle.hpp
//	      - name: Mesh
//	        template_arg_lists: [[2, 2], [3, 3]]
//	    free_functions: CPPWG_ALL
//
// # Hierarchy
//
// Options may be set at package, module and entity level. Each level becomes a
// Node whose parent is the enclosing level:
//
//	Package -> Module -> Entity
//
// Get returns the nearest explicitly set value (entity overrides module,
// module overrides package) and falls back to a registered default.
// Gather concatenates list values across the whole chain instead; it is used
// for template_substitutions so that package-wide signatures and
// module-specific ones are all candidates for an entity.
//
// # Paths
//
// Paths are relative to the source root. The CPPWG_SOURCEROOT placeholder is
// replaced by the source root before the path is made absolute.
package config
