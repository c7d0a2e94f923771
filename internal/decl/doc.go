// Package decl defines the boundary to the externally produced declaration
// graph.
//
// The graph is owned by the parsing toolchain. Entities only hold references
// to its declarations; nothing in this module mutates it. Declarations are
// compared by identity, never by name, because two namespaces may declare
// classes with the same spelling.
//
// Key types:
//   - Namespace: lookup of classes, free functions and variables by name
//   - Declaration: a class declaration with its direct bases, member functions
//     and constructors
//   - Function: a callable with an access level and argument type spellings
//   - Graph: an in-memory Namespace, built in code or loaded from a YAML dump
package decl
