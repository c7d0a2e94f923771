// Package deps derives the relations between bound classes that decide the
// order in which their wrappers are emitted.
//
// Two relations are computed:
//
//   - IsBaseOf(a, b): a declaration bound to a is a direct base of b.
//     Declarations are compared by identity, never by name.
//   - Requires(a, b): a public method or constructor of a takes an argument
//     whose type text mentions b as a whole word. This is a textual
//     over-approximation and only used for ordering.
//
// Order turns both relations into a deterministic emission order: bases
// first, then required classes, ties broken by module order. A requires
// edge that would close a cycle is dropped; a cycle of bases is an error.
package deps
