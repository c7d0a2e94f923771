// Package source discovers template instantiations by scanning header text.
//
// Headers are first normalized: comments and preprocessor directives are
// removed and whitespace is collapsed, with no space left next to template
// punctuation. A candidate signature such as "<unsigned DIM_A, unsigned
// DIM_B = DIM_A>" then matches "template <unsigned DIM_A,unsigned DIM_B =
// DIM_A> class Foo : public Bar" regardless of the original spacing.
//
// Matching is literal text matching and therefore a heuristic. Candidates are
// tried in the configured order and the first one that matches wins, even if
// a later candidate would match as well.
//
// Key types:
//   - Reader: reads header files; FileReader caches by path
//   - Matcher: applies the first matching candidate to a Target
//   - Discover: finds headers under source locations
package source
