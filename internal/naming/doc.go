// Package naming turns an entity name and its template argument lists into
// the two parallel name sequences used downstream:
//
//   - canonical C++ names, the exact text looked up in the declaration graph
//     (Foo<2,2 >), and
//   - embedding identifiers, the sanitized names exposed to the scripting
//     side (Foo2_2).
//
// Both sequences always have the same length: one entry for an untemplated
// entity, one per argument list otherwise. A templated entity with no
// argument lists yields no names at all.
//
// Resolution is a pure function of its input, so calling Resolve twice on
// the same Input yields identical results.
package naming
