// Package plan runs the resolution pipeline that turns a configured package
// into the data the wrapper writers consume.
//
// Resolution pipeline:
//  1. Populate CPPWG_ALL modules from the declaration graph
//  2. Map classes without a configured header to a discovered one
//  3. Per module, concurrently: discover template instantiations from
//     headers, then resolve C++ names and identifiers
//  4. Check identifier uniqueness per module
//  5. Bind every entity to its declarations
//  6. Analyze class relations and compute the emission order
//
// Every failure is fatal and returned as a *StageError naming the stage and
// the entity. Non-fatal findings are collected in Result.Diagnostics.
package plan
