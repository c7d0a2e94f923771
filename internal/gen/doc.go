// Package gen renders the outputs of a resolved package.
//
// Outputs:
//   - The header collection: one C++ header that includes every wrapped
//     header, explicitly instantiates each template class and gives every
//     instantiation a typedef named after its identifier.
//   - The manifest: a YAML summary of resolved names, relations and the
//     class emission order.
//
// Rendering uses text/template and is deterministic for a given input.
package gen
