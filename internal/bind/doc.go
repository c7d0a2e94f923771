// Package bind attaches parsed declarations to resolved entities.
//
// Every canonical C++ name of an entity is looked up in the declaration
// namespace with whitespace removed. When a class lookup fails and the
// matched template signature has a defaulted parameter, the lookup is
// retried with the arguments from the first defaulted parameter onwards
// dropped, because the parser may record Foo<2> for what the configuration
// spells Foo<2,2>. Such fallbacks are recorded as warnings.
//
// Any other lookup failure is fatal and reported as a *NotFoundError.
// Excluded entities are never looked up.
package bind
