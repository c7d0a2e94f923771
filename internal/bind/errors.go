package bind

import (
	"errors"
	"fmt"
	"strings"

	"wrapgen/internal/common"
	"wrapgen/internal/decl"
)

// ErrAmbiguousSignature is returned when the first parameter of a signature
// is defaulted, leaving no arguments to keep in a compressed name.
var ErrAmbiguousSignature = errors.New("template signature has no compressible prefix")

// NotFoundError reports a C++ name with no matching declaration.
// errors.Is(err, decl.ErrNotFound) holds for every NotFoundError.
type NotFoundError struct {
	Name string
	// Tried lists every name looked up, in order.
	Tried []string
	// Suggestions are similar names known to the namespace.
	Suggestions []string
	Err         error
}

func (e *NotFoundError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "could not find declaration for %s", e.Name)

	if common.IsMultiple(e.Tried) {
		fmt.Fprintf(&b, " (tried %s)", strings.Join(e.Tried, ", "))
	}

	if !common.IsEmpty(e.Suggestions) {
		fmt.Fprintf(&b, "; did you mean %s?", strings.Join(e.Suggestions, " or "))
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Is matches decl.ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == decl.ErrNotFound }
