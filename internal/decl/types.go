package decl

import (
	"errors"
	"strings"

	"wrapgen/internal/common"
)

// ErrNotFound is returned when a lookup matches no declaration.
var ErrNotFound = errors.New("declaration not found")

// Access is the C++ access specifier of a member.
type Access int

const (
	AccessPublic Access = iota
	AccessProtected
	AccessPrivate
)

// String returns the C++ spelling of the access specifier.
func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return common.UnknownStr
	}
}

// ParseAccess parses an access specifier. An empty string means public.
func ParseAccess(s string) (Access, bool) {
	switch strings.TrimSpace(s) {
	case "", "public":
		return AccessPublic, true
	case "protected":
		return AccessProtected, true
	case "private":
		return AccessPrivate, true
	default:
		return AccessPublic, false
	}
}

// Handle is the surface shared by every declaration kind. Handles are
// compared by identity.
type Handle interface {
	Name() string
	File() string
}

// Namespace is a queryable scope of the declaration graph.
type Namespace interface {
	// LookupClass returns the class whose whitespace-free name equals name.
	LookupClass(name string) (Declaration, error)
	// LookupFunction returns the free function with the given name.
	LookupFunction(name string) (Function, error)
	// LookupVariable returns the variable with the given name.
	LookupVariable(name string) (Variable, error)
	// Classes returns every class declaration in declaration order.
	Classes() []Declaration
	// Functions returns every free function in declaration order.
	Functions() []Function
	// Variables returns every variable in declaration order.
	Variables() []Variable
}

// Declaration is a class or struct declaration.
type Declaration interface {
	Name() string
	// File is the header the declaration was parsed from ("" if unknown).
	File() string
	// Bases returns the direct base classes in declaration order.
	Bases() []Declaration
	MemberFunctions() []Function
	Constructors() []Function
}

// Function is a member function, constructor or free function.
type Function interface {
	Name() string
	File() string
	Access() Access
	// ArgumentTypes returns the textual type of every argument.
	ArgumentTypes() []string
}

// Variable is a namespace-scope variable.
type Variable interface {
	Name() string
	File() string
	Type() string
}

// NormalizeName removes all whitespace so that "Foo<2, 2 >" and "Foo<2,2>"
// address the same declaration.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), "")
}
