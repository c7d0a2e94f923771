package decl

import "fmt"

// Class is an in-memory class declaration.
type Class struct {
	name    string
	file    string
	bases   []Declaration
	methods []Function
	ctors   []Function
}

// NewClass creates a class declaration with no bases or members.
func NewClass(name, file string) *Class {
	return &Class{name: name, file: file}
}

// AddBase appends a direct base and returns c for chaining.
func (c *Class) AddBase(base Declaration) *Class {
	c.bases = append(c.bases, base)
	return c
}

// AddMethod appends a member function and returns c for chaining.
func (c *Class) AddMethod(f *Func) *Class {
	c.methods = append(c.methods, f)
	return c
}

// AddConstructor appends a constructor and returns c for chaining.
func (c *Class) AddConstructor(f *Func) *Class {
	c.ctors = append(c.ctors, f)
	return c
}

func (c *Class) Name() string                { return c.name }
func (c *Class) File() string                { return c.file }
func (c *Class) Bases() []Declaration        { return c.bases }
func (c *Class) MemberFunctions() []Function { return c.methods }
func (c *Class) Constructors() []Function    { return c.ctors }

// Func is an in-memory function declaration.
type Func struct {
	name   string
	file   string
	access Access
	args   []string
}

// NewFunc creates a function with the given access and argument types.
func NewFunc(name string, access Access, args ...string) *Func {
	return &Func{name: name, access: access, args: args}
}

// InFile sets the header the function was declared in.
func (f *Func) InFile(file string) *Func {
	f.file = file
	return f
}

func (f *Func) Name() string            { return f.name }
func (f *Func) File() string            { return f.file }
func (f *Func) Access() Access          { return f.access }
func (f *Func) ArgumentTypes() []string { return f.args }

// Var is an in-memory variable declaration.
type Var struct {
	name string
	file string
	typ  string
}

// NewVar creates a variable declaration.
func NewVar(name, typ, file string) *Var {
	return &Var{name: name, typ: typ, file: file}
}

func (v *Var) Name() string { return v.name }
func (v *Var) File() string { return v.file }
func (v *Var) Type() string { return v.typ }

// Graph is an in-memory Namespace.
type Graph struct {
	classes   []Declaration
	functions []Function
	variables []Variable

	classIndex    map[string]Declaration
	functionIndex map[string]Function
	variableIndex map[string]Variable
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		classIndex:    make(map[string]Declaration),
		functionIndex: make(map[string]Function),
		variableIndex: make(map[string]Variable),
	}
}

// AddClass registers a class. Names are compared without whitespace.
func (g *Graph) AddClass(c Declaration) error {
	key := NormalizeName(c.Name())
	if _, ok := g.classIndex[key]; ok {
		return fmt.Errorf("duplicate class declaration %q", c.Name())
	}

	g.classIndex[key] = c
	g.classes = append(g.classes, c)

	return nil
}

// AddFunction registers a free function. Overloads keep the first declaration.
func (g *Graph) AddFunction(f Function) {
	key := NormalizeName(f.Name())
	if _, ok := g.functionIndex[key]; !ok {
		g.functionIndex[key] = f
	}

	g.functions = append(g.functions, f)
}

// AddVariable registers a variable.
func (g *Graph) AddVariable(v Variable) error {
	key := NormalizeName(v.Name())
	if _, ok := g.variableIndex[key]; ok {
		return fmt.Errorf("duplicate variable declaration %q", v.Name())
	}

	g.variableIndex[key] = v
	g.variables = append(g.variables, v)

	return nil
}

// LookupClass implements Namespace.
func (g *Graph) LookupClass(name string) (Declaration, error) {
	if c, ok := g.classIndex[NormalizeName(name)]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("class %q: %w", name, ErrNotFound)
}

// LookupFunction implements Namespace.
func (g *Graph) LookupFunction(name string) (Function, error) {
	if f, ok := g.functionIndex[NormalizeName(name)]; ok {
		return f, nil
	}

	return nil, fmt.Errorf("function %q: %w", name, ErrNotFound)
}

// LookupVariable implements Namespace.
func (g *Graph) LookupVariable(name string) (Variable, error) {
	if v, ok := g.variableIndex[NormalizeName(name)]; ok {
		return v, nil
	}

	return nil, fmt.Errorf("variable %q: %w", name, ErrNotFound)
}

// Classes implements Namespace.
func (g *Graph) Classes() []Declaration { return g.classes }

// Functions implements Namespace.
func (g *Graph) Functions() []Function { return g.functions }

// Variables implements Namespace.
func (g *Graph) Variables() []Variable { return g.variables }
