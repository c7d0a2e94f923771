package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrKeyUnset is returned when no node in the chain sets a key and no
	// default is registered for it.
	ErrKeyUnset = errors.New("config key unset")
	// ErrNotList is returned by Gather for keys whose values are not lists.
	ErrNotList = errors.New("config value is not a list")
	// ErrWrongType is returned by the typed getters on a type mismatch.
	ErrWrongType = errors.New("config value has wrong type")
)

// GatherOrder selects the concatenation order of Gather.
type GatherOrder int

const (
	// RootFirst puts the package values first and the entity values last.
	RootFirst GatherOrder = iota
	// LeafFirst puts the entity values first and the package values last.
	LeafFirst
)

// Node is one level of the Package -> Module -> Entity configuration tree.
// It is immutable once built.
type Node struct {
	name     string
	values   map[string]any
	parent   *Node
	defaults map[string]any
}

// NewRoot creates a root node. defaults is consulted when no node in a chain
// sets a key; it may be nil.
func NewRoot(name string, values, defaults map[string]any) *Node {
	if values == nil {
		values = map[string]any{}
	}

	return &Node{name: name, values: values, defaults: defaults}
}

// Child creates a node whose parent is n.
func (n *Node) Child(name string, values map[string]any) *Node {
	if values == nil {
		values = map[string]any{}
	}

	return &Node{name: name, values: values, parent: n, defaults: n.defaults}
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Path returns the names from the root to n joined with "/".
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return strings.Join(parts, "/")
}

// Lookup returns the nearest explicitly set value without consulting defaults.
func (n *Node) Lookup(key string) (any, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}

	return nil, false
}

// Get returns the nearest explicitly set value for key, walking from n to the
// root, or the registered default.
func (n *Node) Get(key string) (any, error) {
	if v, ok := n.Lookup(key); ok {
		return v, nil
	}

	if v, ok := n.defaults[key]; ok {
		return v, nil
	}

	return nil, fmt.Errorf("%s: %q: %w", n.Path(), key, ErrKeyUnset)
}

// Gather concatenates the list values set for key on every node of the chain.
// Nodes that do not set key contribute nothing; defaults are not consulted.
func (n *Node) Gather(key string, order GatherOrder) ([]any, error) {
	var chain []*Node
	for cur := n; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}

	if order == RootFirst {
		for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
			chain[i], chain[j] = chain[j], chain[i]
		}
	}

	var out []any

	for _, cur := range chain {
		v, ok := cur.values[key]
		if !ok {
			continue
		}

		list, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", cur.Path(), key, ErrNotList)
		}

		out = append(out, list...)
	}

	return out, nil
}

// String returns a string option.
func (n *Node) String(key string) (string, error) {
	v, err := n.Get(key)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %q is %T: %w", n.Path(), key, v, ErrWrongType)
	}

	return s, nil
}

// Bool returns a boolean option. The strings "true"/"false" (any case) are
// accepted as well.
func (n *Node) Bool(key string) (bool, error) {
	v, err := n.Get(key)
	if err != nil {
		return false, err
	}

	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "on":
			return true, nil
		case "false", "no", "off", "":
			return false, nil
		}
	}

	return false, fmt.Errorf("%s: %q is %T: %w", n.Path(), key, v, ErrWrongType)
}

// StringSlice returns a list option (override semantics) as strings.
func (n *Node) StringSlice(key string) ([]string, error) {
	v, err := n.Get(key)
	if err != nil {
		return nil, err
	}

	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: %q is %T: %w", n.Path(), key, v, ErrNotList)
	}

	return stringsOf(n, key, list)
}

// GatherStrings gathers a list option as strings.
func (n *Node) GatherStrings(key string, order GatherOrder) ([]string, error) {
	list, err := n.Gather(key, order)
	if err != nil {
		return nil, err
	}

	return stringsOf(n, key, list)
}

// Substitutions gathers the template substitutions applicable to n in the
// given order.
func (n *Node) Substitutions(order GatherOrder) ([]TemplateSubstitution, error) {
	list, err := n.Gather(KeyTemplateSubstitutions, order)
	if err != nil {
		return nil, err
	}

	out := make([]TemplateSubstitution, 0, len(list))

	for _, item := range list {
		sub, ok := item.(TemplateSubstitution)
		if !ok {
			return nil, fmt.Errorf("%s: %q item is %T: %w", n.Path(), KeyTemplateSubstitutions, item, ErrWrongType)
		}

		out = append(out, sub)
	}

	return out, nil
}

// Replacements returns the identifier replacement table in effect for n.
func (n *Node) Replacements() (Replacements, error) {
	v, err := n.Get(KeyNameReplacements)
	if err != nil {
		return nil, err
	}

	table, ok := v.(Replacements)
	if !ok {
		return nil, fmt.Errorf("%s: %q is %T: %w", n.Path(), KeyNameReplacements, v, ErrWrongType)
	}

	return table, nil
}

func stringsOf(n *Node, key string, list []any) ([]string, error) {
	out := make([]string, 0, len(list))

	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s: %q item is %T: %w", n.Path(), key, item, ErrWrongType)
		}

		out = append(out, s)
	}

	return out, nil
}
