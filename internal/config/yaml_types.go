package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- EntityList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for EntityList.
// Accepts:
//   - The CPPWG_ALL option: classes: CPPWG_ALL
//   - A list of entity names: [Foo, Bar]
//   - A list of entity maps: [{name: Foo, name_override: Bar}]
func (l *EntityList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		switch str {
		case AllOption:
			*l = EntityList{All: true}
		case "":
			*l = EntityList{}
		default:
			return fmt.Errorf("expected %s or a list of entities, got %q", AllOption, str)
		}

		return nil

	case yaml.SequenceNode:
		defs := make([]EntityDef, 0, len(node.Content))

		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				// Shorthand: just the entity name
				defs = append(defs, EntityDef{Name: item.Value})

			case yaml.MappingNode:
				var def EntityDef

				err := item.Decode(&def)
				if err != nil {
					return err
				}

				defs = append(defs, def)

			default:
				return fmt.Errorf("line %d: expected entity name or map, got %v", item.Line, item.Kind)
			}
		}

		*l = EntityList{Entities: defs}

		return nil

	default:
		return fmt.Errorf("line %d: expected %s or a list of entities, got %v", node.Line, AllOption, node.Kind)
	}
}

// --- ArgLists YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for ArgLists.
// Each argument keeps its literal scalar text, so 2, "unsigned int" and
// std::string all survive unchanged. A scalar item is a single-argument list:
// [2, 3] is read as [[2], [3]].
func (a *ArgLists) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a list of argument lists, got %v", node.Line, node.Kind)
	}

	lists := make(ArgLists, 0, len(node.Content))

	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			lists = append(lists, []string{item.Value})

		case yaml.SequenceNode:
			args := make([]string, 0, len(item.Content))

			for _, arg := range item.Content {
				if arg.Kind != yaml.ScalarNode {
					return fmt.Errorf("line %d: template argument must be a scalar, got %v", arg.Line, arg.Kind)
				}

				args = append(args, arg.Value)
			}

			lists = append(lists, args)

		default:
			return fmt.Errorf("line %d: expected argument list, got %v", item.Line, item.Kind)
		}
	}

	*a = lists

	return nil
}

// --- Replacements YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Replacements.
// The table is a YAML map; document order is preserved.
func (r *Replacements) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a map of replacements, got %v", node.Line, node.Kind)
	}

	if len(node.Content)%2 != 0 {
		return errors.New("malformed replacement map")
	}

	table := make(Replacements, 0, len(node.Content)/2)

	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: replacement entries must be scalars", key.Line)
		}

		table = append(table, Replacement{From: key.Value, To: value.Value})
	}

	*r = table

	return nil
}
