package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- OptionList YAML methods ---

// UnmarshalYAML decodes a mapping of option name to definition, keeping
// the declaration order.
func (l *OptionList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping of options, got %v", node.Line, node.Kind)
	}

	seen := make(map[string]struct{}, len(node.Content)/2)
	options := make(OptionList, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string

		err := node.Content[i].Decode(&name)
		if err != nil {
			return err
		}

		if _, dup := seen[name]; dup {
			return fmt.Errorf("line %d: option %q defined twice", node.Content[i].Line, name)
		}

		seen[name] = struct{}{}

		opt := &Option{}

		err = node.Content[i+1].Decode(opt)
		if err != nil {
			return fmt.Errorf("option %q: %w", name, err)
		}

		opt.Name = name
		options = append(options, opt)
	}

	*l = options

	return nil
}

// MarshalYAML encodes the list back into an ordered mapping.
func (l OptionList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, opt := range l {
		var value yaml.Node

		err := value.Encode(opt)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", opt.Name, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: opt.Name},
			&value,
		)
	}

	return node, nil
}

// --- Choices YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Choices.
// Accepts:
//   - List of literals: [registry, local]
//   - Mapping of literal to label: {r: read, w: write}
func (c *Choices) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var values []string

		err := node.Decode(&values)
		if err != nil {
			return err
		}

		choices := make(Choices, len(values))
		for i, v := range values {
			choices[i] = Choice{Value: v, Label: v}
		}

		*c = choices

		return nil

	case yaml.MappingNode:
		choices := make(Choices, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			var ch Choice

			err := node.Content[i].Decode(&ch.Value)
			if err != nil {
				return err
			}

			err = node.Content[i+1].Decode(&ch.Label)
			if err != nil {
				return err
			}

			choices = append(choices, ch)
		}

		*c = choices

		return nil

	default:
		return fmt.Errorf("expected list or mapping of options, got %v", node.Kind)
	}
}

// MarshalYAML outputs a list when every label equals its value, otherwise
// an ordered mapping.
func (c Choices) MarshalYAML() (any, error) {
	plain := true

	for _, ch := range c {
		if ch.Label != ch.Value {
			plain = false
			break
		}
	}

	if plain {
		return c.Values(), nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, ch := range c {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: ch.Value},
			&yaml.Node{Kind: yaml.ScalarNode, Value: ch.Label},
		)
	}

	return node, nil
}

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// At returns the i-th element or "" when out of range.
func (s StringOrArray) At(i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}

	return s[i]
}
