package data

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FromYAML reads a single YAML mapping into a Context. Document order and
// repeated keys are preserved, so the first occurrence of a name wins on
// lookup. Scalars are decoded to their natural Go types; nested sequences and
// mappings become []any and map[string]any.
func FromYAML(r io.Reader) (Context, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Context{}, nil
		}
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d", ErrNotAMapping, root.Line)
	}

	c := make(Context, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, fmt.Errorf("%w: key at line %d", ErrInvalidPair, key.Line)
		}

		var v any
		if err := val.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode %q: %w", key.Value, err)
		}
		c = append(c, NameValue{Name: key.Value, Value: v})
	}
	return c, nil
}

// ToYAML writes c as a single YAML mapping in entry order.
func ToYAML(w io.Writer, c Context) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, nv := range c {
		var val yaml.Node
		if err := val.Encode(nv.Value); err != nil {
			return fmt.Errorf("failed to encode %q: %w", nv.Name, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: nv.Name},
			&val,
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}
