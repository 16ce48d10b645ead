package oasdown

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// fromYAMLNode converts a decoded yaml.Node tree into oasdown's document
// types: mappings become D (order preserved), sequences become A, scalars
// decode to their natural Go values. Aliases are expanded into independent
// copies so the converter owns every node exclusively.
func fromYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.MappingNode:
		doc := make(D, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("decode mapping key at line %d: %w", n.Content[i].Line, err)
			}
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			doc = append(doc, E{Key: key, Value: val})
		}
		return doc, nil
	case yaml.SequenceNode:
		arr := make(A, 0, len(n.Content))
		for _, elem := range n.Content {
			val, err := fromYAMLNode(elem)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	default: // scalar
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode scalar at line %d: %w", n.Line, err)
		}
		return v, nil
	}
}

// MarshalYAML implements yaml.Marshaler, emitting the document as a mapping
// node with entries in order. Nested D values are handled recursively via
// the same interface.
func (d D) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range d {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("encode value for key %q: %w", e.Key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
