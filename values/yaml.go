// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"cogentcore.org/eve/symbol"
)

// SymbolTag is the YAML tag used for symbol values.
const SymbolTag = "!sym"

// EncodeYAML returns the YAML node for the given value.
// Symbols are written with the [SymbolTag] so that they
// decode back to symbols rather than strings.
func EncodeYAML(v Value) *yaml.Node {
	switch v.kind {
	case Bool:
		b, _ := v.TryBool()
		return scalarNode("!!bool", fmt.Sprint(b))
	case Number:
		if v.num == float64(int64(v.num)) {
			return scalarNode("!!int", FormatNumber(v.num))
		}
		return scalarNode("!!float", FormatNumber(v.num))
	case String:
		return scalarNode("!!str", v.str)
	case Symbol:
		return scalarNode(SymbolTag, v.sym.Name())
	case Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, e := range v.arr {
			if e.kind == Array || e.kind == Dict {
				n.Style = 0
			}
			n.Content = append(n.Content, EncodeYAML(e))
		}
		return n
	case Dict:
		return EncodeDictYAML(v.dict)
	}
	return scalarNode("!!null", "null")
}

// EncodeDictYAML returns the YAML mapping node for the given dictionary.
func EncodeDictYAML(d *Dictionary) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	d.Range(func(k symbol.Symbol, e Value) bool {
		n.Content = append(n.Content, scalarNode("!!str", k.Name()), EncodeYAML(e))
		return true
	})
	return n
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// DecodeYAML returns the value for the given YAML node,
// interning symbols and dictionary keys in the given table.
func DecodeYAML(n *yaml.Node, tab *symbol.Table) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Value{}, nil
		}
		return DecodeYAML(n.Content[0], tab)
	case yaml.AliasNode:
		return DecodeYAML(n.Alias, tab)
	case yaml.SequenceNode:
		arr := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			e, err := DecodeYAML(c, tab)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, e)
		}
		return Value{kind: Array, arr: arr}, nil
	case yaml.MappingNode:
		d, err := DecodeDictYAML(n, tab)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: Dict, dict: d}, nil
	}
	switch n.ShortTag() {
	case "!!null":
		return Value{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, err
		}
		return MakeBool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		return MakeNumber(f), nil
	case SymbolTag:
		return MakeSymbol(tab.Intern(n.Value)), nil
	case "!!str":
		return MakeString(n.Value), nil
	}
	return Value{}, fmt.Errorf("values: line %d: unsupported YAML tag %q", n.Line, n.Tag)
}

// DecodeDictYAML returns the dictionary for the given YAML mapping node.
func DecodeDictYAML(n *yaml.Node, tab *symbol.Table) (*Dictionary, error) {
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("values: line %d: expected a mapping", n.Line)
	}
	d := NewDict()
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("values: line %d: dictionary keys must be scalars", k.Line)
		}
		e, err := DecodeYAML(n.Content[i+1], tab)
		if err != nil {
			return nil, err
		}
		d.Set(tab.Intern(k.Value), e)
	}
	return d, nil
}

// MarshalYAML returns the YAML text for the given value.
func MarshalYAML(v Value) ([]byte, error) {
	return yaml.Marshal(EncodeYAML(v))
}

// UnmarshalYAML parses the given YAML text into a value.
func UnmarshalYAML(data []byte, tab *symbol.Table) (Value, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return Value{}, err
	}
	return DecodeYAML(&n, tab)
}
