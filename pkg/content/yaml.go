package content

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Number is a numeric field whose type is itself validated. It decodes any
// scalar and remembers whether the authored value was a number, so
// "threshold: high" is a schema finding rather than a decode failure.
type Number struct {
	Value float64
	Set   bool   // key present with a non-null value
	Valid bool   // value was a finite int or float scalar
	Raw   string // authored text, for messages
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	n.Set = true
	n.Raw = node.Value
	if node.Kind != yaml.ScalarNode {
		n.Raw = kindName(node)
		return nil
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			n.Value = f
			n.Valid = true
		}
	}
	return nil
}

// IsInteger reports whether the number is valid and has no fractional part.
func (n Number) IsInteger() bool {
	return n.Valid && n.Value == float64(int64(n.Value))
}

// Int returns the value truncated to an int.
func (n Number) Int() int {
	return int(n.Value)
}

// NewNumber returns a set, valid Number. Used by tests and fixtures.
func NewNumber(v float64) Number {
	return Number{Value: v, Set: true, Valid: true, Raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

// missingKeys returns the required keys of a mapping node that are absent,
// null or empty strings.
func missingKeys(node *yaml.Node, required []string) []string {
	present := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if isEmptyValue(val) {
			continue
		}
		present[key.Value] = true
	}
	var missing []string
	for _, key := range required {
		if !present[key] {
			missing = append(missing, key)
		}
	}
	return missing
}

func isEmptyValue(n *yaml.Node) bool {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return false
	}
	if n.ShortTag() == "!!null" {
		return true
	}
	return n.ShortTag() == "!!str" && n.Value == ""
}

// expectMapping rejects documents and elements that are not mappings.
func expectMapping(node *yaml.Node, what string) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected an object, got %s (line %d)", what, kindName(node), node.Line)
	}
	return nil
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "object"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str":
			return "string"
		case "!!int", "!!float":
			return "number"
		case "!!bool":
			return "boolean"
		case "!!null":
			return "null"
		}
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "empty document"
	}
}
