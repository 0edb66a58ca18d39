// Package backup exports the settings tree as a commented YAML document and
// imports such documents back, section by section.
package backup

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// The document uses a narrow subset of YAML: two-space indentation, double
// quoted strings, flow sequences for scalar lists and block sequences with
// "- " items for lists of mappings. Key order is the node's order.

func indent(level int) string {
	return strings.Repeat("  ", level)
}

// writeValue writes n as the value of a "key:" at the given level. Block
// values start with a newline; inline values do not.
func writeValue(sb *strings.Builder, n *yaml.Node, level int) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) > 0 {
			writeValue(sb, n.Content[0], level)
		}
	case yaml.AliasNode:
		writeValue(sb, n.Alias, level)
	case yaml.ScalarNode:
		sb.WriteString(scalar(n))
	case yaml.SequenceNode:
		writeSequence(sb, n, level)
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			sb.WriteString("{}")
			return
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			sb.WriteString("\n")
			sb.WriteString(indent(level + 1))
			writePair(sb, n.Content[i].Value, n.Content[i+1], level+1)
		}
	}
}

func writeSequence(sb *strings.Builder, n *yaml.Node, level int) {
	if len(n.Content) == 0 {
		sb.WriteString("[]")
		return
	}

	if allScalars(n.Content) {
		items := make([]string, len(n.Content))
		for i, item := range n.Content {
			items[i] = scalar(item)
		}
		sb.WriteString("[" + strings.Join(items, ", ") + "]")
		return
	}

	for _, item := range n.Content {
		sb.WriteString("\n")
		sb.WriteString(indent(level))
		sb.WriteString("- ")
		writeItem(sb, item, level)
	}
}

// writeItem writes a sequence item after its "- " marker. A mapping item
// keeps its first key on the marker line and indents the rest one level.
func writeItem(sb *strings.Builder, item *yaml.Node, level int) {
	if item.Kind != yaml.MappingNode || len(item.Content) == 0 {
		writeValue(sb, item, level+1)
		return
	}

	for i := 0; i+1 < len(item.Content); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
			sb.WriteString(indent(level + 1))
		}
		writePair(sb, item.Content[i].Value, item.Content[i+1], level+1)
	}
}

// writePair writes "key: value" with the key at the current position.
func writePair(sb *strings.Builder, key string, v *yaml.Node, level int) {
	sb.WriteString(key)
	sb.WriteString(":")
	if !isBlock(v) {
		sb.WriteString(" ")
	}
	writeValue(sb, v, level)
}

// isBlock reports whether n is written on the lines below its key.
func isBlock(n *yaml.Node) bool {
	switch n.Kind {
	case yaml.DocumentNode:
		return len(n.Content) > 0 && isBlock(n.Content[0])
	case yaml.AliasNode:
		return isBlock(n.Alias)
	case yaml.MappingNode:
		return len(n.Content) > 0
	case yaml.SequenceNode:
		return len(n.Content) > 0 && !allScalars(n.Content)
	}
	return false
}

func allScalars(nodes []*yaml.Node) bool {
	for _, n := range nodes {
		if n.Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}

// scalar renders a scalar literal. Strings are always double quoted, other
// scalars are written as resolved.
func scalar(n *yaml.Node) string {
	switch n.ShortTag() {
	case "!!str":
		return strconv.Quote(n.Value)
	case "!!null":
		return "null"
	}
	return n.Value
}
