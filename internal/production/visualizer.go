// Package production provides inspection helpers for running charts: Graphviz
// export and read-only snapshots.
package production

import (
	"bytes"
	"fmt"

	"github.com/dannyduc/statetree"
)

// ExportDOT generates Graphviz DOT source for the tree of chart. Compound states
// become clusters, concurrent ones are filled light blue, active states are
// highlighted and dashed edges point from a state to its default substate.
func ExportDOT(chart *statetree.Chart) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph StateTree {
  compound=true;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	renderState(&buf, chart.Root(), "  ")

	for _, s := range chart.States() {
		if d := s.DefaultSubState(); d != nil {
			buf.WriteString(fmt.Sprintf("  %q -> %q [style=dashed label=\"default\"];\n", s.Name(), d.Name()))
		}
		if h := s.History(); h != nil {
			buf.WriteString(fmt.Sprintf("  %q -> %q [style=dotted label=\"history\"];\n", s.Name(), h.Name()))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func renderState(buf *bytes.Buffer, s *statetree.State, indent string) {
	style := ""
	if s.IsActive() {
		style = " style=filled fillcolor=lightgreen"
	}

	if s.IsLeaf() {
		buf.WriteString(fmt.Sprintf("%s%q [label=%q%s];\n", indent, s.Name(), s.Name(), style))
		return
	}

	kind := "exclusive"
	if s.Concurrent() {
		kind = "concurrent"
	}
	buf.WriteString(fmt.Sprintf("%ssubgraph %q {\n", indent, "cluster_"+s.Name()))
	buf.WriteString(fmt.Sprintf("%s  label=%q;\n", indent, fmt.Sprintf("%s (%s)", s.Name(), kind)))
	if s.Concurrent() {
		buf.WriteString(fmt.Sprintf("%s  style=filled fillcolor=lightblue;\n", indent))
	}
	buf.WriteString(fmt.Sprintf("%s  %q [label=%q shape=ellipse%s];\n", indent, s.Name(), s.Name(), style))
	for _, child := range s.Children() {
		renderState(buf, child, indent+"  ")
	}
	buf.WriteString(indent + "}\n")
}
