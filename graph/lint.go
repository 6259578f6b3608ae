package graph

import (
	"fmt"
	"strings"
)

// Diagnostic is an advisory finding about a schema. Lint findings never
// fail a load; they flag author mistakes the engine tolerates.
type Diagnostic struct {
	NodeID  string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("node %q: %s", d.NodeID, d.Message)
}

// Lint inspects a compiled schema for conventions that are legal but
// break extraction in practice: sibling templates that shadow each
// other, ids reused across scopes, and separators inside literal text.
func (s *Schema) Lint() []Diagnostic {
	var diags []Diagnostic

	counts := make(map[string]int, len(s.nodes))
	for i := range s.nodes {
		counts[s.nodes[i].id]++
	}
	for i := range s.nodes {
		nd := &s.nodes[i]
		if counts[nd.id] > 1 && s.index[nd.id] == int32(i) {
			diags = append(diags, Diagnostic{
				NodeID:  nd.id,
				Message: fmt.Sprintf("id is used by %d nodes; id lookups resolve to the first in document order", counts[nd.id]),
			})
		}
		diags = append(diags, s.lintSegmentText(nd)...)
		diags = append(diags, s.lintSiblings(nd)...)
	}
	return diags
}

// lintSegmentText flags literal text that contains a path separator:
// Resolve will emit it, but Extract splits on separators and can never
// round-trip the segment.
func (s *Schema) lintSegmentText(nd *node) []Diagnostic {
	text := nd.id
	if nd.tpl != nil {
		text = strings.Join(nd.tpl.Literals(), "")
	}
	if nd.kind != KindRoot && strings.ContainsAny(text, `/\`) {
		return []Diagnostic{{
			NodeID:  nd.id,
			Message: "segment literal contains a path separator; extraction cannot round-trip this node",
		}}
	}
	return nil
}

// lintSiblings flags children of nd whose conventions overlap: a bare
// placeholder admits every segment and shadows all later siblings, and
// two conventions with the same literal shape are indistinguishable.
func (s *Schema) lintSiblings(nd *node) []Diagnostic {
	var diags []Diagnostic
	shapes := make(map[string]string, len(nd.children))
	for pos, ci := range nd.children {
		ch := &s.nodes[ci]
		if ch.tpl != nil && ch.tpl.PlaceholderOnly() && pos < len(nd.children)-1 {
			diags = append(diags, Diagnostic{
				NodeID:  ch.id,
				Message: fmt.Sprintf("nc %q matches any segment; later siblings of %q are unreachable during extraction", ch.nc, nd.id),
			})
		}
		shape := ch.id
		if ch.tpl != nil {
			shape = ch.tpl.Shape()
		}
		if firstID, dup := shapes[shape]; dup {
			diags = append(diags, Diagnostic{
				NodeID:  ch.id,
				Message: fmt.Sprintf("nc shape %q duplicates sibling %q; extraction always prefers the earlier sibling", shape, firstID),
			})
		} else {
			shapes[shape] = ch.id
		}
	}
	return diags
}
