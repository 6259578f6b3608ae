// Package graph compiles schema documents into immutable node graphs and
// resolves them: forward from variable bindings to concrete paths, and
// backward from literal paths to the node and variables that produced
// them. A compiled Schema is read-only and safe for unlimited concurrent
// use without locking.
package graph

// Schema is a compiled, immutable schema document: a node arena with an
// id index, per-root mount tables and an interned variable index.
type Schema struct {
	version string
	nodes   []node
	roots   []int32
	// index maps id → arena index. Ids are unique within a sibling
	// scope; when the same id recurs in disjoint scopes the first in
	// document order wins (Lint reports this).
	index map[string]int32
	// varName / varID intern placeholder names to dense uint32 ids in
	// first-seen document order.
	varName []string
	varID   map[string]uint32
}

// Version returns the document version string, which the engine treats
// as opaque.
func (s *Schema) Version() string { return s.version }

// NodeCount returns the number of compiled nodes.
func (s *Schema) NodeCount() int { return len(s.nodes) }

// VariableCount returns the number of distinct placeholder names.
func (s *Schema) VariableCount() int { return len(s.varName) }

// Roots returns the root nodes in document order.
func (s *Schema) Roots() []Node {
	out := make([]Node, len(s.roots))
	for i, ri := range s.roots {
		out[i] = Node{s: s, idx: ri}
	}
	return out
}

// NodeByID looks up a node by id.
func (s *Schema) NodeByID(id string) (Node, error) {
	idx, ok := s.index[id]
	if !ok {
		return Node{}, &NodeNotFoundError{NodeID: id}
	}
	return Node{s: s, idx: idx}, nil
}

// Nodes returns every compiled node in document (depth-first) order.
func (s *Schema) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	for i := range s.nodes {
		out[i] = Node{s: s, idx: int32(i)}
	}
	return out
}

// RequiredVariables returns the names a context must bind to resolve the
// node: the union of placeholders along the root→node chain, in
// document order.
func (s *Schema) RequiredVariables(nodeID string) ([]string, error) {
	idx, ok := s.index[nodeID]
	if !ok {
		return nil, &NodeNotFoundError{NodeID: nodeID}
	}
	req := s.nodes[idx].reqVars
	names := make([]string, 0, req.GetCardinality())
	it := req.Iterator()
	for it.HasNext() {
		names = append(names, s.varName[it.Next()])
	}
	return names, nil
}

// chain returns the arena indexes from the owning root down to idx.
func (s *Schema) chain(idx int32) []int32 {
	depth := int(s.nodes[idx].depth)
	out := make([]int32, depth+1)
	for i := idx; i >= 0; i = s.nodes[i].parent {
		out[s.nodes[i].depth] = i
	}
	return out
}
