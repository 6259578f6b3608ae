package graph

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/google/uuid"

	"github.com/treeline-io/treeline/api"
	"github.com/treeline-io/treeline/template"
)

// Kind is the compiled node type.
type Kind uint8

const (
	KindRoot Kind = iota
	KindFolder
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindFolder:
		return "folder"
	case KindFile:
		return "file"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// node is one arena entry. Parent and children are arena indexes so the
// compiled tree has no pointer cycles and ancestor walks are O(depth).
type node struct {
	id       string
	uid      uuid.UUID
	kind     Kind
	desc     string
	nc       string             // raw naming convention, "" when absent
	tpl      *template.Template // nil when nc is ""
	parent   int32              // -1 for roots
	root     int32              // owning root's arena index
	depth    int32              // 0 at the root
	children []int32
	// mounts holds the [location][platform] prefix table. Roots only;
	// "" means the pair is undeclared.
	mounts [2][2]string
	// ownVars / reqVars are interned variable sets: this node's own
	// placeholders, and the union along the root→node chain.
	ownVars *roaring.Bitmap
	reqVars *roaring.Bitmap
}

func (n *node) mount(loc api.Location, plat api.Platform) (string, bool) {
	p := n.mounts[loc][plat]
	return p, p != ""
}

// Node is a read-only view of one compiled schema node. The zero Node is
// invalid; Nodes are obtained from a Schema and stay valid as long as it.
type Node struct {
	s   *Schema
	idx int32
}

// ID returns the node's id.
func (n Node) ID() string { return n.s.nodes[n.idx].id }

// UID returns the node's deterministic identity, derived from its id
// path. Identical documents compile to identical UIDs.
func (n Node) UID() uuid.UUID { return n.s.nodes[n.idx].uid }

// Kind returns the node's kind.
func (n Node) Kind() Kind { return n.s.nodes[n.idx].kind }

// Description returns the node's free-form description.
func (n Node) Description() string { return n.s.nodes[n.idx].desc }

// NamingConvention returns the raw template string, or "" when the id is
// used literally.
func (n Node) NamingConvention() string { return n.s.nodes[n.idx].nc }

// Depth returns the node's distance from its root.
func (n Node) Depth() int { return int(n.s.nodes[n.idx].depth) }

// Parent returns the parent node, or ok=false at a root.
func (n Node) Parent() (Node, bool) {
	p := n.s.nodes[n.idx].parent
	if p < 0 {
		return Node{}, false
	}
	return Node{s: n.s, idx: p}, true
}

// Children returns the node's children in declaration order.
func (n Node) Children() []Node {
	idxs := n.s.nodes[n.idx].children
	out := make([]Node, len(idxs))
	for i, ci := range idxs {
		out[i] = Node{s: n.s, idx: ci}
	}
	return out
}

// Root returns the node's owning root.
func (n Node) Root() Node {
	return Node{s: n.s, idx: n.s.nodes[n.idx].root}
}

// Mount returns the owning root's prefix for (loc, plat), or ok=false
// when the pair is undeclared.
func (n Node) Mount(loc api.Location, plat api.Platform) (string, bool) {
	return n.s.nodes[n.s.nodes[n.idx].root].mount(loc, plat)
}

// IDPath returns the ids from the owning root down to this node.
func (n Node) IDPath() []string {
	chain := n.s.chain(n.idx)
	out := make([]string, len(chain))
	for i, ci := range chain {
		out[i] = n.s.nodes[ci].id
	}
	return out
}
