package graph

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/google/uuid"

	"github.com/treeline-io/treeline/api"
	"github.com/treeline-io/treeline/internal/logutil"
	"github.com/treeline-io/treeline/template"
)

// Load compiles a schema document into an immutable Schema. Validation
// is fatal: any structural or template defect aborts the load with a
// *SchemaError and no partial graph is returned.
func Load(doc *api.Document) (*Schema, error) {
	if doc == nil {
		return nil, &SchemaError{Msg: "nil document"}
	}
	if err := doc.Validate(); err != nil {
		return nil, &SchemaError{Msg: "invalid document", Err: err}
	}

	s := &Schema{
		version: doc.Version,
		index:   make(map[string]int32),
		varID:   make(map[string]uint32),
	}

	seen := make(map[string]struct{}, len(doc.Roots))
	for i := range doc.Roots {
		rec := &doc.Roots[i]
		if rec.Type != api.KindRoot {
			return nil, &SchemaError{NodeID: rec.ID, Msg: fmt.Sprintf("top-level node must be a root, got %q", rec.Type)}
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, &SchemaError{NodeID: rec.ID, Msg: "duplicate root id"}
		}
		seen[rec.ID] = struct{}{}
		idx, err := s.compileNode(rec, -1, 0, "")
		if err != nil {
			return nil, err
		}
		s.roots = append(s.roots, idx)
	}

	lg := logutil.Logger("graph")
	lg.Debug().
		Int("nodes", len(s.nodes)).
		Int("roots", len(s.roots)).
		Int("variables", len(s.varName)).
		Str("version", s.version).
		Msg("schema compiled")
	return s, nil
}

// compileNode validates one record, appends its arena entry and recurses
// into its children. parentPath is the slash-joined id path above it.
func (s *Schema) compileNode(rec *api.NodeRecord, parent, depth int32, parentPath string) (int32, error) {
	var kind Kind
	switch rec.Type {
	case api.KindRoot:
		kind = KindRoot
	case api.KindFolder:
		kind = KindFolder
	case api.KindFile:
		kind = KindFile
	default:
		return 0, &SchemaError{NodeID: rec.ID, Msg: fmt.Sprintf("unknown node kind %q", rec.Type)}
	}

	if kind == KindRoot && parent >= 0 {
		return 0, &SchemaError{NodeID: rec.ID, Msg: "root node nested below another node"}
	}
	if kind == KindFile && len(rec.Children) > 0 {
		return 0, &SchemaError{NodeID: rec.ID, Msg: "file node declares children"}
	}
	if kind != KindRoot && rec.Mounts != nil {
		return 0, &SchemaError{NodeID: rec.ID, Msg: "mounts declared on a non-root node"}
	}
	if kind == KindRoot && rec.Mounts.IsEmpty() {
		return 0, &SchemaError{NodeID: rec.ID, Msg: "root declares no mounts"}
	}

	idPath := rec.ID
	if parentPath != "" {
		idPath = parentPath + "/" + rec.ID
	}

	n := node{
		id:     rec.ID,
		uid:    uuid.NewSHA1(uuid.NameSpaceURL, []byte("treeline://"+idPath)),
		kind:   kind,
		desc:   rec.Description,
		nc:     rec.NC,
		parent: parent,
		depth:  depth,
	}

	if rec.NC != "" {
		tpl, err := template.Compile(rec.NC)
		if err != nil {
			return 0, &SchemaError{NodeID: rec.ID, Template: rec.NC, Msg: "malformed naming convention", Err: err}
		}
		n.tpl = tpl
	}

	n.ownVars = roaring.New()
	if n.tpl != nil {
		for _, name := range n.tpl.Names() {
			n.ownVars.Add(s.internVar(name))
		}
	}
	n.reqVars = n.ownVars.Clone()
	if parent >= 0 {
		n.reqVars.Or(s.nodes[parent].reqVars)
	}

	if kind == KindRoot {
		for _, loc := range api.Locations() {
			for _, plat := range api.Platforms() {
				if prefix, ok := rec.Mounts.Get(loc, plat); ok {
					n.mounts[loc][plat] = normalizeMountPrefix(prefix)
				}
			}
		}
	}

	idx := int32(len(s.nodes))
	if kind == KindRoot {
		n.root = idx
	} else {
		n.root = s.nodes[parent].root
	}
	s.nodes = append(s.nodes, n)

	if _, exists := s.index[rec.ID]; !exists {
		s.index[rec.ID] = idx
	}

	siblings := make(map[string]struct{}, len(rec.Children))
	for i := range rec.Children {
		child := &rec.Children[i]
		if _, dup := siblings[child.ID]; dup {
			return 0, &SchemaError{NodeID: child.ID, Msg: fmt.Sprintf("duplicate id within children of %q", rec.ID)}
		}
		siblings[child.ID] = struct{}{}
		ci, err := s.compileNode(child, idx, depth+1, idPath)
		if err != nil {
			return 0, err
		}
		s.nodes[idx].children = append(s.nodes[idx].children, ci)
	}
	return idx, nil
}

func (s *Schema) internVar(name string) uint32 {
	if id, ok := s.varID[name]; ok {
		return id
	}
	id := uint32(len(s.varName))
	s.varID[name] = id
	s.varName = append(s.varName, name)
	return id
}

// normalizeMountPrefix trims trailing separators so joining never doubles
// them. A prefix that is nothing but separators keeps its first one.
func normalizeMountPrefix(p string) string {
	trimmed := strings.TrimRight(p, `/\`)
	if trimmed == "" {
		return p[:1]
	}
	return trimmed
}
