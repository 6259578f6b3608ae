package graph

import (
	"errors"
	"strings"

	"github.com/treeline-io/treeline/api"
	"github.com/treeline-io/treeline/template"
	"github.com/treeline-io/treeline/vars"
)

// ResolvedPath is the outcome of a forward resolution: segment 0 is the
// mount prefix, followed by one segment per schema level below the root,
// plus the (location, platform) selection that produced them.
type ResolvedPath struct {
	Segments []string
	Location api.Location
	Platform api.Platform
}

// String joins the segments with the platform's separator convention.
func (p *ResolvedPath) String() string {
	if len(p.Segments) == 0 {
		return ""
	}
	sep := p.Platform.Separator()
	head := p.Segments[0]
	rest := strings.Join(p.Segments[1:], sep)
	if rest == "" {
		return head
	}
	if strings.HasSuffix(head, "/") || strings.HasSuffix(head, `\`) {
		return head + rest
	}
	return head + sep + rest
}

// Resolve turns a node id and a variable context into a concrete path
// for (loc, plat). It is a pure function of its inputs: no defaults, no
// fallback between mount pairs, no retries.
func (s *Schema) Resolve(nodeID string, ctx *vars.Context, loc api.Location, plat api.Platform) (*ResolvedPath, error) {
	idx, ok := s.index[nodeID]
	if !ok {
		return nil, &NodeNotFoundError{NodeID: nodeID}
	}

	chain := s.chain(idx)
	root := &s.nodes[chain[0]]
	prefix, ok := root.mount(loc, plat)
	if !ok {
		return nil, &MountNotFoundError{RootID: root.id, Location: loc, Platform: plat}
	}

	segments := make([]string, 0, len(chain))
	segments = append(segments, prefix)
	for _, ci := range chain[1:] {
		nd := &s.nodes[ci]
		if nd.tpl == nil {
			segments = append(segments, nd.id)
			continue
		}
		seg, err := nd.tpl.Fill(ctx)
		if err != nil {
			var mv *template.MissingVariableError
			if errors.As(err, &mv) {
				return nil, &MissingVariableError{
					NodeID:   nd.id,
					Template: nd.nc,
					Variable: mv.Name,
					Err:      err,
				}
			}
			return nil, err
		}
		segments = append(segments, seg)
	}

	return &ResolvedPath{Segments: segments, Location: loc, Platform: plat}, nil
}
