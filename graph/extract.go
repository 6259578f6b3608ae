package graph

import (
	"strings"

	"github.com/treeline-io/treeline/api"
	"github.com/treeline-io/treeline/template"
	"github.com/treeline-io/treeline/vars"
)

// Extract inverts Resolve: it finds the unique root whose (loc, plat)
// mount prefixes the literal path, then walks the remaining segments
// through the schema, trying each child's naming convention in
// declaration order. First match wins; there is no backtracking across
// siblings. Captured placeholder values accumulate in the returned
// context with capture provenance.
//
// On windows both separators are accepted in the input path.
func (s *Schema) Extract(path string, loc api.Location, plat api.Platform) (Node, *vars.Context, error) {
	norm := path
	if plat == api.PlatformWindows {
		norm = strings.ReplaceAll(path, `\`, "/")
	}

	var matched []int32
	var matchedPrefix string
	for _, ri := range s.roots {
		prefix, ok := s.nodes[ri].mount(loc, plat)
		if !ok {
			continue
		}
		if plat == api.PlatformWindows {
			prefix = strings.ReplaceAll(prefix, `\`, "/")
		}
		if hasPrefixAtBoundary(norm, prefix) {
			matched = append(matched, ri)
			matchedPrefix = prefix
		}
	}
	switch len(matched) {
	case 0:
		return Node{}, nil, &NoRootMatchError{Path: path, Location: loc, Platform: plat}
	case 1:
	default:
		ids := make([]string, len(matched))
		for i, ri := range matched {
			ids[i] = s.nodes[ri].id
		}
		return Node{}, nil, &AmbiguousRootError{Path: path, RootIDs: ids}
	}

	rest := strings.TrimPrefix(norm[len(matchedPrefix):], "/")
	ctx := vars.New()
	cur := matched[0]
	if rest != "" {
		for _, seg := range strings.Split(rest, "/") {
			ci, caps, ok := s.matchChild(cur, seg)
			if !ok {
				return Node{}, nil, &NoMatchError{Path: path, Segment: seg, NodeID: s.nodes[cur].id}
			}
			for _, c := range caps {
				ctx.Capture(c.Name, c.Value)
			}
			cur = ci
		}
	}
	return Node{s: s, idx: cur}, ctx, nil
}

// matchChild tries each child of parent against seg in declaration
// order: a template child matches via its compiled convention, a
// template-less child matches its id literally.
func (s *Schema) matchChild(parent int32, seg string) (int32, []template.Capture, bool) {
	for _, ci := range s.nodes[parent].children {
		ch := &s.nodes[ci]
		if ch.tpl == nil {
			if ch.id == seg {
				return ci, nil, true
			}
			continue
		}
		caps, err := ch.tpl.Match(seg)
		if err == nil {
			return ci, caps, true
		}
	}
	return 0, nil, false
}

// hasPrefixAtBoundary reports whether prefix covers path up to a
// separator boundary, so "~/p" never claims "~/projects/x".
func hasPrefixAtBoundary(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if len(path) == len(prefix) {
		return true
	}
	if strings.HasSuffix(prefix, "/") {
		return true
	}
	return path[len(prefix)] == '/'
}
