package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treeline-io/treeline/api"
	"github.com/treeline-io/treeline/template"
)

func TestLoad(t *testing.T) {
	s := loadFixture(t)

	assert.Equal(t, "1", s.Version())
	assert.Equal(t, 8, s.NodeCount())
	assert.Equal(t, 7, s.VariableCount())
	require.Len(t, s.Roots(), 1)
	assert.Equal(t, "projects", s.Roots()[0].ID())
}

func TestLoad_NilDocument(t *testing.T) {
	_, err := Load(nil)
	require.Error(t, err)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "nil document", se.Msg)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     *api.Document
		nodeID  string
		wantMsg string
	}{
		{
			name:    "no roots",
			doc:     &api.Document{Version: "1"},
			wantMsg: "invalid document",
		},
		{
			name: "unknown kind",
			doc: &api.Document{Roots: []api.NodeRecord{
				{Type: "directory", ID: "projects", Mounts: &api.Mounts{Local: &api.PlatformPaths{Linux: "/p"}}},
			}},
			wantMsg: "invalid document",
		},
		{
			name: "top-level folder",
			doc: &api.Document{Roots: []api.NodeRecord{
				{Type: api.KindFolder, ID: "loose"},
			}},
			nodeID:  "loose",
			wantMsg: "must be a root",
		},
		{
			name: "duplicate root id",
			doc: &api.Document{Roots: []api.NodeRecord{
				{Type: api.KindRoot, ID: "projects", Mounts: &api.Mounts{Local: &api.PlatformPaths{Linux: "/a"}}},
				{Type: api.KindRoot, ID: "projects", Mounts: &api.Mounts{Local: &api.PlatformPaths{Linux: "/b"}}},
			}},
			nodeID:  "projects",
			wantMsg: "duplicate root id",
		},
		{
			name: "root without mounts",
			doc: &api.Document{Roots: []api.NodeRecord{
				{Type: api.KindRoot, ID: "projects"},
			}},
			nodeID:  "projects",
			wantMsg: "no mounts",
		},
		{
			name: "root with empty mounts",
			doc: &api.Document{Roots: []api.NodeRecord{
				{Type: api.KindRoot, ID: "projects", Mounts: &api.Mounts{}},
			}},
			nodeID:  "projects",
			wantMsg: "no mounts",
		},
		{
			name: "nested root",
			doc: minimalRoot("projects", "/p",
				api.NodeRecord{Type: api.KindRoot, ID: "inner", Mounts: &api.Mounts{Local: &api.PlatformPaths{Linux: "/q"}}},
			),
			nodeID:  "inner",
			wantMsg: "nested",
		},
		{
			name: "file with children",
			doc: minimalRoot("projects", "/p",
				api.NodeRecord{Type: api.KindFile, ID: "scene", Children: []api.NodeRecord{
					{Type: api.KindFolder, ID: "sub"},
				}},
			),
			nodeID:  "scene",
			wantMsg: "file node declares children",
		},
		{
			name: "mounts on folder",
			doc: minimalRoot("projects", "/p",
				api.NodeRecord{Type: api.KindFolder, ID: "shots", Mounts: &api.Mounts{Local: &api.PlatformPaths{Linux: "/x"}}},
			),
			nodeID:  "shots",
			wantMsg: "non-root",
		},
		{
			name: "duplicate sibling id",
			doc: minimalRoot("projects", "/p",
				api.NodeRecord{Type: api.KindFolder, ID: "shots"},
				api.NodeRecord{Type: api.KindFolder, ID: "shots"},
			),
			nodeID:  "shots",
			wantMsg: "duplicate id within children",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.doc)
			require.Error(t, err)
			var se *SchemaError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.nodeID, se.NodeID)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestLoad_MalformedNamingConvention(t *testing.T) {
	doc := minimalRoot("projects", "/p",
		api.NodeRecord{Type: api.KindFolder, ID: "shot", NC: "{a}{b}"},
	)
	_, err := Load(doc)
	require.Error(t, err)

	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "shot", se.NodeID)
	assert.Equal(t, "{a}{b}", se.Template)

	// The template defect stays reachable through the wrap chain.
	var pe *template.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "{a}{b}", pe.Template)
}

func TestLoad_UIDsAreDeterministic(t *testing.T) {
	a := loadFixture(t)
	b := loadFixture(t)

	for _, nd := range a.Nodes() {
		other, err := b.NodeByID(nd.ID())
		require.NoError(t, err)
		assert.Equal(t, nd.UID(), other.UID(), "node %q must keep its uid across loads", nd.ID())
	}

	// And distinct nodes get distinct uids.
	seen := map[string]string{}
	for _, nd := range a.Nodes() {
		uid := nd.UID().String()
		prev, dup := seen[uid]
		require.False(t, dup, "uid of %q collides with %q", nd.ID(), prev)
		seen[uid] = nd.ID()
	}
}

func TestLoad_IDIndexFirstOccurrenceWins(t *testing.T) {
	doc := &api.Document{
		Roots: []api.NodeRecord{
			{
				Type:   api.KindRoot,
				ID:     "alpha",
				Mounts: &api.Mounts{Local: &api.PlatformPaths{Linux: "/alpha"}},
				Children: []api.NodeRecord{
					{Type: api.KindFolder, ID: "shared", Description: "first"},
				},
			},
			{
				Type:   api.KindRoot,
				ID:     "beta",
				Mounts: &api.Mounts{Local: &api.PlatformPaths{Linux: "/beta"}},
				Children: []api.NodeRecord{
					{Type: api.KindFolder, ID: "shared", Description: "second"},
				},
			},
		},
	}
	s, err := Load(doc)
	require.NoError(t, err)

	nd, err := s.NodeByID("shared")
	require.NoError(t, err)
	assert.Equal(t, "first", nd.Description())
	assert.Equal(t, "alpha", nd.Root().ID())
}

func TestLoad_MountPrefixNormalization(t *testing.T) {
	doc := &api.Document{
		Roots: []api.NodeRecord{
			{
				Type: api.KindRoot,
				ID:   "projects",
				Mounts: &api.Mounts{
					Local:  &api.PlatformPaths{Linux: "/srv/projects/", Windows: `C:\projects\`},
					Remote: &api.PlatformPaths{Linux: "/"},
				},
			},
		},
	}
	s, err := Load(doc)
	require.NoError(t, err)

	root := s.Roots()[0]
	p, _ := root.Mount(api.LocationLocal, api.PlatformLinux)
	assert.Equal(t, "/srv/projects", p, "trailing separator is trimmed")
	p, _ = root.Mount(api.LocationLocal, api.PlatformWindows)
	assert.Equal(t, `C:\projects`, p)
	p, _ = root.Mount(api.LocationRemote, api.PlatformLinux)
	assert.Equal(t, "/", p, "an all-separator prefix keeps its first character")
}
