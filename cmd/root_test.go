package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treeline-io/treeline/api"
	"github.com/treeline-io/treeline/graph"
	"github.com/treeline-io/treeline/vars"
)

func TestParseVarFlags(t *testing.T) {
	ctx, err := parseVarFlags([]string{"project=film1", "version=v003", "ext="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"project": "film1", "version": "v003", "ext": ""}, ctx.Map())

	b, ok := ctx.Lookup("project")
	require.True(t, ok)
	assert.Equal(t, vars.SourceCaller, b.Source)

	// Values may contain '='; only the first one splits.
	ctx, err = parseVarFlags([]string{"note=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "a=b", ctx.Map()["note"])
}

func TestParseVarFlags_Rejects(t *testing.T) {
	_, err := parseVarFlags([]string{"project"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want name=value")

	_, err = parseVarFlags([]string{"=film1"})
	require.Error(t, err)
}

func TestParseSelection(t *testing.T) {
	loc, plat, err := parseSelection("remote", "windows")
	require.NoError(t, err)
	assert.Equal(t, api.LocationRemote, loc)
	assert.Equal(t, api.PlatformWindows, plat)

	_, _, err = parseSelection("cloud", "linux")
	require.Error(t, err)
	_, _, err = parseSelection("local", "darwin")
	require.Error(t, err)
}

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(starterSchema), 0o644))

	doc, err := readDocument(path)
	require.NoError(t, err)
	require.Len(t, doc.Roots, 1)
	assert.Equal(t, "projects", doc.Roots[0].ID)
}

func TestStarterSchema_CompilesAndResolves(t *testing.T) {
	doc, err := api.DecodeYAML([]byte(starterSchema))
	require.NoError(t, err)

	s, err := graph.Load(doc)
	require.NoError(t, err)
	assert.Empty(t, s.Lint(), "the starter document must lint clean")

	ctx := vars.New().
		Set("project", "film1").
		Set("asset", "hero").
		Set("step", "model").
		Set("version", "v003").
		Set("name", "hero_model").
		Set("ext", "ma")
	p, err := s.Resolve("asset file", ctx, api.LocationLocal, api.PlatformLinux)
	require.NoError(t, err)
	assert.Equal(t, "~/projects/film1/hero/model/v003/hero_model.ma", p.String())

	nd, back, err := s.Extract("Z:/film1/hero/model/v003/hero_model.ma", api.LocationRemote, api.PlatformWindows)
	require.NoError(t, err)
	assert.Equal(t, "asset file", nd.ID())
	assert.Equal(t, ctx.Map(), back.Map())
}

func TestNodeLabel(t *testing.T) {
	doc, err := api.DecodeYAML([]byte(starterSchema))
	require.NoError(t, err)
	s, err := graph.Load(doc)
	require.NoError(t, err)

	root := s.Roots()[0]
	assert.Equal(t, "projects", nodeLabel(root))

	nd, err := s.NodeByID("asset file")
	require.NoError(t, err)
	assert.Equal(t, "asset file  ({name}.{ext})", nodeLabel(nd))
}
