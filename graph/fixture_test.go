package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treeline-io/treeline/api"
)

// fixtureDoc builds the film-pipeline schema used across the package
// tests:
//
//	projects (root, mounts for all four location/platform pairs)
//	  project {project}
//	    editorial
//	      cut "cut_{cut}.mov"
//	    asset {asset}
//	      step {step}
//	        version {version}
//	          asset file "{name}.{ext}"
func fixtureDoc() *api.Document {
	return &api.Document{
		Version: "1",
		Roots: []api.NodeRecord{
			{
				Type:        api.KindRoot,
				ID:          "projects",
				Description: "Production projects",
				Mounts: &api.Mounts{
					Local:  &api.PlatformPaths{Linux: "~/projects", Windows: `C:\projects`},
					Remote: &api.PlatformPaths{Linux: "/mnt/projects", Windows: "Z:"},
				},
				Children: []api.NodeRecord{
					{
						Type: api.KindFolder,
						ID:   "project",
						NC:   "{project}",
						Children: []api.NodeRecord{
							{
								Type: api.KindFolder,
								ID:   "editorial",
								Children: []api.NodeRecord{
									{Type: api.KindFile, ID: "cut", NC: "cut_{cut}.mov"},
								},
							},
							{
								Type: api.KindFolder,
								ID:   "asset",
								NC:   "{asset}",
								Children: []api.NodeRecord{
									{
										Type: api.KindFolder,
										ID:   "step",
										NC:   "{step}",
										Children: []api.NodeRecord{
											{
												Type: api.KindFolder,
												ID:   "version",
												NC:   "{version}",
												Children: []api.NodeRecord{
													{Type: api.KindFile, ID: "asset file", NC: "{name}.{ext}"},
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func loadFixture(t *testing.T) *Schema {
	t.Helper()
	s, err := Load(fixtureDoc())
	require.NoError(t, err)
	return s
}

// minimalRoot builds a single-root document with only a local/linux
// mount, for tests that need undeclared mount pairs.
func minimalRoot(id, prefix string, children ...api.NodeRecord) *api.Document {
	return &api.Document{
		Roots: []api.NodeRecord{
			{
				Type:     api.KindRoot,
				ID:       id,
				Mounts:   &api.Mounts{Local: &api.PlatformPaths{Linux: prefix}},
				Children: children,
			},
		},
	}
}
