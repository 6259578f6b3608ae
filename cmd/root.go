package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/treeline-io/treeline/api"
	"github.com/treeline-io/treeline/graph"
	"github.com/treeline-io/treeline/internal/logutil"
)

var (
	schemaPath string
	logLevel   string
	logConsole bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "Path to a schema document (.json, .yaml, .yml, .hcl)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", true, "Human-readable console log output")
}

var rootCmd = &cobra.Command{
	Use:   "treeline",
	Short: "Treeline: naming-convention path resolution for production pipelines",
	Long: `Treeline compiles a declarative schema of roots, folders and files into
an immutable graph, resolves variable bindings into concrete filesystem
paths for any (location, platform) pair, and extracts node and variables
back out of literal paths.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logutil.Init(logLevel, logConsole)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// readDocument loads a schema document from disk through the
// extension-aware codecs.
func readDocument(path string) (*api.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsys := osfs.New(filepath.Dir(abs))
	return api.ReadFile(fsys, filepath.Base(abs))
}

// loadSchema reads and compiles the document named by --schema.
func loadSchema() (*graph.Schema, *api.Document, error) {
	if schemaPath == "" {
		return nil, nil, fmt.Errorf("--schema is required")
	}
	doc, err := readDocument(schemaPath)
	if err != nil {
		return nil, nil, err
	}
	s, err := graph.Load(doc)
	if err != nil {
		return nil, nil, err
	}
	return s, doc, nil
}

func parseSelection(location, platform string) (api.Location, api.Platform, error) {
	loc, err := api.ParseLocation(location)
	if err != nil {
		return 0, 0, err
	}
	plat, err := api.ParsePlatform(platform)
	if err != nil {
		return 0, 0, err
	}
	return loc, plat, nil
}
