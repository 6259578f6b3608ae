package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/treeline-io/treeline/api"
	"github.com/treeline-io/treeline/catalog"
	"github.com/treeline-io/treeline/graph"
)

var (
	catalogDB      string
	catalogVersion int64
)

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.PersistentFlags().StringVar(&catalogDB, "db", "treeline.db", "Path to the catalog database")
	catalogGetCmd.Flags().Int64Var(&catalogVersion, "version", 0, "Specific version (default: latest)")
	catalogCmd.AddCommand(catalogPutCmd, catalogGetCmd, catalogListCmd, catalogHistoryCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Store and retrieve versioned schema documents",
}

var catalogPutCmd = &cobra.Command{
	Use:   "put [name]",
	Short: "Store the --schema document as the next version of name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if schemaPath == "" {
			return fmt.Errorf("--schema is required")
		}
		doc, err := readDocument(schemaPath)
		if err != nil {
			return err
		}
		// Refuse to store a document that does not compile.
		if _, err := graph.Load(doc); err != nil {
			return err
		}
		st, err := catalog.Open(catalogDB)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		version, err := st.Put(args[0], doc)
		if err != nil {
			return err
		}
		fmt.Printf("stored %s version %d\n", args[0], version)
		return nil
	},
}

var catalogGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Print a stored schema document as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := catalog.Open(catalogDB)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		var doc *api.Document
		if catalogVersion > 0 {
			doc, err = st.GetVersion(args[0], catalogVersion)
		} else {
			doc, _, err = st.Get(args[0])
		}
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored schema names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := catalog.Open(catalogDB)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		names, err := st.Names()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var catalogHistoryCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "List every stored revision of name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := catalog.Open(catalogDB)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		revs, err := st.History(args[0])
		if err != nil {
			return err
		}
		for _, r := range revs {
			fmt.Printf("v%d  %s  %s\n", r.Version, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Checksum[:12])
		}
		return nil
	},
}
