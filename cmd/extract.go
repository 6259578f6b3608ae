package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	extractLocation string
	extractPlatform string
	extractJSON     bool
)

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractLocation, "location", "local", "Storage location (local, remote)")
	extractCmd.Flags().StringVar(&extractPlatform, "platform", "linux", "Path platform (linux, windows)")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Emit the result as JSON")
}

var extractCmd = &cobra.Command{
	Use:   "extract [path]",
	Short: "Recover the node and variables behind a literal path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSchema()
		if err != nil {
			return err
		}
		loc, plat, err := parseSelection(extractLocation, extractPlatform)
		if err != nil {
			return err
		}

		node, ctx, err := s.Extract(args[0], loc, plat)
		if err != nil {
			return err
		}

		if extractJSON {
			out := struct {
				NodeID string            `json:"node_id"`
				Kind   string            `json:"kind"`
				Vars   map[string]string `json:"vars"`
			}{node.ID(), node.Kind().String(), ctx.Map()}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Printf("node: %s (%s)\n", node.ID(), node.Kind())
		for _, b := range ctx.Bindings() {
			fmt.Printf("%s=%s\n", b.Name, b.Value)
		}
		return nil
	},
}
