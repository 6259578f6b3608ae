package cmd

import (
	"fmt"
	"os"

	"github.com/ddddddO/gtree"
	"github.com/spf13/cobra"

	"github.com/treeline-io/treeline/graph"
)

func init() {
	rootCmd.AddCommand(treeCmd)
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Render the compiled schema as a tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSchema()
		if err != nil {
			return err
		}
		for _, root := range s.Roots() {
			gr := gtree.NewRoot(nodeLabel(root))
			addChildren(gr, root)
			if err := gtree.OutputProgrammably(os.Stdout, gr); err != nil {
				return err
			}
		}
		return nil
	},
}

func addChildren(parent *gtree.Node, n graph.Node) {
	for _, child := range n.Children() {
		addChildren(parent.Add(nodeLabel(child)), child)
	}
}

func nodeLabel(n graph.Node) string {
	if nc := n.NamingConvention(); nc != "" {
		return fmt.Sprintf("%s  (%s)", n.ID(), nc)
	}
	return n.ID()
}
