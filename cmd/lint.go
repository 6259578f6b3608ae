package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report advisory findings about the schema",
	Long: `Lint compiles the schema and prints findings the loader deliberately
tolerates: overlapping sibling conventions, ids reused across scopes,
and separators inside segment literals. Findings never fail the command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSchema()
		if err != nil {
			return err
		}
		diags := s.Lint()
		if len(diags) == 0 {
			fmt.Println("no findings")
			return nil
		}
		for _, d := range diags {
			fmt.Println(d)
		}
		return nil
	},
}
