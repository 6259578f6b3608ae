package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query [jsonpath]",
	Short: "Run a JSONPath query against the schema document",
	Long: `Query evaluates a JSONPath expression against the raw document named
by --schema, regardless of the format it was authored in. Example:

  treeline query -s schema.yaml '$.roots[0].children[*].id'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, doc, err := loadSchema()
		if err != nil {
			return err
		}

		x, err := jp.ParseString(args[0])
		if err != nil {
			return fmt.Errorf("invalid jsonpath %q: %w", args[0], err)
		}

		// Canonicalize through JSON so every input format queries alike.
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		root, err := oj.Parse(data)
		if err != nil {
			return err
		}

		for _, result := range x.Get(root) {
			fmt.Println(oj.JSON(result))
		}
		return nil
	},
}
