package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treeline-io/treeline/vars"
)

var (
	resolveVarFlags []string
	resolveLocation string
	resolvePlatform string
	resolveJSON     bool
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringArrayVar(&resolveVarFlags, "var", nil, "Variable binding as name=value (repeatable)")
	resolveCmd.Flags().StringVar(&resolveLocation, "location", "local", "Storage location (local, remote)")
	resolveCmd.Flags().StringVar(&resolvePlatform, "platform", "linux", "Path platform (linux, windows)")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Emit the result as JSON")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [node-id]",
	Short: "Resolve a node id and variable bindings into a concrete path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSchema()
		if err != nil {
			return err
		}
		loc, plat, err := parseSelection(resolveLocation, resolvePlatform)
		if err != nil {
			return err
		}
		ctx, err := parseVarFlags(resolveVarFlags)
		if err != nil {
			return err
		}

		rp, err := s.Resolve(args[0], ctx, loc, plat)
		if err != nil {
			return err
		}

		if resolveJSON {
			out := struct {
				Path     string   `json:"path"`
				Segments []string `json:"segments"`
				Location string   `json:"location"`
				Platform string   `json:"platform"`
			}{rp.String(), rp.Segments, loc.String(), plat.String()}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
		fmt.Println(rp.String())
		return nil
	},
}

// parseVarFlags turns repeated name=value flags into a context.
func parseVarFlags(kvs []string) (*vars.Context, error) {
	ctx := vars.New()
	for _, kv := range kvs {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q (want name=value)", kv)
		}
		ctx.Set(name, value)
	}
	return ctx, nil
}
