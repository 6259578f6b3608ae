package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter schema document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		return os.WriteFile(path, []byte(starterSchema), 0o644)
	},
}

// starterSchema is a working document modelled on a film pipeline tree.
var starterSchema = strings.TrimPrefix(dedent.Dedent(`
	version: "1"
	roots:
	  - type: root
	    id: projects
	    description: Production projects
	    mounts:
	      local:
	        linux: "~/projects"
	        windows: 'C:\projects'
	      remote:
	        linux: "/mnt/projects"
	        windows: "Z:"
	    children:
	      - type: folder
	        id: project
	        nc: "{project}"
	        children:
	          - type: folder
	            id: editorial
	            description: Cut deliveries, resolved by its id
	            children:
	              - type: file
	                id: cut
	                nc: "cut_{cut}.mov"
	          - type: folder
	            id: asset
	            nc: "{asset}"
	            children:
	              - type: folder
	                id: step
	                nc: "{step}"
	                children:
	                  - type: folder
	                    id: version
	                    nc: "{version}"
	                    children:
	                      - type: file
	                        id: asset file
	                        nc: "{name}.{ext}"
`), "\n")
