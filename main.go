package main

import "github.com/treeline-io/treeline/cmd"

func main() {
	cmd.Execute()
}
