package main

import (
	"fmt"
	"os"

	"github.com/classdeck/classdeck/internal/cli"
	"github.com/classdeck/classdeck/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to a process exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
