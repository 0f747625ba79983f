// Command pmmlc compiles the transformations of a PMML model and evaluates
// them against an input document.
package main

import (
	"os"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
