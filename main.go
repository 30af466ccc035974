package main

import (
	"github.com/xkilldash9x/skelgen-cli/cmd"
)

// main is the entry point for the skelgen CLI application. Command-line
// parsing, configuration, and execution all live in the cmd package.
func main() {
	cmd.Execute()
}
