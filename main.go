package main

import "github.com/acpitools/amltohex/cmd"

// main is the entry point of the amltohex CLI application.
// It executes the root command, which converts an AML file or dispatches to a subcommand.
func main() {
	cmd.Execute()
}
