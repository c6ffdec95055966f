package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/here/cmd/here/commands"
)

const (
	cmdName = "here"

	shortDesc = "Resolve paths relative to a named project root."
	longDesc  = `Resolve paths relative to a named project root.

The root is the shallowest directory in the current working path whose name
matches --root (or $HERE_PROJECT_DIR). Every path argument is joined onto that
root, so scripts anywhere in the project tree can address files the same way.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
