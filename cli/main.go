package main

import (
	"os"

	"github.com/nestforge/nestforge/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
