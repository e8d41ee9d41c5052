// Package commands implements the nestforge CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/nestforge/nestforge/internal/debug"
)

var rootCmd = &cobra.Command{
	Use:   "nestforge",
	Short: "Scaffold NestJS clean-architecture modules from a Prisma schema",
	Long: `nestforge reads a Prisma schema and scaffolds NestJS-style modules per model:
a domain entity, a persistence mapper, an abstract repository contract and a
Prisma repository implementation.`,
	SilenceUsage: true,
}

var debugFlag bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	cobra.OnInitialize(func() {
		debug.Init(debugFlag)
	})
}

// Execute is the main entry point for the CLI.
func Execute() error {
	return rootCmd.Execute()
}
