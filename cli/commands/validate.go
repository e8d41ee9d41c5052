package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nestforge/nestforge/cli/internal/config"
	"github.com/nestforge/nestforge/cli/internal/ui"
	"github.com/nestforge/nestforge/generator/codegen"
)

var validateCmd = &cobra.Command{
	Use:   "validate [schema-path]",
	Short: "Validate a Prisma schema file",
	Long: `Parse a Prisma schema and report the models nestforge would scaffold,
including how many fields of each model are representable in TypeScript.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var validateSchemaPath string

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaPath, "schema", "s", "", "Path to schema file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	schemaPath := cfg.SchemaPath
	if validateSchemaPath != "" {
		schemaPath = validateSchemaPath
	}
	if len(args) > 0 {
		schemaPath = args[0]
	}

	sc, err := loadSchema(schemaPath)
	if err != nil {
		ui.PrintError("Schema validation failed: %v", err)
		return err
	}

	ui.PrintSuccess("Schema is valid: %s", schemaPath)
	if sc.Provider != "" {
		ui.PrintInfo("Provider: %s", sc.Provider)
	}
	fmt.Println()

	rows := make([][]string, 0, len(sc.Models))
	for _, model := range sc.Models {
		representable := 0
		for _, field := range model.Fields {
			if _, ok := codegen.TSType(field.Type); ok {
				representable++
			}
		}
		rows = append(rows, []string{
			model.Name,
			strconv.Itoa(len(model.Fields)),
			strconv.Itoa(representable),
		})
	}
	ui.PrintTable([]string{"Model", "Fields", "Scaffolded"}, rows)

	if len(sc.Enums) > 0 {
		fmt.Println()
		dim := color.New(color.Faint)
		for _, enum := range sc.Enums {
			dim.Fprintf(os.Stdout, "enum %s (%d values, not scaffolded)\n", enum.Name, len(enum.Values))
		}
	}

	return nil
}
