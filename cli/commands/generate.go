package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/nestforge/nestforge/cli/internal/config"
	"github.com/nestforge/nestforge/cli/internal/ui"
	"github.com/nestforge/nestforge/cli/internal/watch"
	"github.com/nestforge/nestforge/generator"
	"github.com/nestforge/nestforge/generator/codegen"
	"github.com/nestforge/nestforge/schema"
)

var generateCmd = &cobra.Command{
	Use:   "generate [schema-path]",
	Short: "Generate NestJS modules from your Prisma schema",
	Long: `Generate NestJS clean-architecture modules from a Prisma schema.

For each selected model this command scaffolds the selected module kinds:
- Entity      domain/entity/<model>.entity.ts
- Mapper      infra/database/prisma/mappers/<model>.mapper.ts
- Repository  app/repositories/<model>.repository.ts and
              infra/database/prisma/prisma-<model>.repository.ts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var (
	generateSchemaPath string
	generateOutDir     string
	generateModulePath string
	generateModules    []string
	generateModels     []string
	generateWatch      bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateSchemaPath, "schema", "s", "", "Path to schema file")
	generateCmd.Flags().StringVarP(&generateOutDir, "out", "o", "", "Output directory")
	generateCmd.Flags().StringVarP(&generateModulePath, "module-path", "m", "", "Module path under the output directory (default: kebab-cased model name)")
	generateCmd.Flags().StringSliceVar(&generateModules, "modules", nil, "Module kinds to generate (Entity, Mapper, Repository)")
	generateCmd.Flags().StringSliceVar(&generateModels, "models", nil, "Models to scaffold (default: interactive selection)")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Watch the schema file and regenerate on change")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	schemaPath := cfg.SchemaPath
	if generateSchemaPath != "" {
		schemaPath = generateSchemaPath
	}
	if len(args) > 0 {
		schemaPath = args[0]
	}

	outDir := cfg.OutputDir
	if generateOutDir != "" {
		outDir = generateOutDir
	}

	modulePath := cfg.ModulePath
	if generateModulePath != "" {
		modulePath = generateModulePath
	}

	ui.PrintHeader("nestforge", "Generate modules")

	sc, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}

	names, err := selectModels(sc)
	if err != nil {
		return err
	}

	kinds, err := selectKinds(cfg.Modules)
	if err != nil {
		return err
	}

	run := func(sc *schema.Schema) error {
		gen := generator.New(nil)
		for _, name := range names {
			model := sc.FindModel(name)
			if model == nil {
				ui.PrintWarning("Model %s is no longer in the schema, skipping", name)
				continue
			}
			mp := modulePath
			if mp == "" {
				mp = codegen.KebabCase(model.Name)
			}
			if err := gen.WriteModules(kinds, outDir, mp, *model); err != nil {
				return err
			}
		}
		return nil
	}

	if generateWatch {
		return runGenerateWatch(schemaPath, run)
	}

	spinner, _ := ui.PrintSpinner("Generating modules...")
	if err := run(sc); err != nil {
		spinner.Stop()
		return err
	}
	spinner.Stop()

	absPath, _ := filepath.Abs(outDir)
	ui.PrintSuccess("Scaffolded %d model(s) at %s", len(names), absPath)
	fmt.Println()

	ui.PrintSection("Generated Modules")
	items := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		items = append(items, kind.String())
		if kind == codegen.ModuleRepository {
			items = append(items, codegen.ModulePrismaRepository.String())
		}
	}
	ui.PrintList(items)

	return nil
}

// runGenerateWatch regenerates with the already-resolved selection every time
// the schema file changes.
func runGenerateWatch(schemaPath string, run func(*schema.Schema) error) error {
	regenerate := func() error {
		ui.PrintInfo("Schema changed, regenerating...")
		sc, err := loadSchema(schemaPath)
		if err != nil {
			return err
		}
		if err := run(sc); err != nil {
			return err
		}
		ui.PrintSuccess("Regenerated from %s", schemaPath)
		return nil
	}

	// First pass before watching.
	sc, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}
	if err := run(sc); err != nil {
		return err
	}

	watcher, err := watch.NewWatcher(schemaPath, regenerate)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()
	watcher.Start()

	ui.PrintSuccess("Watching %s for changes... (Press Ctrl+C to stop)", schemaPath)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ui.PrintInfo("\nStopping watch mode...")
	return nil
}

// loadSchema reads and parses the schema file.
func loadSchema(schemaPath string) (*schema.Schema, error) {
	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("schema file not found: %s", schemaPath)
	}

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	sc, err := schema.ParseString(schemaPath, string(content))
	if err != nil {
		ui.PrintError("Schema parsing failed:")
		return nil, err
	}

	if len(sc.Models) == 0 {
		return nil, fmt.Errorf("schema %s contains no models", schemaPath)
	}

	return sc, nil
}

// selectModels resolves which models to scaffold: the --models flag when
// given, otherwise an interactive multi-select (skipped for single-model
// schemas).
func selectModels(sc *schema.Schema) ([]string, error) {
	names := make([]string, 0, len(sc.Models))
	for _, m := range sc.Models {
		names = append(names, m.Name)
	}

	if len(generateModels) > 0 {
		for _, want := range generateModels {
			if sc.FindModel(want) == nil {
				return nil, fmt.Errorf("model %q not found in schema", want)
			}
		}
		return generateModels, nil
	}

	if len(names) == 1 {
		return names, nil
	}

	var picked []string
	prompt := &survey.MultiSelect{
		Message: "Models to scaffold:",
		Options: names,
		Default: names,
	}
	if err := survey.AskOne(prompt, &picked, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}
	return picked, nil
}

// selectKinds resolves which module kinds to generate: the --modules flag,
// then configured defaults, then an interactive multi-select.
func selectKinds(configured []string) ([]codegen.ModuleKind, error) {
	requested := generateModules
	if len(requested) == 0 {
		requested = configured
	}

	if len(requested) > 0 {
		return parseKinds(requested)
	}

	options := make([]string, 0, len(codegen.RequestableKinds))
	for _, kind := range codegen.RequestableKinds {
		options = append(options, kind.String())
	}

	var picked []string
	prompt := &survey.MultiSelect{
		Message: "Modules to generate:",
		Options: options,
		Default: options,
	}
	if err := survey.AskOne(prompt, &picked, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}
	return parseKinds(picked)
}

func parseKinds(names []string) ([]codegen.ModuleKind, error) {
	kinds := make([]codegen.ModuleKind, 0, len(names))
	for _, name := range names {
		kind, err := codegen.ParseModuleKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
