// Package generator orchestrates module generation: it builds the requested
// modules for each model, resolves their destination paths and persists them.
package generator

import (
	"fmt"
	"slices"

	"github.com/spf13/afero"

	"github.com/nestforge/nestforge/generator/codegen"
	"github.com/nestforge/nestforge/internal/debug"
	"github.com/nestforge/nestforge/schema"
)

// Generator writes generated modules for parsed models. It holds no state
// across models; each WriteModules call is an independent generation pass.
type Generator struct {
	layout codegen.Layout
	writer *codegen.Writer
}

// New creates a generator writing through the given filesystem (nil means the
// OS filesystem) with the default project layout.
func New(fs afero.Fs) *Generator {
	return &Generator{
		layout: codegen.DefaultLayout,
		writer: codegen.NewWriter(fs),
	}
}

// WriteModules generates and writes the requested module kinds for one model
// under baseDir/modulePath. Requesting the repository also generates its
// Prisma implementation; whether a mapper is in the requested set decides how
// the repository method bodies are rendered. A write failure aborts the pass
// with an error rather than skipping the module.
func (g *Generator) WriteModules(kinds []codegen.ModuleKind, baseDir, modulePath string, model schema.Model) error {
	hasMapper := slices.Contains(kinds, codegen.ModuleMapper)
	debug.Debug("Writing modules", "model", model.Name, "kinds", len(kinds), "hasMapper", hasMapper)

	for _, kind := range kinds {
		switch kind {
		case codegen.ModuleEntity:
			text, err := codegen.Entity(model)
			if err != nil {
				return err
			}
			if err := g.write(kind, baseDir, modulePath, model.Name, text); err != nil {
				return err
			}

		case codegen.ModuleMapper:
			text, err := codegen.Mapper(model)
			if err != nil {
				return err
			}
			if err := g.write(kind, baseDir, modulePath, model.Name, text); err != nil {
				return err
			}

		case codegen.ModuleRepository:
			contract, prismaImpl, err := codegen.Repository(model, hasMapper)
			if err != nil {
				return err
			}
			if err := g.write(kind, baseDir, modulePath, model.Name, contract); err != nil {
				return err
			}
			if err := g.write(codegen.ModulePrismaRepository, baseDir, modulePath, model.Name, prismaImpl); err != nil {
				return err
			}

		default:
			// ModulePrismaRepository is only ever emitted alongside
			// ModuleRepository; a direct request is a caller bug.
			return fmt.Errorf("module kind %s cannot be requested directly", kind)
		}
	}

	return nil
}

func (g *Generator) write(kind codegen.ModuleKind, baseDir, modulePath, modelName, text string) error {
	path, err := g.layout.Resolve(baseDir, modulePath, kind, modelName)
	if err != nil {
		return err
	}
	debug.Debug("Writing module", "kind", kind.String(), "path", path)
	if err := g.writer.Write(path, text); err != nil {
		return fmt.Errorf("failed to generate %s for %s: %w", kind, modelName, err)
	}
	return nil
}
