package codegen

import (
	"fmt"
	"path/filepath"
)

// Layout fixes where each generated module lands inside a feature module.
// The directory convention is a project-layout contract shared with
// hand-written code that imports the generated files; it is not configurable
// per call.
type Layout struct {
	EntityDir           string
	MapperDir           string
	RepositoryDir       string
	PrismaRepositoryDir string
	// Ext is the file extension, including the dot.
	Ext string
}

// DefaultLayout is the NestJS clean-architecture convention.
var DefaultLayout = Layout{
	EntityDir:           "domain/entity",
	MapperDir:           "infra/database/prisma/mappers",
	RepositoryDir:       "app/repositories",
	PrismaRepositoryDir: "infra/database/prisma",
	Ext:                 ".ts",
}

// Resolve computes the destination path for one generated module:
// baseDir/modulePath/<kind subdirectory>/<kebab-cased filename>.
func (l Layout) Resolve(baseDir, modulePath string, kind ModuleKind, modelName string) (string, error) {
	kebab := KebabCase(modelName)

	var dir, file string
	switch kind {
	case ModuleEntity:
		dir, file = l.EntityDir, kebab+".entity"+l.Ext
	case ModuleMapper:
		dir, file = l.MapperDir, kebab+".mapper"+l.Ext
	case ModuleRepository:
		dir, file = l.RepositoryDir, kebab+".repository"+l.Ext
	case ModulePrismaRepository:
		dir, file = l.PrismaRepositoryDir, "prisma-"+kebab+".repository"+l.Ext
	default:
		return "", fmt.Errorf("cannot resolve path for unknown module kind %d", int(kind))
	}

	return filepath.Join(baseDir, modulePath, dir, file), nil
}
