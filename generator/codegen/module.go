package codegen

import "fmt"

// ModuleKind identifies one generated module per model.
type ModuleKind int

const (
	// ModuleEntity is the domain entity: interface plus class.
	ModuleEntity ModuleKind = iota
	// ModuleMapper is the persistence-to-domain mapper.
	ModuleMapper
	// ModuleRepository is the abstract repository contract.
	ModuleRepository
	// ModulePrismaRepository is the concrete Prisma-backed repository. It is
	// never requested directly: it is always generated as the companion of
	// ModuleRepository.
	ModulePrismaRepository
)

// String returns the user-facing name of the module kind.
func (k ModuleKind) String() string {
	switch k {
	case ModuleEntity:
		return "Entity"
	case ModuleMapper:
		return "Mapper"
	case ModuleRepository:
		return "Repository"
	case ModulePrismaRepository:
		return "Prisma repository"
	default:
		return fmt.Sprintf("ModuleKind(%d)", int(k))
	}
}

// ParseModuleKind converts a user-facing module name to its kind. Only the
// externally requestable kinds parse; "Prisma repository" is deliberately not
// accepted here.
func ParseModuleKind(s string) (ModuleKind, error) {
	switch s {
	case "Entity", "entity":
		return ModuleEntity, nil
	case "Mapper", "mapper":
		return ModuleMapper, nil
	case "Repository", "repository":
		return ModuleRepository, nil
	default:
		return 0, fmt.Errorf("unknown module kind %q (expected Entity, Mapper or Repository)", s)
	}
}

// RequestableKinds lists the module kinds a caller may ask for, in menu order.
var RequestableKinds = []ModuleKind{ModuleEntity, ModuleMapper, ModuleRepository}
