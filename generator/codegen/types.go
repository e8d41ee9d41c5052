package codegen

import (
	"github.com/nestforge/nestforge/schema"
)

// TSType maps a Prisma scalar type to the TypeScript type used in generated
// declarations. The second return value is false for types with no TypeScript
// representation (relations, enums, unsupported scalars); such fields are
// silently excluded from entities and mappers rather than treated as errors,
// since relation fields are expected to reach this point.
func TSType(fieldType string) (string, bool) {
	switch fieldType {
	case "Float", "Int", "Decimal", "BigInt":
		return "number", true
	case "String":
		return "string", true
	case "Boolean":
		return "boolean", true
	case "DateTime":
		return "Date", true
	default:
		return "", false
	}
}

// NeedsNumberCast reports whether a scalar crosses the Prisma client boundary
// as a Decimal/BigInt object and must be narrowed to a plain number when
// mapped into the domain entity. This is a conversion decision, separate from
// the declared type: all four numeric scalars declare as "number".
func NeedsNumberCast(fieldType string) bool {
	return fieldType == "Decimal" || fieldType == "BigInt"
}

// tsField is the view of one representable field as it appears in generated
// TypeScript: declared type already includes the null union for optional
// fields.
type tsField struct {
	Name       string
	Type       string
	NumberCast bool
}

// representableFields maps the model's fields to their TypeScript view,
// dropping fields whose type has no representation. Declaration order is
// preserved.
func representableFields(model schema.Model) []tsField {
	fields := make([]tsField, 0, len(model.Fields))
	for _, f := range model.Fields {
		tsType, ok := TSType(f.Type)
		if !ok {
			continue
		}
		if f.Optional {
			tsType += " | null"
		}
		fields = append(fields, tsField{
			Name:       f.Name,
			Type:       tsType,
			NumberCast: NeedsNumberCast(f.Type),
		})
	}
	return fields
}
