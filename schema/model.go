package schema

// Schema is the parsed subset of a Prisma schema that the generator consumes.
type Schema struct {
	// Provider is the datasource provider, empty when the schema has no
	// datasource block.
	Provider string
	// Output is the generator output path, empty when not configured.
	Output string
	Models []Model
	Enums  []Enum
}

// Model describes one schema entity. Field order follows declaration order
// and is preserved in every generated module.
type Model struct {
	Name   string
	Fields []Field
}

// Field describes one attribute of a Model.
type Field struct {
	// Name is the field identifier, camelCase by Prisma convention.
	Name string
	// Type is the declared schema type: a scalar (Int, String, ...) or a
	// model/enum reference for relation fields.
	Type string
	// Optional marks fields declared with a trailing "?".
	Optional bool
	// List marks fields declared with a trailing "[]".
	List bool
}

// Enum describes an enum declaration. Enums are carried through parsing so
// enum-typed fields can be recognized, but they produce no modules.
type Enum struct {
	Name   string
	Values []string
}

// FindModel returns the model with the given name, or nil.
func (s *Schema) FindModel(name string) *Model {
	for i := range s.Models {
		if s.Models[i].Name == name {
			return &s.Models[i]
		}
	}
	return nil
}
