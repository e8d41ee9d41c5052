// Package schema parses the Prisma schema subset nestforge scaffolds from,
// using Participle.
package schema

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// rawSchema is the raw parse tree structure that matches the grammar. It is
// converted to Schema after parsing.
type rawSchema struct {
	Pos   lexer.Position
	Decls []*rawDecl `parser:"@@*"`
}

// rawDecl is a union of all top-level declarations.
type rawDecl struct {
	Pos        lexer.Position
	Datasource *rawConfigBlock `parser:"  \"datasource\" @@"`
	Generator  *rawConfigBlock `parser:"| \"generator\" @@"`
	Enum       *rawEnum        `parser:"| \"enum\" @@"`
	Model      *rawModel       `parser:"| \"model\" @@"`
}

type rawConfigBlock struct {
	Name  string     `parser:"@Ident"`
	Props []*rawProp `parser:"\"{\" @@* \"}\""`
}

type rawProp struct {
	Name  string    `parser:"@Ident"`
	Value *rawValue `parser:"\"=\" @@"`
}

type rawModel struct {
	Name       string          `parser:"@Ident"`
	Fields     []*rawField     `parser:"\"{\" @@*"`
	BlockAttrs []*rawBlockAttr `parser:"@@* \"}\""`
}

type rawField struct {
	Name     string     `parser:"@Ident"`
	Type     string     `parser:"@Ident"`
	List     bool       `parser:"@(\"[\" \"]\")?"`
	Optional bool       `parser:"@\"?\"?"`
	Attrs    []*rawAttr `parser:"@@*"`
}

type rawEnum struct {
	Name       string          `parser:"@Ident"`
	Values     []*rawEnumValue `parser:"\"{\" @@*"`
	BlockAttrs []*rawBlockAttr `parser:"@@* \"}\""`
}

type rawEnumValue struct {
	Name  string     `parser:"@Ident"`
	Attrs []*rawAttr `parser:"@@*"`
}

// rawAttr is a field attribute such as @id or @default(autoincrement()).
// Dotted names (@db.VarChar(255)) are kept as name parts.
type rawAttr struct {
	Parts []string `parser:"FieldAttr @Ident (\".\" @Ident)*"`
	Args  *rawArgs `parser:"@@?"`
}

type rawBlockAttr struct {
	Parts []string `parser:"BlockAttr @Ident (\".\" @Ident)*"`
	Args  *rawArgs `parser:"@@?"`
}

type rawArgs struct {
	Args []*rawArg `parser:"\"(\" (@@ (\",\" @@)*)? \")\""`
}

type rawArg struct {
	Name  string    `parser:"(@Ident \":\")?"`
	Value *rawValue `parser:"@@"`
}

// rawValue covers the attribute argument expressions that appear in field and
// block attributes. Values are carried opaquely; the generator never
// interprets them.
type rawValue struct {
	Func  *rawFuncCall `parser:"  @@"`
	Array []*rawValue  `parser:"| \"[\" (@@ (\",\" @@)*)? \"]\""`
	Str   *string      `parser:"| @String"`
	Num   *string      `parser:"| @Number"`
	Ref   *string      `parser:"| @Ident (\".\" @Ident)*"`
}

type rawFuncCall struct {
	Name string      `parser:"@Ident"`
	Args []*rawValue `parser:"\"(\" (@@ (\",\" @@)*)? \")\""`
}

// parser is the Participle parser instance.
var parser = participle.MustBuild[rawSchema](
	participle.Lexer(schemaLexer),
	participle.Elide("Whitespace", "Newline", "Comment", "DocComment"),
	participle.Unquote("String"),
	participle.UseLookahead(10),
)

// Parse parses a Prisma schema from an io.Reader.
func Parse(filename string, r io.Reader) (*Schema, error) {
	raw, err := parser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	return convertRawSchema(raw), nil
}

// ParseString parses a Prisma schema from a string.
func ParseString(filename, input string) (*Schema, error) {
	return Parse(filename, strings.NewReader(input))
}

// MustParseString parses a Prisma schema from a string, panicking on error.
// Intended for tests and fixtures.
func MustParseString(filename, input string) *Schema {
	schema, err := ParseString(filename, input)
	if err != nil {
		panic(err)
	}
	return schema
}

// convertRawSchema converts the raw parse tree to the public Schema.
func convertRawSchema(raw *rawSchema) *Schema {
	schema := &Schema{}
	for _, decl := range raw.Decls {
		switch {
		case decl.Model != nil:
			schema.Models = append(schema.Models, convertModel(decl.Model))
		case decl.Enum != nil:
			schema.Enums = append(schema.Enums, convertEnum(decl.Enum))
		case decl.Datasource != nil:
			if v := stringProp(decl.Datasource.Props, "provider"); v != "" {
				schema.Provider = v
			}
		case decl.Generator != nil:
			if v := stringProp(decl.Generator.Props, "output"); v != "" {
				schema.Output = v
			}
		}
	}
	return schema
}

func convertModel(raw *rawModel) Model {
	model := Model{
		Name:   raw.Name,
		Fields: make([]Field, 0, len(raw.Fields)),
	}
	for _, f := range raw.Fields {
		model.Fields = append(model.Fields, Field{
			Name:     f.Name,
			Type:     f.Type,
			Optional: f.Optional,
			List:     f.List,
		})
	}
	return model
}

func convertEnum(raw *rawEnum) Enum {
	enum := Enum{
		Name:   raw.Name,
		Values: make([]string, 0, len(raw.Values)),
	}
	for _, v := range raw.Values {
		enum.Values = append(enum.Values, v.Name)
	}
	return enum
}

// stringProp returns the string value of a named config property, or "".
func stringProp(props []*rawProp, name string) string {
	for _, prop := range props {
		if prop.Name == name && prop.Value != nil && prop.Value.Str != nil {
			return *prop.Value.Str
		}
	}
	return ""
}
