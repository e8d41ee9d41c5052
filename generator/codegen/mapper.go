package codegen

import (
	"text/template"

	"github.com/nestforge/nestforge/schema"
)

type mapperView struct {
	Name   string
	Fields []tsField
}

// Decimal and BigInt arrive from the Prisma client as wrapper objects and are
// narrowed with Number() when copied into the domain entity; every other
// representable field is copied through untouched. Fields the entity does not
// declare are neither read nor written, keeping mapper and entity in parity.
var mapperTmpl = template.Must(template.New("mapper").Parse(`export class {{.Name}}Mapper {
	static toDomain(data: Prisma{{.Name}}): {{.Name}} {
		return new {{.Name}}({
{{- range .Fields}}
{{- if .NumberCast}}
			{{.Name}}: Number(data.{{.Name}}),
{{- else}}
			{{.Name}}: data.{{.Name}},
{{- end}}
{{- end}}
		})
	}
}
`))

// Mapper renders the persistence-to-domain mapper module for a model.
func Mapper(model schema.Model) (string, error) {
	return execute(mapperTmpl, mapperView{
		Name:   model.Name,
		Fields: representableFields(model),
	})
}
