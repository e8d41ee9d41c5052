package codegen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/nestforge/nestforge/schema"
)

// entityView feeds the entity template. Fields hold only the representable
// fields, in declaration order, so the interface and the class always declare
// the exact same set.
type entityView struct {
	Name   string
	Param  string
	Fields []tsField
}

var entityTmpl = template.Must(template.New("entity").Parse(`export interface I{{.Name}} {
{{- range .Fields}}
	{{.Name}}: {{.Type}}
{{- end}}
}

export class {{.Name}} implements I{{.Name}} {
{{- range .Fields}}
	readonly {{.Name}}: {{.Type}}
{{- end}}

	constructor({{.Param}}: I{{.Name}}) {
		Object.assign(this, {{.Param}})
	}
}
`))

// Entity renders the domain entity module for a model: an interface
// I<Model> and a class <Model> implementing it, whose constructor copies every
// field of the interface-typed parameter onto the instance. A model with no
// representable fields still yields a valid, empty-bodied pair.
func Entity(model schema.Model) (string, error) {
	return execute(entityTmpl, entityView{
		Name:   model.Name,
		Param:  LowerFirst(model.Name),
		Fields: representableFields(model),
	})
}

// execute renders a template into a string.
func execute(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", t.Name(), err)
	}
	return b.String(), nil
}
