package codegen

import (
	"text/template"

	"github.com/nestforge/nestforge/schema"
)

type repositoryView struct {
	Name string
	// Client is the camelCase model name used as the Prisma client accessor
	// (this.prisma.<client>).
	Client string
	// HasMapper switches every read/write method between returning raw client
	// results and piping them through <Model>Mapper.toDomain.
	HasMapper bool
}

var repositoryContractTmpl = template.Must(template.New("repository").Parse(`export abstract class {{.Name}}Repository {
	abstract create(data: {{.Name}}): Promise<{{.Name}}>

	abstract find(data: Partial<{{.Name}}>): Promise<{{.Name}}>

	abstract findMany(data: Partial<{{.Name}}>): Promise<{{.Name}}[]>

	abstract update(id: string, data: Partial<{{.Name}}>): Promise<{{.Name}}>

	abstract delete(id: string): Promise<void>
}
`))

// delete is a soft delete in every generated repository: the record is never
// removed, only stamped with deletedAt.
var prismaRepositoryTmpl = template.Must(template.New("prisma-repository").Parse(`export class Prisma{{.Name}}Repository implements {{.Name}}Repository {
	constructor(private readonly prisma: PrismaService) {}

	async create(data: {{.Name}}): Promise<{{.Name}}> {
{{- if .HasMapper}}
		const result = await this.prisma.{{.Client}}.create({
			data,
		})

		return {{.Name}}Mapper.toDomain(result)
{{- else}}
		return this.prisma.{{.Client}}.create({
			data,
		})
{{- end}}
	}

	async find(data: Partial<{{.Name}}>): Promise<{{.Name}}> {
{{- if .HasMapper}}
		const result = await this.prisma.{{.Client}}.findFirst({
			where: data,
		})

		return {{.Name}}Mapper.toDomain(result)
{{- else}}
		return this.prisma.{{.Client}}.findFirst({
			where: data,
		})
{{- end}}
	}

	async findMany(data: Partial<{{.Name}}>): Promise<{{.Name}}[]> {
{{- if .HasMapper}}
		const result = await this.prisma.{{.Client}}.findMany({
			where: data,
		})

		return result.map({{.Name}}Mapper.toDomain)
{{- else}}
		return this.prisma.{{.Client}}.findMany({
			where: data,
		})
{{- end}}
	}

	async update(id: string, data: Partial<{{.Name}}>): Promise<{{.Name}}> {
{{- if .HasMapper}}
		const result = await this.prisma.{{.Client}}.update({
			where: {
				id,
			},
			data,
		})

		return {{.Name}}Mapper.toDomain(result)
{{- else}}
		return this.prisma.{{.Client}}.update({
			where: {
				id,
			},
			data,
		})
{{- end}}
	}

	async delete(id: string): Promise<void> {
		await this.prisma.{{.Client}}.update({
			where: {
				id,
			},
			data: {
				deletedAt: new Date(),
			},
		})
	}
}
`))

// Repository renders the two coupled repository modules for a model: the
// abstract contract and the concrete Prisma implementation. hasMapper must
// reflect whether a mapper module is generated for the same model, since the
// concrete method bodies branch on it.
func Repository(model schema.Model, hasMapper bool) (contract string, prismaImpl string, err error) {
	contract, err = execute(repositoryContractTmpl, repositoryView{Name: model.Name})
	if err != nil {
		return "", "", err
	}

	prismaImpl, err = execute(prismaRepositoryTmpl, repositoryView{
		Name:      model.Name,
		Client:    LowerFirst(model.Name),
		HasMapper: hasMapper,
	})
	if err != nil {
		return "", "", err
	}

	return contract, prismaImpl, nil
}
