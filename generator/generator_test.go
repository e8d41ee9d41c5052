package generator

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestforge/nestforge/generator/codegen"
	"github.com/nestforge/nestforge/schema"
)

const testSchema = `
model User {
  id        String    @id @default(uuid())
  name      String
  age       Int?
  balance   Decimal
  posts     Post[]
  deletedAt DateTime?
}

model Post {
  id     String @id @default(uuid())
  title  String
  author User   @relation(fields: [authorId], references: [id])
  authorId String
}
`

func parseTestModel(t *testing.T, name string) schema.Model {
	t.Helper()
	sc, err := schema.ParseString("test.prisma", testSchema)
	require.NoError(t, err)
	model := sc.FindModel(name)
	require.NotNil(t, model)
	return *model
}

func TestWriteModulesAllKinds(t *testing.T) {
	fs := afero.NewMemMapFs()
	gen := New(fs)
	model := parseTestModel(t, "User")

	kinds := []codegen.ModuleKind{codegen.ModuleEntity, codegen.ModuleMapper, codegen.ModuleRepository}
	err := gen.WriteModules(kinds, "/out", "user", model)
	require.NoError(t, err)

	// Repository implies its Prisma companion: four files in total.
	paths := []string{
		"/out/user/domain/entity/user.entity.ts",
		"/out/user/infra/database/prisma/mappers/user.mapper.ts",
		"/out/user/app/repositories/user.repository.ts",
		"/out/user/infra/database/prisma/prisma-user.repository.ts",
	}
	for _, path := range paths {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, exists, "expected %s", path)
	}

	entity, err := afero.ReadFile(fs, paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(entity), "export interface IUser {")
	assert.Contains(t, string(entity), "age: number | null")
	assert.NotContains(t, string(entity), "posts", "relation fields are dropped")

	mapper, err := afero.ReadFile(fs, paths[1])
	require.NoError(t, err)
	assert.Contains(t, string(mapper), "balance: Number(data.balance),")

	impl, err := afero.ReadFile(fs, paths[3])
	require.NoError(t, err)
	assert.Contains(t, string(impl), "UserMapper.toDomain", "mapper in the request set switches repository bodies")
}

func TestWriteModulesRepositoryWithoutMapper(t *testing.T) {
	fs := afero.NewMemMapFs()
	gen := New(fs)
	model := parseTestModel(t, "Post")

	err := gen.WriteModules([]codegen.ModuleKind{codegen.ModuleRepository}, "/out", "post", model)
	require.NoError(t, err)

	impl, err := afero.ReadFile(fs, "/out/post/infra/database/prisma/prisma-post.repository.ts")
	require.NoError(t, err)
	assert.NotContains(t, string(impl), "Mapper.toDomain")
	assert.Contains(t, string(impl), "return this.prisma.post.findFirst({")
	assert.Contains(t, string(impl), "deletedAt: new Date(),", "delete stays a soft delete without a mapper")

	exists, err := afero.Exists(fs, "/out/post/infra/database/prisma/mappers/post.mapper.ts")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriteModulesRejectsDirectPrismaRepository(t *testing.T) {
	gen := New(afero.NewMemMapFs())
	model := parseTestModel(t, "User")

	err := gen.WriteModules([]codegen.ModuleKind{codegen.ModulePrismaRepository}, "/out", "user", model)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be requested directly")
}

func TestWriteModulesPropagatesWriteFailure(t *testing.T) {
	gen := New(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	model := parseTestModel(t, "User")

	err := gen.WriteModules([]codegen.ModuleKind{codegen.ModuleEntity}, "/out", "user", model)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Entity")
}

func TestWriteModulesIndependentPerModel(t *testing.T) {
	fs := afero.NewMemMapFs()
	gen := New(fs)

	for _, name := range []string{"User", "Post"} {
		model := parseTestModel(t, name)
		kinds := []codegen.ModuleKind{codegen.ModuleEntity}
		err := gen.WriteModules(kinds, "/out", codegen.KebabCase(name), model)
		require.NoError(t, err)
	}

	for _, path := range []string{
		"/out/user/domain/entity/user.entity.ts",
		"/out/post/domain/entity/post.entity.ts",
	} {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, exists, "expected %s", path)
	}
}
