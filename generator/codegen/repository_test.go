package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestforge/nestforge/schema"
)

var userModel = schema.Model{
	Name: "User",
	Fields: []schema.Field{
		{Name: "id", Type: "String"},
		{Name: "name", Type: "String"},
	},
}

func TestRepositoryContract(t *testing.T) {
	contract, _, err := Repository(userModel, false)
	require.NoError(t, err)

	want := `export abstract class UserRepository {
	abstract create(data: User): Promise<User>

	abstract find(data: Partial<User>): Promise<User>

	abstract findMany(data: Partial<User>): Promise<User[]>

	abstract update(id: string, data: Partial<User>): Promise<User>

	abstract delete(id: string): Promise<void>
}
`
	assert.Equal(t, want, contract)
}

func TestPrismaRepositoryWithMapper(t *testing.T) {
	_, impl, err := Repository(userModel, true)
	require.NoError(t, err)

	assert.Contains(t, impl, "export class PrismaUserRepository implements UserRepository {")
	assert.Contains(t, impl, "constructor(private readonly prisma: PrismaService) {}")

	// Every read/write method pipes raw client results through the mapper.
	assert.Equal(t, 3, strings.Count(impl, "return UserMapper.toDomain(result)"), "create, find and update map their result")
	assert.Contains(t, impl, "return result.map(UserMapper.toDomain)", "findMany maps element-wise")

	// Client accessor is the camelCase model name.
	assert.Contains(t, impl, "await this.prisma.user.create({")
	assert.Contains(t, impl, "await this.prisma.user.findFirst({")
	assert.Contains(t, impl, "await this.prisma.user.findMany({")
}

func TestPrismaRepositoryWithoutMapper(t *testing.T) {
	_, impl, err := Repository(userModel, false)
	require.NoError(t, err)

	// Raw client results are returned unmapped.
	assert.NotContains(t, impl, "Mapper.toDomain")
	assert.Contains(t, impl, "return this.prisma.user.create({")
	assert.Contains(t, impl, "return this.prisma.user.findFirst({")
	assert.Contains(t, impl, "return this.prisma.user.findMany({")

	// update issues a real update call, not a query.
	updateBody := methodBody(t, impl, "async update(")
	assert.Contains(t, updateBody, "this.prisma.user.update({")
	assert.NotContains(t, updateBody, "findMany")
}

func TestPrismaRepositoryDeleteIsAlwaysSoft(t *testing.T) {
	for _, hasMapper := range []bool{true, false} {
		_, impl, err := Repository(userModel, hasMapper)
		require.NoError(t, err)

		deleteBody := methodBody(t, impl, "async delete(")
		assert.Contains(t, deleteBody, "deletedAt: new Date(),")
		assert.Contains(t, deleteBody, "await this.prisma.user.update({")
		assert.NotContains(t, deleteBody, "delete({", "records are never hard-deleted")
	}
}

// methodBody cuts one generated method out of the class text, from its
// signature to the next method or end of class.
func methodBody(t *testing.T, impl, signature string) string {
	t.Helper()
	start := strings.Index(impl, signature)
	require.GreaterOrEqual(t, start, 0, "method %q not found", signature)
	rest := impl[start:]
	if end := strings.Index(rest, "\n\n\tasync "); end >= 0 {
		return rest[:end]
	}
	return rest
}
