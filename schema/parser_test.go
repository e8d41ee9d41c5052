package schema

import (
	"testing"
)

func TestParseBasicModel(t *testing.T) {
	input := `
model User {
  id    Int    @id @default(autoincrement())
  email String @unique
  name  String?
  posts Post[]
}
`
	schema, err := ParseString("test.prisma", input)
	if err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}

	if len(schema.Models) != 1 {
		t.Fatalf("Expected 1 model, got %d", len(schema.Models))
	}

	model := schema.Models[0]
	if model.Name != "User" {
		t.Errorf("Expected model name 'User', got '%s'", model.Name)
	}

	if len(model.Fields) != 4 {
		t.Fatalf("Expected 4 fields, got %d", len(model.Fields))
	}

	name := model.Fields[2]
	if !name.Optional {
		t.Errorf("Expected field 'name' to be optional")
	}

	posts := model.Fields[3]
	if posts.Type != "Post" {
		t.Errorf("Expected field 'posts' type 'Post', got '%s'", posts.Type)
	}
	if !posts.List {
		t.Errorf("Expected field 'posts' to be a list")
	}
}

func TestParseFieldOrderPreserved(t *testing.T) {
	input := `
model OrderItem {
  id       String  @id @default(uuid())
  price    Decimal
  quantity Int
  paid     Boolean
}
`
	schema, err := ParseString("test.prisma", input)
	if err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}

	model := schema.Models[0]
	want := []string{"id", "price", "quantity", "paid"}
	if len(model.Fields) != len(want) {
		t.Fatalf("Expected %d fields, got %d", len(want), len(model.Fields))
	}
	for i, name := range want {
		if model.Fields[i].Name != name {
			t.Errorf("Field %d: expected '%s', got '%s'", i, name, model.Fields[i].Name)
		}
	}
}

func TestParseEnum(t *testing.T) {
	input := `
enum Role {
  USER
  ADMIN
  MODERATOR @map("mod")
}
`
	schema, err := ParseString("test.prisma", input)
	if err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}

	if len(schema.Enums) != 1 {
		t.Fatalf("Expected 1 enum, got %d", len(schema.Enums))
	}

	enum := schema.Enums[0]
	if enum.Name != "Role" {
		t.Errorf("Expected enum name 'Role', got '%s'", enum.Name)
	}

	if len(enum.Values) != 3 {
		t.Errorf("Expected 3 values, got %d", len(enum.Values))
	}
}

func TestParseDatasourceProvider(t *testing.T) {
	input := `
datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

generator client {
  provider = "prisma-client-js"
  output   = "./src"
}
`
	schema, err := ParseString("test.prisma", input)
	if err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}

	if schema.Provider != "postgresql" {
		t.Errorf("Expected provider 'postgresql', got '%s'", schema.Provider)
	}

	if schema.Output != "./src" {
		t.Errorf("Expected output './src', got '%s'", schema.Output)
	}
}

func TestParseRelationAttributes(t *testing.T) {
	input := `
model Post {
  id        Int      @id @default(autoincrement())
  title     String   @db.VarChar(255)
  author    User     @relation(fields: [authorId], references: [id])
  authorId  Int
  createdAt DateTime @default(now())

  @@index([authorId])
  @@map("posts")
}
`
	schema, err := ParseString("test.prisma", input)
	if err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}

	model := schema.Models[0]
	if len(model.Fields) != 5 {
		t.Fatalf("Expected 5 fields, got %d", len(model.Fields))
	}

	author := model.Fields[2]
	if author.Type != "User" {
		t.Errorf("Expected field 'author' type 'User', got '%s'", author.Type)
	}
}

func TestParseInvalidSchema(t *testing.T) {
	input := `model Broken {`
	if _, err := ParseString("test.prisma", input); err == nil {
		t.Fatal("Expected parse error for unterminated model block")
	}
}

func TestFindModel(t *testing.T) {
	schema := MustParseString("test.prisma", `
model User {
  id Int @id
}

model Post {
  id Int @id
}
`)

	if schema.FindModel("Post") == nil {
		t.Error("Expected to find model 'Post'")
	}
	if schema.FindModel("Missing") != nil {
		t.Error("Did not expect to find model 'Missing'")
	}
}
