package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LowerFirst lowercases only the first rune of an identifier. It turns a
// PascalCase model name into the camelCase name used for constructor
// parameters and the Prisma client accessor.
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// KebabCase converts a PascalCase identifier to kebab-case for filenames:
// a hyphen is inserted before every uppercase rune except the first, then the
// whole string is lowercased.
func KebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
