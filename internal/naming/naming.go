package naming

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Singular returns the singular form of a collection name, used to name the element type of the
// collection. Already singular names are returned unchanged.
func Singular(name string) string {
	return inflection.Singular(name)
}

// Identifier converts a field or path name into a PascalCase declaration name. It returns an empty
// string when the name contains no letters or digits.
func Identifier(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	// A Caser keeps state between calls and cannot be shared.
	titleCaser := cases.Title(language.Und, cases.NoLower)

	var builder strings.Builder
	for _, word := range words {
		builder.WriteString(titleCaser.String(word))
	}

	identifier := builder.String()
	if identifier != "" && unicode.IsDigit([]rune(identifier)[0]) {
		identifier = "_" + identifier
	}

	return identifier
}
