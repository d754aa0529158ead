package type_declaration

import "github.com/vphpersson/json_type_generation/pkg/types/value"

// TypeAliasDeclaration names a root value that is not a record.
type TypeAliasDeclaration struct {
	Identifier string
	Value      value.Value
}

func (t *TypeAliasDeclaration) QualifiedName() string {
	return t.Identifier
}
