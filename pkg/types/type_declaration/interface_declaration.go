package type_declaration

import (
	"github.com/vphpersson/json_type_generation/pkg/types/value"
)

type PropertySignature struct {
	Identifier string
	Value      value.Value
	Optional   bool
}

// InterfaceDeclaration declares a record found in the value tree.
type InterfaceDeclaration struct {
	Identifier string
	Properties []*PropertySignature
	Object     *value.Object
}

func (i *InterfaceDeclaration) QualifiedName() string {
	return i.Identifier
}
