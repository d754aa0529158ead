package types

import (
	"fmt"
	"strings"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	typescriptErrors "github.com/vphpersson/json_type_generation/pkg/producers/typescript/errors"
)

type Type interface {
	String() (string, error)
}

type TypeDeclaration interface {
	TypeReference() *TypeReference
	QualifiedName() string
}

type TypeReference struct {
	TypeDeclaration TypeDeclaration
}

func (t *TypeReference) String() (string, error) {
	return t.TypeDeclaration.QualifiedName(), nil
}

type BasicType string

const (
	Boolean   = BasicType("boolean")
	Number    = BasicType("number")
	String    = BasicType("string")
	Null      = BasicType("null")
	Undefined = BasicType("undefined")
	Any       = BasicType("any")
)

func (b BasicType) String() (string, error) { return string(b), nil }

type UnionType struct {
	Types []Type
}

func (u UnionType) String() (string, error) {
	var tsTypes []string
	for _, t := range u.Types {
		typeStr, err := t.String()
		if err != nil {
			return "", fmt.Errorf("type string: %w", err)
		}
		tsTypes = append(tsTypes, typeStr)
	}
	return strings.Join(tsTypes, " | "), nil
}

type TupleType struct {
	Types []Type
}

func (t *TupleType) String() (string, error) {
	var tsTypes []string
	for _, itemType := range t.Types {
		typeStr, err := itemType.String()
		if err != nil {
			return "", fmt.Errorf("type string: %w", err)
		}
		tsTypes = append(tsTypes, typeStr)
	}
	return fmt.Sprintf("[%s]", strings.Join(tsTypes, ", ")), nil
}

type MapType struct {
	IndexType Type
	ValueType Type
}

func (m *MapType) String() (string, error) {
	indexTypeString, err := m.IndexType.String()
	if err != nil {
		return "", fmt.Errorf("index type string: %w", err)
	}

	if indexTypeString != "number" && indexTypeString != "string" {
		return "", motmedelErrors.NewWithTrace(typescriptErrors.ErrUnsupportedIndexType, indexTypeString)
	}

	valueTypeString, err := m.ValueType.String()
	if err != nil {
		return "", fmt.Errorf("value type string: %w", err)
	}

	return fmt.Sprintf("{ [key: %s]: %s }", indexTypeString, valueTypeString), nil
}

type ArrayType struct {
	ItemsType Type
}

func (a *ArrayType) String() (string, error) {
	fmtStr := "%s[]"
	if _, ok := a.ItemsType.(*UnionType); ok {
		fmtStr = "(%s)[]"
	}

	typeStr, err := a.ItemsType.String()
	if err != nil {
		return "", fmt.Errorf("items type string: %w", err)
	}

	return fmt.Sprintf(fmtStr, typeStr), nil
}
