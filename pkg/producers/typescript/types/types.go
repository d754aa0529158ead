package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/Motmedel/utils_go/pkg/utils"
	typeGenerationErrors "github.com/vphpersson/json_type_generation/pkg/errors"
	typescriptErrors "github.com/vphpersson/json_type_generation/pkg/producers/typescript/errors"
	typeGenerationContext "github.com/vphpersson/json_type_generation/pkg/types/context"
	"github.com/vphpersson/json_type_generation/pkg/types/type_declaration"
	"github.com/vphpersson/json_type_generation/pkg/types/value"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// primitiveTypes maps the primitive names of the value tree to TypeScript. Without observations
// there is nothing to constrain, so bottom is rendered like any.
var primitiveTypes = map[value.Primitive]Type{
	value.Any:      Any,
	value.Bottom:   Any,
	value.Bool:     Boolean,
	value.String:   String,
	value.Integer:  Number,
	value.Floating: Number,
}

type Context struct {
	*typeGenerationContext.Context
}

func (c *Context) getTypeScriptType(v value.Value) (Type, error) {
	switch typedValue := v.(type) {
	case nil:
		return nil, motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNilValue)
	case value.Null:
		return Null, nil
	case value.Primitive:
		typeScriptType, ok := primitiveTypes[typedValue]
		if !ok {
			return nil, motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: %q", typeGenerationErrors.ErrUnsupportedPrimitive, string(typedValue)),
				typedValue,
			)
		}
		return typeScriptType, nil
	case value.Token:
		return BasicType(typedValue), nil
	case value.Array:
		if len(typedValue) != 1 {
			return nil, motmedelErrors.NewWithTrace(typeGenerationErrors.ErrMalformedArrayTemplate, len(typedValue))
		}
		itemsType, err := c.getTypeScriptType(typedValue[0])
		if err != nil {
			return nil, err
		}
		return &ArrayType{ItemsType: itemsType}, nil
	case *value.Object:
		tag, ok := typedValue.TypeTag()
		if !ok {
			interfaceDeclaration, ok := c.TypeDeclarations[typedValue]
			if !ok {
				return nil, motmedelErrors.NewWithTrace(typescriptErrors.ErrUndeclaredObject, typedValue)
			}
			return (&InterfaceDeclaration{InterfaceDeclaration: interfaceDeclaration, c: c}).TypeReference(), nil
		}

		wrapped, err := typeGenerationContext.Wrapped(typedValue, tag)
		if err != nil {
			return nil, err
		}

		switch tag {
		case value.TagTuple:
			tupleType := &TupleType{}
			for _, item := range wrapped.(value.Array) {
				itemType, err := c.getTypeScriptType(item)
				if err != nil {
					return nil, err
				}
				tupleType.Types = append(tupleType.Types, itemType)
			}
			return tupleType, nil
		case value.TagMap:
			valueType, err := c.getTypeScriptType(wrapped)
			if err != nil {
				return nil, err
			}
			return &MapType{IndexType: String, ValueType: valueType}, nil
		default:
			itemType, err := c.getTypeScriptType(wrapped)
			if err != nil {
				return nil, err
			}
			return &UnionType{Types: []Type{itemType, Undefined}}, nil
		}
	default:
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: %T", typeGenerationErrors.ErrUnsupportedValue, v), v)
	}
}

func (c *Context) Render() (string, error) {
	var interfaceDeclarations []*InterfaceDeclaration
	var typeAliasDeclarations []*TypeAliasDeclaration

	for _, typeDeclaration := range c.TypeDeclarationsInOrder {
		switch v := any(typeDeclaration).(type) {
		case *type_declaration.InterfaceDeclaration:
			interfaceDeclarations = append(
				interfaceDeclarations,
				&InterfaceDeclaration{InterfaceDeclaration: v, c: c},
			)
		case *type_declaration.TypeAliasDeclaration:
			typeAliasDeclarations = append(
				typeAliasDeclarations,
				&TypeAliasDeclaration{TypeAliasDeclaration: v, c: c},
			)
		}
	}

	var stringBuilder strings.Builder

	for i, interfaceDeclaration := range interfaceDeclarations {
		if i > 0 {
			stringBuilder.WriteString("\n")
		}
		d, err := interfaceDeclaration.String()
		if err != nil {
			return "", motmedelErrors.New(fmt.Errorf("to type script: %w", err), interfaceDeclaration)
		}
		stringBuilder.WriteString(d)
		stringBuilder.WriteString("\n")
	}

	for _, typeAliasDeclaration := range typeAliasDeclarations {
		if len(interfaceDeclarations) > 0 {
			stringBuilder.WriteString("\n")
		}

		d, err := typeAliasDeclaration.ToTypeScript()
		if err != nil {
			return "", motmedelErrors.New(fmt.Errorf("to type script: %w", err), typeAliasDeclaration)
		}
		stringBuilder.WriteString(d)
		stringBuilder.WriteString("\n")
	}

	return stringBuilder.String(), nil
}

func propertyName(identifier string) string {
	if identifierPattern.MatchString(identifier) {
		return identifier
	}
	return strconv.Quote(identifier)
}

type InterfaceDeclaration struct {
	*type_declaration.InterfaceDeclaration
	c *Context
}

func (t *InterfaceDeclaration) String() (string, error) {
	var propertyStrings []string

	for _, property := range t.Properties {
		if property == nil {
			continue
		}

		optionalString := ""
		if property.Optional {
			optionalString = "?"
		}

		typeScriptType, err := t.c.getTypeScriptType(property.Value)
		if err != nil {
			return "", motmedelErrors.New(fmt.Errorf("get type script type: %w", err), property.Identifier)
		}

		typeString, err := typeScriptType.String()
		if err != nil {
			return "", fmt.Errorf("type string: %w", err)
		}

		propertyStrings = append(
			propertyStrings,
			fmt.Sprintf("\t%s%s: %s;\n", propertyName(property.Identifier), optionalString, typeString),
		)
	}

	return fmt.Sprintf("export interface %s {\n%s}", t.Identifier, strings.Join(propertyStrings, "")), nil
}

func (t *InterfaceDeclaration) QualifiedName() string {
	return t.Identifier
}

func (t *InterfaceDeclaration) TypeReference() *TypeReference {
	return &TypeReference{TypeDeclaration: t}
}

type TypeAliasDeclaration struct {
	*type_declaration.TypeAliasDeclaration
	c *Context
}

func (a *TypeAliasDeclaration) TypeReference() *TypeReference {
	return &TypeReference{TypeDeclaration: a}
}

func (a *TypeAliasDeclaration) QualifiedName() string {
	return a.Identifier
}

func (a *TypeAliasDeclaration) ToTypeScript() (string, error) {
	typeScriptType, err := a.c.getTypeScriptType(a.Value)
	if err != nil {
		return "", fmt.Errorf("get type script type: %w", err)
	}

	typeString, err := typeScriptType.String()
	if err != nil {
		return "", fmt.Errorf("type string: %w", err)
	}

	return fmt.Sprintf("export type %s = %s;", a.Identifier, typeString), nil
}

// RootTypeReference returns a reference to the declaration of the root value.
func (c *Context) RootTypeReference() (*TypeReference, error) {
	if utils.IsNil(c.Root) {
		return nil, motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNilTypeDeclaration)
	}

	switch root := c.Root.(type) {
	case *type_declaration.InterfaceDeclaration:
		return (&InterfaceDeclaration{InterfaceDeclaration: root, c: c}).TypeReference(), nil
	default:
		typeAliasDeclaration, err := utils.Convert[*type_declaration.TypeAliasDeclaration](c.Root)
		if err != nil {
			return nil, motmedelErrors.New(fmt.Errorf("convert: %w", err), c.Root)
		}
		return (&TypeAliasDeclaration{TypeAliasDeclaration: typeAliasDeclaration, c: c}).TypeReference(), nil
	}
}
