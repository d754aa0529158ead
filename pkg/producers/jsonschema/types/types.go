package types

import (
	"encoding/json"
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/Motmedel/utils_go/pkg/utils"
	"github.com/invopop/jsonschema"
	typeGenerationErrors "github.com/vphpersson/json_type_generation/pkg/errors"
	typeGenerationContext "github.com/vphpersson/json_type_generation/pkg/types/context"
	"github.com/vphpersson/json_type_generation/pkg/types/type_declaration"
	"github.com/vphpersson/json_type_generation/pkg/types/value"
)

const (
	schemaVersion = "https://json-schema.org/draft/2020-12/schema"
	defsPrefix    = "#/$defs/"
)

var primitiveTypes = map[value.Primitive]string{
	value.Bool:     "boolean",
	value.String:   "string",
	value.Integer:  "integer",
	value.Floating: "number",
}

type Context struct {
	*typeGenerationContext.Context
}

// GetJSONSchemaType returns a JSON Schema fragment describing the provided value.
func (c *Context) GetJSONSchemaType(v value.Value) (*jsonschema.Schema, error) {
	switch typedValue := v.(type) {
	case nil:
		return nil, motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNilValue)
	case value.Null:
		return &jsonschema.Schema{Type: "null"}, nil
	case value.Primitive:
		// Any and bottom place no constraint on the instance.
		if typedValue == value.Any || typedValue == value.Bottom {
			return &jsonschema.Schema{}, nil
		}
		schemaType, ok := primitiveTypes[typedValue]
		if !ok {
			return nil, motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: %q", typeGenerationErrors.ErrUnsupportedPrimitive, string(typedValue)),
				typedValue,
			)
		}
		return &jsonschema.Schema{Type: schemaType}, nil
	case value.Token:
		return &jsonschema.Schema{Description: string(typedValue)}, nil
	case value.Array:
		if len(typedValue) != 1 {
			return nil, motmedelErrors.NewWithTrace(typeGenerationErrors.ErrMalformedArrayTemplate, len(typedValue))
		}
		itemSchema, err := c.GetJSONSchemaType(typedValue[0])
		if err != nil {
			return nil, motmedelErrors.New(fmt.Errorf("get json schema type (items): %w", err), typedValue[0])
		}
		return &jsonschema.Schema{Type: "array", Items: itemSchema}, nil
	case *value.Object:
		tag, ok := typedValue.TypeTag()
		if !ok {
			interfaceDeclaration, ok := c.TypeDeclarations[typedValue]
			if !ok {
				return nil, motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNilTypeDeclaration, typedValue)
			}
			return &jsonschema.Schema{Ref: defsPrefix + interfaceDeclaration.QualifiedName()}, nil
		}

		wrapped, err := typeGenerationContext.Wrapped(typedValue, tag)
		if err != nil {
			return nil, err
		}

		switch tag {
		case value.TagTuple:
			var prefixItems []*jsonschema.Schema
			for _, item := range wrapped.(value.Array) {
				itemSchema, err := c.GetJSONSchemaType(item)
				if err != nil {
					return nil, motmedelErrors.New(fmt.Errorf("get json schema type (prefix items): %w", err), item)
				}
				prefixItems = append(prefixItems, itemSchema)
			}
			return &jsonschema.Schema{Type: "array", PrefixItems: prefixItems, Items: jsonschema.FalseSchema}, nil
		case value.TagMap:
			valueSchema, err := c.GetJSONSchemaType(wrapped)
			if err != nil {
				return nil, motmedelErrors.New(fmt.Errorf("get json schema type (map value): %w", err), wrapped)
			}
			return &jsonschema.Schema{Type: "object", AdditionalProperties: valueSchema}, nil
		default:
			itemSchema, err := c.GetJSONSchemaType(wrapped)
			if err != nil {
				return nil, motmedelErrors.New(fmt.Errorf("get json schema type (optional item): %w", err), wrapped)
			}
			return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{itemSchema, {Type: "null"}}}, nil
		}
	default:
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: %T", typeGenerationErrors.ErrUnsupportedValue, v), v)
	}
}

// buildInterfaceSchema builds the object schema for a given interface declaration
func (c *Context) buildInterfaceSchema(interfaceDeclaration *type_declaration.InterfaceDeclaration) (*jsonschema.Schema, error) {
	properties := jsonschema.NewProperties()
	requiredProperties := []string{}

	for _, property := range interfaceDeclaration.Properties {
		if property == nil {
			continue
		}

		propertySchema, err := c.GetJSONSchemaType(property.Value)
		if err != nil {
			return nil, motmedelErrors.New(fmt.Errorf("get json schema type: %w", err), property.Identifier)
		}

		properties.Set(property.Identifier, propertySchema)
		if !property.Optional {
			requiredProperties = append(requiredProperties, property.Identifier)
		}
	}

	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           properties,
		Required:             requiredProperties,
		AdditionalProperties: jsonschema.FalseSchema,
	}, nil
}

// Schema builds a single JSON Schema document with every record under $defs. A record root is
// referenced via $ref; any other root is inlined.
func (c *Context) Schema() (*jsonschema.Schema, error) {
	if utils.IsNil(c.Root) {
		return nil, motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNilTypeDeclaration)
	}

	defs := jsonschema.Definitions{}
	for _, typeDeclaration := range c.TypeDeclarationsInOrder {
		interfaceDeclaration, ok := typeDeclaration.(*type_declaration.InterfaceDeclaration)
		if !ok || interfaceDeclaration == nil {
			continue
		}

		schema, err := c.buildInterfaceSchema(interfaceDeclaration)
		if err != nil {
			return nil, motmedelErrors.New(fmt.Errorf("build interface schema: %w", err), interfaceDeclaration)
		}

		defs[interfaceDeclaration.Identifier] = schema
	}

	var rootSchema *jsonschema.Schema
	switch root := c.Root.(type) {
	case *type_declaration.InterfaceDeclaration:
		rootSchema = &jsonschema.Schema{Ref: defsPrefix + root.Identifier}
	default:
		typeAliasDeclaration, err := utils.Convert[*type_declaration.TypeAliasDeclaration](c.Root)
		if err != nil {
			return nil, motmedelErrors.New(fmt.Errorf("convert: %w", err), c.Root)
		}

		rootSchema, err = c.GetJSONSchemaType(typeAliasDeclaration.Value)
		if err != nil {
			return nil, motmedelErrors.New(fmt.Errorf("get json schema type (root): %w", err), typeAliasDeclaration)
		}
	}

	rootSchema.Version = schemaVersion
	rootSchema.Title = c.Root.QualifiedName()
	if len(defs) > 0 {
		rootSchema.Definitions = defs
	}

	return rootSchema, nil
}

func (c *Context) RenderRoot() (string, error) {
	schema, err := c.Schema()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(schema)
	if err != nil {
		return "", motmedelErrors.NewWithTrace(fmt.Errorf("json marshal (schema): %w", err), schema)
	}

	return string(data), nil
}
