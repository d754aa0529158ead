package types

import (
	"fmt"
	"slices"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/vphpersson/json_type_generation/internal/naming"
	typeGenerationErrors "github.com/vphpersson/json_type_generation/pkg/errors"
	"github.com/vphpersson/json_type_generation/pkg/types/options"
	"github.com/vphpersson/json_type_generation/pkg/types/shape"
	"github.com/vphpersson/json_type_generation/pkg/types/value"
)

// TuplePolicy reports whether a fixed-length sequence whose members fold to folded is projected as
// a positional tuple rather than as a homogeneous list.
type TuplePolicy func(members []shape.Shape, folded shape.Shape) bool

// HeterogeneousTuplePolicy selects a tuple when the members fold to any and at least one member is
// not itself any. Members that are uniformly any, or that fold to a concrete shape, form a list.
func HeterogeneousTuplePolicy(members []shape.Shape, folded shape.Shape) bool {
	return shape.Equal(folded, shape.Any) && slices.ContainsFunc(members, func(member shape.Shape) bool {
		return !shape.Equal(member, shape.Any)
	})
}

// Context projects shapes into the generic value tree. It holds no state that changes during a
// projection and can be shared between goroutines.
type Context struct {
	Options     *options.Options
	Fold        func(shapes []shape.Shape) shape.Shape
	Singular    func(name string) string
	TuplePolicy TuplePolicy
}

func New(generationOptions *options.Options) *Context {
	if generationOptions == nil {
		generationOptions = options.Default()
	}

	return &Context{
		Options:     generationOptions,
		Fold:        shape.Fold,
		Singular:    naming.Singular,
		TuplePolicy: HeterogeneousTuplePolicy,
	}
}

var primitiveValues = map[shape.Primitive]value.Value{
	shape.Null:     value.Null{},
	shape.Any:      value.Any,
	shape.Bottom:   value.Bottom,
	shape.Bool:     value.Bool,
	shape.String:   value.String,
	shape.Integer:  value.Integer,
	shape.Floating: value.Floating,
}

// TypeFromShape projects s, found at path, into a value tree.
func (c *Context) TypeFromShape(path string, s shape.Shape) (value.Value, error) {
	switch v := s.(type) {
	case nil:
		return nil, motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNilShape, path)
	case shape.Primitive:
		primitiveValue, ok := primitiveValues[v]
		if !ok {
			return nil, motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: %s", typeGenerationErrors.ErrUnsupportedShape, v.Kind()),
				path,
			)
		}
		return primitiveValue, nil
	case shape.Opaque:
		return value.Token(v), nil
	case *shape.Tuple:
		folded := c.Fold(v.Shapes)
		if c.TuplePolicy(v.Shapes, folded) {
			return c.generateTupleType(path, v.Shapes)
		}
		return c.generateVecType(path, folded)
	case *shape.Vec:
		return c.generateVecType(path, v.Element)
	case *shape.Struct:
		return c.generateStructType(v)
	case *shape.Map:
		return c.generateMapType(path, v.Value)
	case *shape.Optional:
		if _, ok := v.Inner.(*shape.Optional); ok {
			return nil, motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNestedOptional, path)
		}

		item, err := c.TypeFromShape(path, v.Inner)
		if err != nil {
			return nil, err
		}
		return value.NewTagged(value.TagOptional, value.OptionalItemKey, item), nil
	default:
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %T", typeGenerationErrors.ErrUnsupportedShape, s),
			path,
		)
	}
}

func (c *Context) generateVecType(path string, element shape.Shape) (value.Value, error) {
	item, err := c.TypeFromShape(c.Singular(path), element)
	if err != nil {
		return nil, err
	}

	return value.Array{item}, nil
}

func (c *Context) generateMapType(path string, valueShape shape.Shape) (value.Value, error) {
	values, err := c.TypeFromShape(c.Singular(path), valueShape)
	if err != nil {
		return nil, err
	}

	return value.NewTagged(value.TagMap, value.MapValuesKey, values), nil
}

func (c *Context) generateTupleType(path string, shapes []shape.Shape) (value.Value, error) {
	items := make(value.Array, 0, len(shapes))
	for _, member := range shapes {
		item, err := c.TypeFromShape(path, member)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return value.NewTagged(value.TagTuple, value.TupleItemsKey, items), nil
}

// generateStructType projects each field under its own name, so element names derive from the
// nearest field rather than from the full path. An optional field is unwrapped once and marked by
// a suffix on its key.
func (c *Context) generateStructType(structShape *shape.Struct) (value.Value, error) {
	properties := value.NewObject()
	if structShape.Fields == nil {
		return properties, nil
	}

	for pair := structShape.Fields.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key
		fieldShape, optional := shape.Unwrap(pair.Value)

		key := name
		if optional {
			if _, ok := fieldShape.(*shape.Optional); ok {
				return nil, motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNestedOptional, name)
			}
			key = name + value.OptionalSuffix
		}

		fieldValue, err := c.TypeFromShape(name, fieldShape)
		if err != nil {
			return nil, err
		}

		properties.Set(key, fieldValue)
	}

	return properties, nil
}
