package types

import (
	"testing"

	"github.com/invopop/jsonschema"
	typeGenerationErrors "github.com/vphpersson/json_type_generation/pkg/errors"
	typeGenerationContext "github.com/vphpersson/json_type_generation/pkg/types/context"
	"github.com/vphpersson/json_type_generation/pkg/types/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, name string, v value.Value) *Context {
	t.Helper()
	c := &Context{Context: typeGenerationContext.New()}
	require.NoError(t, c.Add(name, v))
	return c
}

func TestSchema_Record(t *testing.T) {
	item := value.NewObject()
	item.Set("sku", value.String)

	root := value.NewObject()
	root.Set("id", value.Integer)
	root.Set("items", value.Array{item})
	root.Set("note?", value.String)
	root.Set("point", value.NewTagged(value.TagTuple, value.TupleItemsKey, value.Array{value.Floating, value.Bool}))
	root.Set("flags", value.NewTagged(value.TagMap, value.MapValuesKey, value.Bool))
	root.Set("maybe", value.NewTagged(value.TagOptional, value.OptionalItemKey, value.Integer))
	root.Set("anything", value.Any)

	schema, err := newContext(t, "order", root).Schema()
	require.NoError(t, err)

	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", schema.Version)
	assert.Equal(t, "Order", schema.Title)
	assert.Equal(t, "#/$defs/Order", schema.Ref)
	require.Contains(t, schema.Definitions, "Item")
	require.Contains(t, schema.Definitions, "Order")

	order := schema.Definitions["Order"]
	assert.Equal(t, "object", order.Type)
	assert.Same(t, jsonschema.FalseSchema, order.AdditionalProperties)
	assert.Equal(t, []string{"id", "items", "point", "flags", "maybe", "anything"}, order.Required)

	var keys []string
	for pair := order.Properties.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"id", "items", "note", "point", "flags", "maybe", "anything"}, keys)

	items, ok := order.Properties.Get("items")
	require.True(t, ok)
	assert.Equal(t, "array", items.Type)
	assert.Equal(t, "#/$defs/Item", items.Items.Ref)

	point, ok := order.Properties.Get("point")
	require.True(t, ok)
	require.Len(t, point.PrefixItems, 2)
	assert.Equal(t, "number", point.PrefixItems[0].Type)
	assert.Equal(t, "boolean", point.PrefixItems[1].Type)
	assert.Same(t, jsonschema.FalseSchema, point.Items)

	flags, ok := order.Properties.Get("flags")
	require.True(t, ok)
	assert.Equal(t, "object", flags.Type)
	assert.Equal(t, "boolean", flags.AdditionalProperties.Type)

	maybe, ok := order.Properties.Get("maybe")
	require.True(t, ok)
	require.Len(t, maybe.AnyOf, 2)
	assert.Equal(t, "integer", maybe.AnyOf[0].Type)
	assert.Equal(t, "null", maybe.AnyOf[1].Type)

	anything, ok := order.Properties.Get("anything")
	require.True(t, ok)
	assert.Empty(t, anything.Type)
}

func TestSchema_AliasRoot(t *testing.T) {
	schema, err := newContext(t, "names", value.Array{value.Token("Name")}).Schema()
	require.NoError(t, err)

	assert.Equal(t, "Names", schema.Title)
	assert.Equal(t, "array", schema.Type)
	assert.Equal(t, "Name", schema.Items.Description)
	assert.Empty(t, schema.Definitions)
}

func TestRenderRoot(t *testing.T) {
	output, err := newContext(t, "flag", value.Bool).RenderRoot()
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`{"$schema": "https://json-schema.org/draft/2020-12/schema", "title": "Flag", "type": "boolean"}`,
		output,
	)
}

func TestSchema_Errors(t *testing.T) {
	_, err := (&Context{Context: typeGenerationContext.New()}).Schema()
	require.ErrorIs(t, err, typeGenerationErrors.ErrNilTypeDeclaration)

	_, err = newContext(t, "root", value.Primitive("decimal")).Schema()
	require.ErrorIs(t, err, typeGenerationErrors.ErrUnsupportedPrimitive)
}
