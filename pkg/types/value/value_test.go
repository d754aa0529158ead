package value

import (
	"testing"

	typeGenerationErrors "github.com/vphpersson/json_type_generation/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyPrint(t *testing.T) {
	record := NewObject()
	record.Set("id", Integer)
	record.Set("tags", Array{String})
	record.Set("note?", String)
	record.Set("extra", NewTagged(TagMap, MapValuesKey, Null{}))
	record.Set("raw", Token("Date"))

	output, err := PrettyPrint(0, record)
	require.NoError(t, err)

	expected := `{
  "id": "integer",
  "tags": [
    "string"
  ],
  "note?": "string",
  "extra": {
    "__type__": "map",
    "values": null
  },
  "raw": "Date"
}`
	assert.Equal(t, expected, output)
}

func TestPrettyPrint_Indent(t *testing.T) {
	output, err := PrettyPrint(1, Array{Bool})
	require.NoError(t, err)
	assert.Equal(t, "[\n    \"bool\"\n  ]", output)
}

func TestPrettyPrint_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"null", Null{}, "null"},
		{"primitive", Floating, `"floating"`},
		{"token", Token(`a"b`), `"a\"b"`},
		{"empty array", Array(nil), "[]"},
		{"empty object", NewObject(), "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := PrettyPrint(0, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestPrettyPrint_Nil(t *testing.T) {
	_, err := PrettyPrint(0, nil)
	require.ErrorIs(t, err, typeGenerationErrors.ErrNilValue)
}

func TestObject_PreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	for _, key := range []string{"c", "a", "b"} {
		o.Set(key, Bool)
	}
	assert.Equal(t, []string{"c", "a", "b"}, o.Keys())
}

func TestObject_TypeTag(t *testing.T) {
	tag, ok := NewTagged(TagOptional, OptionalItemKey, Integer).TypeTag()
	require.True(t, ok)
	assert.Equal(t, TagOptional, tag)

	record := NewObject()
	record.Set("a", Integer)
	_, ok = record.TypeTag()
	assert.False(t, ok)

	record.Set(TypeTagKey, Token("tuple"))
	_, ok = record.TypeTag()
	assert.False(t, ok)
}

func TestFieldName(t *testing.T) {
	name, optional := FieldName("note?")
	assert.Equal(t, "note", name)
	assert.True(t, optional)

	name, optional = FieldName("id")
	assert.Equal(t, "id", name)
	assert.False(t, optional)
}

func TestEqual(t *testing.T) {
	a := NewObject()
	a.Set("x", Array{Integer})
	a.Set("y", Null{})

	b := NewObject()
	b.Set("x", Array{Integer})
	b.Set("y", Null{})

	reordered := NewObject()
	reordered.Set("y", Null{})
	reordered.Set("x", Array{Integer})

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, reordered))
	assert.False(t, Equal(String, Token("string")))
	assert.False(t, Equal(Array{Integer}, Array{Integer, Integer}))
}
