package jsonschema

import (
	"testing"

	"github.com/vphpersson/json_type_generation/pkg/types/shape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	s := shape.NewStruct(
		shape.Field{Name: "id", Shape: shape.Integer},
		shape.Field{Name: "tags", Shape: shape.NewVec(shape.String)},
		shape.Field{Name: "note", Shape: shape.NewOptional(shape.String)},
	)

	output, err := Convert("root", s, nil)
	require.NoError(t, err)

	expected := `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$ref": "#/$defs/Root",
		"title": "Root",
		"$defs": {
			"Root": {
				"type": "object",
				"properties": {
					"id": {"type": "integer"},
					"tags": {"type": "array", "items": {"type": "string"}},
					"note": {"type": "string"}
				},
				"required": ["id", "tags"],
				"additionalProperties": false
			}
		}
	}`
	assert.JSONEq(t, expected, output)
}
