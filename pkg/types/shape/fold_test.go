package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	require.Len(t, Kinds, len(kindNames))
	for i, kind := range Kinds {
		assert.Equal(t, Kind(i), kind)
		assert.NotEqual(t, "unknown", kind.String())
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		name     string
		shapes   []Shape
		expected Shape
	}{
		{"empty", nil, Bottom},
		{"single", []Shape{Integer}, Integer},
		{"identical", []Shape{String, String, String}, String},
		{"numbers", []Shape{Integer, Floating}, Floating},
		{"heterogeneous", []Shape{Integer, String}, Any},
		{"all any", []Shape{Any, Any}, Any},
		{"null first", []Shape{Null, Bool}, NewOptional(Bool)},
		{"null last", []Shape{Bool, Null}, NewOptional(Bool)},
		{"optional absorbs null", []Shape{NewOptional(Integer), Null, Integer}, NewOptional(Integer)},
		{"optional numbers", []Shape{NewOptional(Integer), Floating}, NewOptional(Floating)},
		{"bottom identity", []Shape{Bottom, Integer, Bottom}, Integer},
		{"null with any", []Shape{Null, Any}, Any},
		{"same opaque", []Shape{Opaque("Date"), Opaque("Date")}, Opaque("Date")},
		{"different opaque", []Shape{Opaque("Date"), Opaque("Time")}, Any},
		{"vecs", []Shape{NewVec(Integer), NewVec(Floating)}, NewVec(Floating)},
		{"maps", []Shape{NewMap(Integer), NewMap(Null)}, NewMap(NewOptional(Integer))},
		{
			"tuples of same length",
			[]Shape{NewTuple(Integer, String), NewTuple(Floating, String)},
			NewTuple(Floating, String),
		},
		{
			"tuples of different length",
			[]Shape{NewTuple(Integer), NewTuple(Integer, Integer)},
			NewVec(Integer),
		},
		{"tuple and vec", []Shape{NewTuple(Integer, Integer), NewVec(Floating)}, NewVec(Floating)},
		{
			"struct and map",
			[]Shape{NewStruct(Field{"a", Integer}), NewMap(Floating)},
			NewMap(Floating),
		},
		{"struct and vec", []Shape{NewStruct(), NewVec(Integer)}, Any},
		{
			"zero struct first",
			[]Shape{&Struct{}, NewStruct(Field{"a", Integer})},
			NewStruct(Field{"a", NewOptional(Integer)}),
		},
		{
			"zero struct last",
			[]Shape{NewStruct(Field{"a", Integer}), &Struct{}},
			NewStruct(Field{"a", NewOptional(Integer)}),
		},
		{"zero structs", []Shape{&Struct{}, &Struct{}}, NewStruct()},
		{"zero struct and map", []Shape{&Struct{}, NewMap(Integer)}, NewMap(Integer)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folded := Fold(tt.shapes)
			assert.True(t, Equal(tt.expected, folded), "expected %#v, got %#v", tt.expected, folded)
		})
	}
}

func TestFold_Structs(t *testing.T) {
	a := NewStruct(Field{"id", Integer}, Field{"name", String})
	b := NewStruct(Field{"id", Integer}, Field{"email", String}, Field{"name", Null})

	folded := Fold([]Shape{a, b})

	expected := NewStruct(
		Field{"id", Integer},
		Field{"name", NewOptional(String)},
		Field{"email", NewOptional(String)},
	)
	assert.True(t, Equal(expected, folded))
}

func TestFold_IsOrderStableForIdenticalInputs(t *testing.T) {
	shapes := []Shape{NewVec(Integer), NewTuple(String), Null}
	assert.True(t, Equal(Fold(shapes), Fold(shapes)))
}

func TestIntoOptional_NeverNests(t *testing.T) {
	optional := NewOptional(Integer)
	assert.Same(t, optional, IntoOptional(optional))
	assert.Equal(t, Null, IntoOptional(Null))
	assert.Equal(t, Any, IntoOptional(Any))
	assert.Equal(t, Bottom, IntoOptional(Bottom))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(Integer, nil))
	assert.False(t, Equal(Integer, Opaque("integer")))
	assert.False(t, Equal(
		NewStruct(Field{"a", Integer}, Field{"b", Integer}),
		NewStruct(Field{"b", Integer}, Field{"a", Integer}),
	))
	assert.False(t, Equal(NewTuple(Integer), &Tuple{Shapes: []Shape{Integer}, Arity: 2}))
	assert.True(t, Equal(&Struct{}, NewStruct()))
	assert.True(t, Equal(NewStruct(), &Struct{}))
	assert.False(t, Equal(&Struct{}, NewStruct(Field{"a", Integer})))
}
