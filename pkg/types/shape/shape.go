package shape

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type Kind int

const (
	KindNull Kind = iota
	KindAny
	KindBottom
	KindBool
	KindString
	KindInteger
	KindFloating
	KindTuple
	KindVec
	KindStruct
	KindMap
	KindOpaque
	KindOptional
)

// Kinds lists every Kind in declaration order. A new variant must be appended here.
var Kinds = []Kind{
	KindNull,
	KindAny,
	KindBottom,
	KindBool,
	KindString,
	KindInteger,
	KindFloating,
	KindTuple,
	KindVec,
	KindStruct,
	KindMap,
	KindOpaque,
	KindOptional,
}

var kindNames = map[Kind]string{
	KindNull:     "null",
	KindAny:      "any",
	KindBottom:   "bottom",
	KindBool:     "bool",
	KindString:   "string",
	KindInteger:  "integer",
	KindFloating: "floating",
	KindTuple:    "tuple",
	KindVec:      "vec",
	KindStruct:   "struct",
	KindMap:      "map",
	KindOpaque:   "opaque",
	KindOptional: "optional",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Shape describes the structure observed across a set of samples. The set of implementations is
// closed; only this package can add variants.
type Shape interface {
	Kind() Kind
	isShape()
}

// Primitive is a leaf shape without structure.
type Primitive Kind

const (
	Null     = Primitive(KindNull)
	Any      = Primitive(KindAny)
	Bottom   = Primitive(KindBottom)
	Bool     = Primitive(KindBool)
	String   = Primitive(KindString)
	Integer  = Primitive(KindInteger)
	Floating = Primitive(KindFloating)
)

func (p Primitive) Kind() Kind { return Kind(p) }
func (Primitive) isShape() {}

// Tuple is a heterogeneous sequence observed at a fixed length.
type Tuple struct {
	Shapes []Shape
	Arity  int
}

func (*Tuple) Kind() Kind { return KindTuple }
func (*Tuple) isShape() {}

// Vec is a homogeneous sequence.
type Vec struct {
	Element Shape
}

func (*Vec) Kind() Kind { return KindVec }
func (*Vec) isShape() {}

// Struct is a record whose field order is the order in which fields were first observed.
type Struct struct {
	Fields *orderedmap.OrderedMap[string, Shape]
}

func (*Struct) Kind() Kind { return KindStruct }
func (*Struct) isShape() {}

// fieldMap returns the fields of s. A zero-value Struct has no fields.
func (s *Struct) fieldMap() *orderedmap.OrderedMap[string, Shape] {
	if s.Fields == nil {
		return orderedmap.New[string, Shape]()
	}
	return s.Fields
}

// Map is a key/value collection with unconstrained keys.
type Map struct {
	Value Shape
}

func (*Map) Kind() Kind { return KindMap }
func (*Map) isShape() {}

// Opaque is a pre-rendered type token that is passed through verbatim.
type Opaque string

func (Opaque) Kind() Kind { return KindOpaque }
func (Opaque) isShape() {}

// Optional marks the inner shape as possibly absent.
type Optional struct {
	Inner Shape
}

func (*Optional) Kind() Kind { return KindOptional }
func (*Optional) isShape() {}

type Field struct {
	Name  string
	Shape Shape
}

func NewStruct(fields ...Field) *Struct {
	m := orderedmap.New[string, Shape]()
	for _, field := range fields {
		m.Set(field.Name, field.Shape)
	}
	return &Struct{Fields: m}
}

func NewTuple(shapes ...Shape) *Tuple {
	return &Tuple{Shapes: shapes, Arity: len(shapes)}
}

func NewVec(element Shape) *Vec {
	return &Vec{Element: element}
}

func NewMap(value Shape) *Map {
	return &Map{Value: value}
}

func NewOptional(inner Shape) *Optional {
	return &Optional{Inner: inner}
}

// IntoOptional marks the shape as possibly absent. Shapes that already admit absence are returned
// unchanged, so the result never nests.
func IntoOptional(s Shape) Shape {
	switch v := s.(type) {
	case Primitive:
		if v == Null || v == Any || v == Bottom {
			return v
		}
	case *Optional:
		return v
	}
	return &Optional{Inner: s}
}

// Unwrap strips one layer of Optional and reports whether it did.
func Unwrap(s Shape) (Shape, bool) {
	if optional, ok := s.(*Optional); ok {
		return optional.Inner, true
	}
	return s, false
}
