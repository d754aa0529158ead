package value

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value is a node of the generic type tree handed from the projector to a renderer.
type Value interface {
	json.Marshaler
	isValue()
}

type Null struct{}

func (Null) isValue() {}

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Primitive is the name of a primitive type chosen by the projector.
type Primitive string

const (
	Any      = Primitive("any")
	Bottom   = Primitive("bottom")
	Bool     = Primitive("bool")
	String   = Primitive("string")
	Integer  = Primitive("integer")
	Floating = Primitive("floating")
)

func (Primitive) isValue() {}

func (p Primitive) MarshalJSON() ([]byte, error) { return json.Marshal(string(p)) }

// Token is a string carried through verbatim, such as an opaque type token.
type Token string

func (Token) isValue() {}

func (t Token) MarshalJSON() ([]byte, error) { return json.Marshal(string(t)) }

type Array []Value

func (Array) isValue() {}

func (a Array) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Value(a))
}

// Object is a name to value mapping that preserves insertion order.
type Object struct {
	entries *orderedmap.OrderedMap[string, Value]
}

func NewObject() *Object {
	return &Object{entries: orderedmap.New[string, Value]()}
}

func (*Object) isValue() {}

func (o *Object) Set(key string, v Value) {
	o.entries.Set(key, v)
}

func (o *Object) Get(key string) (Value, bool) {
	return o.entries.Get(key)
}

func (o *Object) Len() int {
	return o.entries.Len()
}

func (o *Object) Oldest() *orderedmap.Pair[string, Value] {
	return o.entries.Oldest()
}

func (o *Object) Keys() []string {
	keys := make([]string, 0, o.entries.Len())
	for pair := o.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	return o.entries.MarshalJSON()
}
