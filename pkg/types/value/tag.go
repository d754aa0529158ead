package value

import "strings"

// TypeTagKey marks an object as a wrapper rather than a record.
const TypeTagKey = "__type__"

const (
	TagTuple    = "tuple"
	TagMap      = "map"
	TagOptional = "optional"
)

// Keys holding the wrapped values of tagged objects.
const (
	TupleItemsKey   = "items"
	MapValuesKey    = "values"
	OptionalItemKey = "item"
)

// OptionalSuffix is appended to the name of a record field that may be absent.
const OptionalSuffix = "?"

// NewTagged returns an object tagged with tag that holds v under key.
func NewTagged(tag string, key string, v Value) *Object {
	o := NewObject()
	o.Set(TypeTagKey, Primitive(tag))
	o.Set(key, v)
	return o
}

// TypeTag returns the tag of a wrapper object. Records have no tag.
func (o *Object) TypeTag() (string, bool) {
	v, ok := o.Get(TypeTagKey)
	if !ok {
		return "", false
	}
	tag, ok := v.(Primitive)
	if !ok {
		return "", false
	}
	return string(tag), true
}

// FieldName splits a record key into the field name and whether the field is optional.
func FieldName(key string) (string, bool) {
	if name, ok := strings.CutSuffix(key, OptionalSuffix); ok {
		return name, true
	}
	return key, false
}
