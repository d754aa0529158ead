package shape

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Fold merges shapes into one representative shape. It returns Bottom for no shapes and Any when
// the shapes cannot be reconciled.
func Fold(shapes []Shape) Shape {
	var folded Shape = Bottom
	for _, s := range shapes {
		folded = Common(folded, s)
	}
	return folded
}

// Common returns the most specific shape that describes both a and b.
func Common(a, b Shape) Shape {
	if Equal(a, b) {
		return a
	}

	switch {
	case a == Bottom:
		return b
	case b == Bottom:
		return a
	case a == Null:
		return IntoOptional(b)
	case b == Null:
		return IntoOptional(a)
	}

	if inner, ok := Unwrap(a); ok {
		bInner, _ := Unwrap(b)
		return IntoOptional(Common(inner, bInner))
	}
	if inner, ok := Unwrap(b); ok {
		return IntoOptional(Common(a, inner))
	}

	switch av := a.(type) {
	case Primitive:
		if bv, ok := b.(Primitive); ok && isNumber(av) && isNumber(bv) {
			return Floating
		}
	case *Tuple:
		switch bv := b.(type) {
		case *Tuple:
			if len(av.Shapes) == len(bv.Shapes) {
				shapes := make([]Shape, len(av.Shapes))
				for i := range av.Shapes {
					shapes[i] = Common(av.Shapes[i], bv.Shapes[i])
				}
				return &Tuple{Shapes: shapes, Arity: len(shapes)}
			}
			return &Vec{Element: Common(Fold(av.Shapes), Fold(bv.Shapes))}
		case *Vec:
			return &Vec{Element: Common(Fold(av.Shapes), bv.Element)}
		}
	case *Vec:
		switch bv := b.(type) {
		case *Vec:
			return &Vec{Element: Common(av.Element, bv.Element)}
		case *Tuple:
			return &Vec{Element: Common(av.Element, Fold(bv.Shapes))}
		}
	case *Struct:
		switch bv := b.(type) {
		case *Struct:
			return commonStruct(av, bv)
		case *Map:
			return &Map{Value: Common(foldFields(av), bv.Value)}
		}
	case *Map:
		switch bv := b.(type) {
		case *Map:
			return &Map{Value: Common(av.Value, bv.Value)}
		case *Struct:
			return &Map{Value: Common(av.Value, foldFields(bv))}
		}
	}

	return Any
}

func isNumber(p Primitive) bool {
	return p == Integer || p == Floating
}

func foldFields(s *Struct) Shape {
	var folded Shape = Bottom
	for pair := s.fieldMap().Oldest(); pair != nil; pair = pair.Next() {
		folded = Common(folded, pair.Value)
	}
	return folded
}

// commonStruct keeps the field order of a and appends the fields only b has. A field missing on
// either side becomes optional.
func commonStruct(a, b *Struct) *Struct {
	fields := orderedmap.New[string, Shape]()
	aFields, bFields := a.fieldMap(), b.fieldMap()

	for pair := aFields.Oldest(); pair != nil; pair = pair.Next() {
		if other, ok := bFields.Get(pair.Key); ok {
			fields.Set(pair.Key, Common(pair.Value, other))
		} else {
			fields.Set(pair.Key, IntoOptional(pair.Value))
		}
	}

	for pair := bFields.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := aFields.Get(pair.Key); !ok {
			fields.Set(pair.Key, IntoOptional(pair.Value))
		}
	}

	return &Struct{Fields: fields}
}
