package shape

// Equal reports whether two shapes are structurally identical. Struct fields are compared in order.
func Equal(a, b Shape) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case Primitive:
		bv, ok := b.(Primitive)
		return ok && av == bv
	case Opaque:
		bv, ok := b.(Opaque)
		return ok && av == bv
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || av.Arity != bv.Arity || len(av.Shapes) != len(bv.Shapes) {
			return false
		}
		for i := range av.Shapes {
			if !Equal(av.Shapes[i], bv.Shapes[i]) {
				return false
			}
		}
		return true
	case *Vec:
		bv, ok := b.(*Vec)
		return ok && Equal(av.Element, bv.Element)
	case *Map:
		bv, ok := b.(*Map)
		return ok && Equal(av.Value, bv.Value)
	case *Optional:
		bv, ok := b.(*Optional)
		return ok && Equal(av.Inner, bv.Inner)
	case *Struct:
		bv, ok := b.(*Struct)
		if !ok {
			return false
		}
		aFields, bFields := av.fieldMap(), bv.fieldMap()
		if aFields.Len() != bFields.Len() {
			return false
		}
		for ap, bp := aFields.Oldest(), bFields.Oldest(); ap != nil; ap, bp = ap.Next(), bp.Next() {
			if ap.Key != bp.Key || !Equal(ap.Value, bp.Value) {
				return false
			}
		}
		return true
	}

	return false
}
