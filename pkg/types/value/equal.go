package value

// Equal reports whether two trees are structurally identical, including object key order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Primitive:
		bv, ok := b.(Primitive)
		return ok && av == bv
	case Token:
		bv, ok := b.(Token)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for ap, bp := av.Oldest(), bv.Oldest(); ap != nil; ap, bp = ap.Next(), bp.Next() {
			if ap.Key != bp.Key || !Equal(ap.Value, bp.Value) {
				return false
			}
		}
		return true
	}

	return false
}
