package markedvar

import "github.com/gogpu/starling/expr"

// Sym is either a regular variable or an opaque symbolic function applied
// to expressions over V. Symbolic terms represent predicates Starling
// cannot interpret but can still substitute through (spec §3, §9
// "Symbolic variables"). Sym satisfies Go's comparable constraint (Symbolic
// carries a slice, so runtime `==` on it panics), so none of the generic
// var-collection helpers in package expr are ever instantiated at Sym —
// traversal over symbol arguments is done explicitly, by SymEqual, not by
// map-keying V. Package subst treats a Sym as an opaque variable leaf and
// does not descend into Symbolic arguments.
type Sym[V comparable] interface {
	sym()
}

// Regular wraps a plain variable reference.
type Regular[V comparable] struct{ V V }

func (Regular[V]) sym() {}

// Symbolic is an opaque named function over argument expressions.
type Symbolic[V comparable] struct {
	Name string
	Args []expr.Expr[V]
}

func (Symbolic[V]) sym() {}

// SymEqual reports structural equality of two Sym values, given an
// equality function for the underlying variable type.
func SymEqual[V comparable](a, b Sym[V], veq func(V, V) bool) bool {
	switch x := a.(type) {
	case Regular[V]:
		y, ok := b.(Regular[V])
		return ok && veq(x.V, y.V)
	case Symbolic[V]:
		y, ok := b.(Symbolic[V])
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !expr.ExprEqual(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
