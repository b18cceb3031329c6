package expr

// IntEqual reports structural equality of two IntExpr trees.
func IntEqual[V comparable](a, b IntExpr[V]) bool {
	switch x := a.(type) {
	case IVar[V]:
		y, ok := b.(IVar[V])
		return ok && x.Var == y.Var
	case ILit[V]:
		y, ok := b.(ILit[V])
		return ok && x.Value == y.Value
	case IAdd[V]:
		y, ok := b.(IAdd[V])
		return ok && intSliceEqual(x.Args, y.Args)
	case ISub[V]:
		y, ok := b.(ISub[V])
		return ok && intSliceEqual(x.Args, y.Args)
	case IMul[V]:
		y, ok := b.(IMul[V])
		return ok && intSliceEqual(x.Args, y.Args)
	case IDiv[V]:
		y, ok := b.(IDiv[V])
		return ok && IntEqual(x.L, y.L) && IntEqual(x.R, y.R)
	case IIdx[V]:
		y, ok := b.(IIdx[V])
		return ok && ArrayEqual(x.Arr, y.Arr) && IntEqual(x.Index, y.Index)
	default:
		return false
	}
}

func intSliceEqual[V comparable](a, b []IntExpr[V]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !IntEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// BoolEqual reports structural equality of two BoolExpr trees.
func BoolEqual[V comparable](a, b BoolExpr[V]) bool {
	switch x := a.(type) {
	case BVar[V]:
		y, ok := b.(BVar[V])
		return ok && x.Var == y.Var
	case BLit[V]:
		y, ok := b.(BLit[V])
		return ok && x.Value == y.Value
	case BAnd[V]:
		y, ok := b.(BAnd[V])
		return ok && boolSliceEqual(x.Args, y.Args)
	case BOr[V]:
		y, ok := b.(BOr[V])
		return ok && boolSliceEqual(x.Args, y.Args)
	case BNot[V]:
		y, ok := b.(BNot[V])
		return ok && BoolEqual(x.X, y.X)
	case BImplies[V]:
		y, ok := b.(BImplies[V])
		return ok && BoolEqual(x.Ante, y.Ante) && BoolEqual(x.Cons, y.Cons)
	case BEqInt[V]:
		y, ok := b.(BEqInt[V])
		return ok && IntEqual(x.L, y.L) && IntEqual(x.R, y.R)
	case BEqBool[V]:
		y, ok := b.(BEqBool[V])
		return ok && BoolEqual(x.L, y.L) && BoolEqual(x.R, y.R)
	case BEqArray[V]:
		y, ok := b.(BEqArray[V])
		return ok && ArrayEqual(x.L, y.L) && ArrayEqual(x.R, y.R)
	case BGt[V]:
		y, ok := b.(BGt[V])
		return ok && IntEqual(x.L, y.L) && IntEqual(x.R, y.R)
	case BGe[V]:
		y, ok := b.(BGe[V])
		return ok && IntEqual(x.L, y.L) && IntEqual(x.R, y.R)
	case BLe[V]:
		y, ok := b.(BLe[V])
		return ok && IntEqual(x.L, y.L) && IntEqual(x.R, y.R)
	case BLt[V]:
		y, ok := b.(BLt[V])
		return ok && IntEqual(x.L, y.L) && IntEqual(x.R, y.R)
	case BIdx[V]:
		y, ok := b.(BIdx[V])
		return ok && ArrayEqual(x.Arr, y.Arr) && IntEqual(x.Index, y.Index)
	default:
		return false
	}
}

func boolSliceEqual[V comparable](a, b []BoolExpr[V]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !BoolEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ArrayEqual reports structural equality of two ArrayExpr trees.
func ArrayEqual[V comparable](a, b ArrayExpr[V]) bool {
	switch x := a.(type) {
	case AVar[V]:
		y, ok := b.(AVar[V])
		return ok && x.Var == y.Var
	case AUpd[V]:
		y, ok := b.(AUpd[V])
		return ok && ArrayEqual(x.Arr, y.Arr) && IntEqual(x.Index, y.Index) && ExprEqual(x.Val, y.Val)
	default:
		return false
	}
}

// ExprEqual reports structural equality of two tagged Expr values.
func ExprEqual[V comparable](a, b Expr[V]) bool {
	switch x := a.(type) {
	case EInt[V]:
		y, ok := b.(EInt[V])
		return ok && IntEqual(x.X, y.X)
	case EBool[V]:
		y, ok := b.(EBool[V])
		return ok && BoolEqual(x.X, y.X)
	case EArray[V]:
		y, ok := b.(EArray[V])
		return ok && x.Elt == y.Elt && x.Length == y.Length && ArrayEqual(x.X, y.X)
	default:
		return false
	}
}

// trivEquivBool is the "trivial-equivalence" relation ≡ used by the
// simplifier to dedup operands: a=b ≡ b=a, and ¬a ≡ ¬b iff a ≡ b.
// Structural equality is the base case.
func trivEquivBool[V comparable](a, b BoolExpr[V]) bool {
	if BoolEqual(a, b) {
		return true
	}
	if eqa, ok := a.(BEqInt[V]); ok {
		if eqb, ok := b.(BEqInt[V]); ok {
			return IntEqual(eqa.L, eqb.R) && IntEqual(eqa.R, eqb.L)
		}
	}
	if eqa, ok := a.(BEqBool[V]); ok {
		if eqb, ok := b.(BEqBool[V]); ok {
			return BoolEqual(eqa.L, eqb.R) && BoolEqual(eqa.R, eqb.L)
		}
	}
	if eqa, ok := a.(BEqArray[V]); ok {
		if eqb, ok := b.(BEqArray[V]); ok {
			return ArrayEqual(eqa.L, eqb.R) && ArrayEqual(eqa.R, eqb.L)
		}
	}
	if na, ok := a.(BNot[V]); ok {
		if nb, ok := b.(BNot[V]); ok {
			return trivEquivBool(na.X, nb.X)
		}
	}
	return false
}
