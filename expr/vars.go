package expr

// CollectIntVars appends, in first-occurrence order, every variable
// referenced by an IntExpr to seen/out and returns the updated slices.
func CollectIntVars[V comparable](e IntExpr[V], seen map[V]bool, out []V) []V {
	switch x := e.(type) {
	case IVar[V]:
		return addVar(x.Var, seen, out)
	case ILit[V]:
		return out
	case IAdd[V]:
		return collectIntSlice(x.Args, seen, out)
	case ISub[V]:
		return collectIntSlice(x.Args, seen, out)
	case IMul[V]:
		return collectIntSlice(x.Args, seen, out)
	case IDiv[V]:
		out = CollectIntVars(x.L, seen, out)
		return CollectIntVars(x.R, seen, out)
	case IIdx[V]:
		out = CollectArrayVars(x.Arr, seen, out)
		return CollectIntVars(x.Index, seen, out)
	default:
		return out
	}
}

func collectIntSlice[V comparable](xs []IntExpr[V], seen map[V]bool, out []V) []V {
	for _, x := range xs {
		out = CollectIntVars(x, seen, out)
	}
	return out
}

// CollectBoolVars appends, in first-occurrence order, every variable
// referenced by a BoolExpr to seen/out and returns the updated slices.
func CollectBoolVars[V comparable](e BoolExpr[V], seen map[V]bool, out []V) []V {
	switch x := e.(type) {
	case BVar[V]:
		return addVar(x.Var, seen, out)
	case BLit[V]:
		return out
	case BAnd[V]:
		return collectBoolSlice(x.Args, seen, out)
	case BOr[V]:
		return collectBoolSlice(x.Args, seen, out)
	case BNot[V]:
		return CollectBoolVars(x.X, seen, out)
	case BImplies[V]:
		out = CollectBoolVars(x.Ante, seen, out)
		return CollectBoolVars(x.Cons, seen, out)
	case BEqInt[V]:
		out = CollectIntVars(x.L, seen, out)
		return CollectIntVars(x.R, seen, out)
	case BEqBool[V]:
		out = CollectBoolVars(x.L, seen, out)
		return CollectBoolVars(x.R, seen, out)
	case BEqArray[V]:
		out = CollectArrayVars(x.L, seen, out)
		return CollectArrayVars(x.R, seen, out)
	case BGt[V]:
		out = CollectIntVars(x.L, seen, out)
		return CollectIntVars(x.R, seen, out)
	case BGe[V]:
		out = CollectIntVars(x.L, seen, out)
		return CollectIntVars(x.R, seen, out)
	case BLe[V]:
		out = CollectIntVars(x.L, seen, out)
		return CollectIntVars(x.R, seen, out)
	case BLt[V]:
		out = CollectIntVars(x.L, seen, out)
		return CollectIntVars(x.R, seen, out)
	case BIdx[V]:
		out = CollectArrayVars(x.Arr, seen, out)
		return CollectIntVars(x.Index, seen, out)
	default:
		return out
	}
}

func collectBoolSlice[V comparable](xs []BoolExpr[V], seen map[V]bool, out []V) []V {
	for _, x := range xs {
		out = CollectBoolVars(x, seen, out)
	}
	return out
}

// CollectArrayVars appends, in first-occurrence order, every variable
// referenced by an ArrayExpr to seen/out and returns the updated slices.
func CollectArrayVars[V comparable](e ArrayExpr[V], seen map[V]bool, out []V) []V {
	switch x := e.(type) {
	case AVar[V]:
		return addVar(x.Var, seen, out)
	case AUpd[V]:
		out = CollectArrayVars(x.Arr, seen, out)
		out = CollectIntVars(x.Index, seen, out)
		return CollectExprVars(x.Val, seen, out)
	default:
		return out
	}
}

// CollectExprVars appends, in first-occurrence order, every variable
// referenced by a tagged Expr to seen/out and returns the updated slices.
func CollectExprVars[V comparable](e Expr[V], seen map[V]bool, out []V) []V {
	switch x := e.(type) {
	case EInt[V]:
		return CollectIntVars(x.X, seen, out)
	case EBool[V]:
		return CollectBoolVars(x.X, seen, out)
	case EArray[V]:
		return CollectArrayVars(x.X, seen, out)
	default:
		return out
	}
}

// Vars is a convenience wrapper returning the deduplicated,
// first-occurrence-ordered variable list of a BoolExpr.
func Vars[V comparable](e BoolExpr[V]) []V {
	return CollectBoolVars(e, make(map[V]bool), nil)
}

// VarExpr builds a tagged Expr referencing variable v at type t — the
// generic "identifier expression" constructor used whenever a fresh view
// or synthesized assignment needs to refer back to a plain variable.
func VarExpr[V comparable](v V, t Type) Expr[V] {
	switch t.Kind {
	case KindBool:
		return EBool[V]{X: BVar[V]{Var: v}}
	case KindArray:
		return EArray[V]{Elt: t.Elt, Length: t.Length, X: AVar[V]{Var: v}}
	default:
		return EInt[V]{X: IVar[V]{Var: v}}
	}
}

func addVar[V comparable](v V, seen map[V]bool, out []V) []V {
	if seen[v] {
		return out
	}
	seen[v] = true
	return append(out, v)
}
