package expr

// RenameInt rebuilds e with every variable leaf mapped through f. Used to
// carry an expression from one variable namespace into another (e.g.
// surface names into MarkedVar-tagged symbols) without touching its shape.
func RenameInt[V1, V2 comparable](e IntExpr[V1], f func(V1) V2) IntExpr[V2] {
	switch x := e.(type) {
	case IVar[V1]:
		return IVar[V2]{Var: f(x.Var)}
	case ILit[V1]:
		return ILit[V2]{Value: x.Value}
	case IAdd[V1]:
		return IAdd[V2]{Args: renameIntSlice(x.Args, f)}
	case ISub[V1]:
		return ISub[V2]{Args: renameIntSlice(x.Args, f)}
	case IMul[V1]:
		return IMul[V2]{Args: renameIntSlice(x.Args, f)}
	case IDiv[V1]:
		return IDiv[V2]{L: RenameInt(x.L, f), R: RenameInt(x.R, f)}
	case IIdx[V1]:
		return IIdx[V2]{Arr: RenameArray(x.Arr, f), Index: RenameInt(x.Index, f)}
	default:
		panic("expr: unreachable intExpr kind")
	}
}

func renameIntSlice[V1, V2 comparable](xs []IntExpr[V1], f func(V1) V2) []IntExpr[V2] {
	out := make([]IntExpr[V2], len(xs))
	for i, x := range xs {
		out[i] = RenameInt(x, f)
	}
	return out
}

// RenameBool rebuilds e with every variable leaf mapped through f.
func RenameBool[V1, V2 comparable](e BoolExpr[V1], f func(V1) V2) BoolExpr[V2] {
	switch x := e.(type) {
	case BVar[V1]:
		return BVar[V2]{Var: f(x.Var)}
	case BLit[V1]:
		return BLit[V2]{Value: x.Value}
	case BAnd[V1]:
		return BAnd[V2]{Args: renameBoolSlice(x.Args, f)}
	case BOr[V1]:
		return BOr[V2]{Args: renameBoolSlice(x.Args, f)}
	case BNot[V1]:
		return BNot[V2]{X: RenameBool(x.X, f)}
	case BImplies[V1]:
		return BImplies[V2]{Ante: RenameBool(x.Ante, f), Cons: RenameBool(x.Cons, f)}
	case BEqInt[V1]:
		return BEqInt[V2]{L: RenameInt(x.L, f), R: RenameInt(x.R, f)}
	case BEqBool[V1]:
		return BEqBool[V2]{L: RenameBool(x.L, f), R: RenameBool(x.R, f)}
	case BEqArray[V1]:
		return BEqArray[V2]{L: RenameArray(x.L, f), R: RenameArray(x.R, f)}
	case BGt[V1]:
		return BGt[V2]{L: RenameInt(x.L, f), R: RenameInt(x.R, f)}
	case BGe[V1]:
		return BGe[V2]{L: RenameInt(x.L, f), R: RenameInt(x.R, f)}
	case BLe[V1]:
		return BLe[V2]{L: RenameInt(x.L, f), R: RenameInt(x.R, f)}
	case BLt[V1]:
		return BLt[V2]{L: RenameInt(x.L, f), R: RenameInt(x.R, f)}
	case BIdx[V1]:
		return BIdx[V2]{Arr: RenameArray(x.Arr, f), Index: RenameInt(x.Index, f)}
	default:
		panic("expr: unreachable boolExpr kind")
	}
}

func renameBoolSlice[V1, V2 comparable](xs []BoolExpr[V1], f func(V1) V2) []BoolExpr[V2] {
	out := make([]BoolExpr[V2], len(xs))
	for i, x := range xs {
		out[i] = RenameBool(x, f)
	}
	return out
}

// RenameArray rebuilds e with every variable leaf mapped through f.
func RenameArray[V1, V2 comparable](e ArrayExpr[V1], f func(V1) V2) ArrayExpr[V2] {
	switch x := e.(type) {
	case AVar[V1]:
		return AVar[V2]{Var: f(x.Var)}
	case AUpd[V1]:
		return AUpd[V2]{Arr: RenameArray(x.Arr, f), Index: RenameInt(x.Index, f), Val: RenameExpr(x.Val, f)}
	default:
		panic("expr: unreachable arrayExpr kind")
	}
}

// RenameExpr rebuilds a tagged Expr with every variable leaf mapped through f.
func RenameExpr[V1, V2 comparable](e Expr[V1], f func(V1) V2) Expr[V2] {
	switch x := e.(type) {
	case EInt[V1]:
		return EInt[V2]{X: RenameInt(x.X, f)}
	case EBool[V1]:
		return EBool[V2]{X: RenameBool(x.X, f)}
	case EArray[V1]:
		return EArray[V2]{Elt: x.Elt, Length: x.Length, X: RenameArray(x.X, f)}
	default:
		panic("expr: unreachable expr kind")
	}
}
