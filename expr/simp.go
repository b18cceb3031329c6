package expr

// SimplifyBool rewrites a Boolean expression to an equivalent, no-larger one.
// simp is total — it never fails — and every rule it applies is sound; the
// rule set is not claimed to be complete (see spec §4.1).
func SimplifyBool[V comparable](e BoolExpr[V]) BoolExpr[V] {
	cur := simplifyBoolChildren(e)
	for {
		next := rewriteBool(cur)
		if BoolEqual(next, cur) {
			return next
		}
		cur = next
	}
}

// SimplifyInt simplifies an integer expression's subexpressions; the
// integer grammar itself carries no rewrite rules beyond recursing into
// any embedded array index expressions.
func SimplifyInt[V comparable](e IntExpr[V]) IntExpr[V] {
	switch x := e.(type) {
	case IVar[V], ILit[V]:
		return x
	case IAdd[V]:
		return IAdd[V]{Args: simplifyIntSlice(x.Args)}
	case ISub[V]:
		return ISub[V]{Args: simplifyIntSlice(x.Args)}
	case IMul[V]:
		return IMul[V]{Args: simplifyIntSlice(x.Args)}
	case IDiv[V]:
		return IDiv[V]{L: SimplifyInt(x.L), R: SimplifyInt(x.R)}
	case IIdx[V]:
		return IIdx[V]{Arr: SimplifyArray(x.Arr), Index: SimplifyInt(x.Index)}
	default:
		return e
	}
}

// SimplifyArray simplifies an array expression's subexpressions.
func SimplifyArray[V comparable](e ArrayExpr[V]) ArrayExpr[V] {
	switch x := e.(type) {
	case AVar[V]:
		return x
	case AUpd[V]:
		return AUpd[V]{Arr: SimplifyArray(x.Arr), Index: SimplifyInt(x.Index), Val: SimplifyExpr(x.Val)}
	default:
		return e
	}
}

// SimplifyExpr simplifies a tagged expression by dispatching to the
// grammar-specific simplifier.
func SimplifyExpr[V comparable](e Expr[V]) Expr[V] {
	switch x := e.(type) {
	case EInt[V]:
		return EInt[V]{X: SimplifyInt(x.X)}
	case EBool[V]:
		return EBool[V]{X: SimplifyBool(x.X)}
	case EArray[V]:
		return EArray[V]{Elt: x.Elt, Length: x.Length, X: SimplifyArray(x.X)}
	default:
		return e
	}
}

func simplifyIntSlice[V comparable](xs []IntExpr[V]) []IntExpr[V] {
	out := make([]IntExpr[V], len(xs))
	for i, x := range xs {
		out[i] = SimplifyInt(x)
	}
	return out
}

// simplifyBoolChildren simplifies a node's immediate children without
// applying this node's own rewrite rule; rewriteBool is then applied by
// the caller's fixpoint loop.
func simplifyBoolChildren[V comparable](e BoolExpr[V]) BoolExpr[V] {
	switch x := e.(type) {
	case BVar[V], BLit[V]:
		return x
	case BAnd[V]:
		return BAnd[V]{Args: simplifyBoolSlice(x.Args)}
	case BOr[V]:
		return BOr[V]{Args: simplifyBoolSlice(x.Args)}
	case BNot[V]:
		return BNot[V]{X: SimplifyBool(x.X)}
	case BImplies[V]:
		return BImplies[V]{Ante: SimplifyBool(x.Ante), Cons: SimplifyBool(x.Cons)}
	case BEqInt[V]:
		return BEqInt[V]{L: SimplifyInt(x.L), R: SimplifyInt(x.R)}
	case BEqBool[V]:
		return BEqBool[V]{L: SimplifyBool(x.L), R: SimplifyBool(x.R)}
	case BEqArray[V]:
		return BEqArray[V]{L: SimplifyArray(x.L), R: SimplifyArray(x.R)}
	case BGt[V]:
		return BGt[V]{L: SimplifyInt(x.L), R: SimplifyInt(x.R)}
	case BGe[V]:
		return BGe[V]{L: SimplifyInt(x.L), R: SimplifyInt(x.R)}
	case BLe[V]:
		return BLe[V]{L: SimplifyInt(x.L), R: SimplifyInt(x.R)}
	case BLt[V]:
		return BLt[V]{L: SimplifyInt(x.L), R: SimplifyInt(x.R)}
	case BIdx[V]:
		return BIdx[V]{Arr: SimplifyArray(x.Arr), Index: SimplifyInt(x.Index)}
	default:
		return e
	}
}

func simplifyBoolSlice[V comparable](xs []BoolExpr[V]) []BoolExpr[V] {
	out := make([]BoolExpr[V], len(xs))
	for i, x := range xs {
		out[i] = SimplifyBool(x)
	}
	return out
}

// foldResult carries a fold-fast outcome: either a short-circuit value or
// the (possibly flattened, deduped) list of surviving operands.
type foldResult[V comparable] struct {
	shortCircuit bool
	value        bool
	operands     []BoolExpr[V]
}

// foldFast walks an n-ary And/Or's operands, flattening nested instances
// of the same connective, dropping the absorbing/identity literal, and
// stopping early the moment a short-circuiting literal is seen.
func foldFast[V comparable](args []BoolExpr[V], isOr bool) foldResult[V] {
	absorb, identity := true, false // Or: absorbed by true, identity false
	if !isOr {
		absorb, identity = false, true // And: absorbed by false, identity true
	}

	var out []BoolExpr[V]
	for _, a := range args {
		if isOr {
			if nested, ok := a.(BOr[V]); ok {
				sub := foldFast(nested.Args, true)
				if sub.shortCircuit {
					if sub.value == absorb {
						return foldResult[V]{shortCircuit: true, value: absorb}
					}
					continue
				}
				out = appendDedup(out, sub.operands...)
				continue
			}
		} else {
			if nested, ok := a.(BAnd[V]); ok {
				sub := foldFast(nested.Args, false)
				if sub.shortCircuit {
					if sub.value == absorb {
						return foldResult[V]{shortCircuit: true, value: absorb}
					}
					continue
				}
				out = appendDedup(out, sub.operands...)
				continue
			}
		}

		if lit, ok := a.(BLit[V]); ok {
			if lit.Value == absorb {
				return foldResult[V]{shortCircuit: true, value: absorb}
			}
			if lit.Value == identity {
				continue
			}
		}
		out = appendDedup(out, a)
	}

	switch len(out) {
	case 0:
		return foldResult[V]{shortCircuit: true, value: identity}
	default:
		return foldResult[V]{operands: out}
	}
}

// appendDedup appends xs to out, skipping any operand trivially equivalent
// (rule 6, the ≡ relation) to one already present.
func appendDedup[V comparable](out []BoolExpr[V], xs ...BoolExpr[V]) []BoolExpr[V] {
	for _, x := range xs {
		dup := false
		for _, y := range out {
			if trivEquivBool(x, y) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, x)
		}
	}
	return out
}

// rewriteBool applies one pass of the simp rewrite rules at the root of e,
// assuming e's children are already simplified.
func rewriteBool[V comparable](e BoolExpr[V]) BoolExpr[V] {
	switch x := e.(type) {
	case BNot[V]:
		return rewriteNot(x.X)

	case BAnd[V]:
		r := foldFast(x.Args, false)
		if r.shortCircuit {
			return BLit[V]{Value: r.value}
		}
		if len(r.operands) == 1 {
			return r.operands[0]
		}
		return BAnd[V]{Args: r.operands}

	case BOr[V]:
		r := foldFast(x.Args, true)
		if r.shortCircuit {
			return BLit[V]{Value: r.value}
		}
		if len(r.operands) == 1 {
			return r.operands[0]
		}
		return BOr[V]{Args: r.operands}

	case BImplies[V]:
		if lit, ok := x.Ante.(BLit[V]); ok && !lit.Value {
			return BLit[V]{Value: true} // F⇒_ → T
		}
		if lit, ok := x.Cons.(BLit[V]); ok && lit.Value {
			return BLit[V]{Value: true} // _⇒T → T
		}
		if lit, ok := x.Ante.(BLit[V]); ok && lit.Value {
			return x.Cons // T⇒y → y
		}
		if lit, ok := x.Cons.(BLit[V]); ok && !lit.Value {
			return BNot[V]{X: x.Ante} // x⇒F → ¬x
		}
		return x

	case BEqBool[V]:
		ll, lok := x.L.(BLit[V])
		rl, rok := x.R.(BLit[V])
		if lok && rok {
			return BLit[V]{Value: ll.Value == rl.Value}
		}
		if lok {
			if ll.Value {
				return x.R // T=y → y
			}
			return BNot[V]{X: x.R} // F=y → ¬y
		}
		if rok {
			if rl.Value {
				return x.L // x=T → x
			}
			return BNot[V]{X: x.L} // x=F → ¬x
		}
		if BoolEqual(x.L, x.R) {
			return BLit[V]{Value: true}
		}
		return x

	case BEqInt[V]:
		if IntEqual(x.L, x.R) {
			return BLit[V]{Value: true}
		}
		return x

	case BEqArray[V]:
		if ArrayEqual(x.L, x.R) {
			return BLit[V]{Value: true}
		}
		return x

	case BGe[V]:
		if IntEqual(x.L, x.R) {
			return BLit[V]{Value: true}
		}
		return x

	case BLe[V]:
		if IntEqual(x.L, x.R) {
			return BLit[V]{Value: true}
		}
		return x

	default:
		return e
	}
}

// rewriteNot implements rule 1: push-and-eliminate Not.
func rewriteNot[V comparable](inner BoolExpr[V]) BoolExpr[V] {
	switch x := inner.(type) {
	case BLit[V]:
		return BLit[V]{Value: !x.Value}
	case BNot[V]:
		return x.X // ¬¬x → x
	case BAnd[V]:
		negated := make([]BoolExpr[V], len(x.Args))
		for i, a := range x.Args {
			negated[i] = SimplifyBool(BNot[V]{X: a})
		}
		return SimplifyBool(BOr[V]{Args: negated})
	case BOr[V]:
		negated := make([]BoolExpr[V], len(x.Args))
		for i, a := range x.Args {
			negated[i] = SimplifyBool(BNot[V]{X: a})
		}
		return SimplifyBool(BAnd[V]{Args: negated})
	case BImplies[V]:
		return SimplifyBool(BAnd[V]{Args: []BoolExpr[V]{x.Ante, SimplifyBool(BNot[V]{X: x.Cons})}})
	case BGt[V]:
		return BLe[V]{L: x.L, R: x.R}
	case BGe[V]:
		return BLt[V]{L: x.L, R: x.R}
	case BLe[V]:
		return BGt[V]{L: x.L, R: x.R}
	case BLt[V]:
		return BGe[V]{L: x.L, R: x.R}
	default:
		return BNot[V]{X: inner}
	}
}
