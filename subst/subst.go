// Package subst implements position-aware substitution (spec §4.8): a
// substitution carries a sign that flips across negation and implication's
// antecedent, and holds steady across comparisons and equalities. Positive
// position substitutes an over-approximation, negative an under-approximation.
package subst

import "github.com/gogpu/starling/expr"

// Sign is the polarity of the current substitution position.
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

// Flip returns the opposite sign.
func (s Sign) Flip() Sign {
	if s == Positive {
		return Negative
	}
	return Positive
}

// Ctx is the SubCtx threaded through a substitution traversal.
type Ctx struct {
	Sign Sign
}

// Root is the starting context for a fresh substitution: positive position.
func Root() Ctx { return Ctx{Sign: Positive} }

// Flip returns ctx with its sign inverted.
func (ctx Ctx) Flip() Ctx { return Ctx{Sign: ctx.Sign.Flip()} }

// BoolMapper, IntMapper and ArrayMapper each substitute a single node under
// a position context, returning the replacement and whether it replaced
// anything (non-matching nodes recurse unchanged).
type BoolMapper[V comparable] func(ctx Ctx, e expr.BoolExpr[V]) (expr.BoolExpr[V], bool)
type IntMapper[V comparable] func(ctx Ctx, e expr.IntExpr[V]) (expr.IntExpr[V], bool)
type ArrayMapper[V comparable] func(ctx Ctx, e expr.ArrayExpr[V]) (expr.ArrayExpr[V], bool)

// Mappers bundles the three per-grammar mappers so a traversal never has
// to remember to thread one of them by hand — every recursive call below
// takes one Mappers value and passes it through unchanged.
type Mappers[V comparable] struct {
	Bool  BoolMapper[V]
	Int   IntMapper[V]
	Array ArrayMapper[V]
}

// Identity returns a Mappers that never replaces anything; useful when a
// caller only wants to substitute one grammar (e.g. only array variables)
// and leave the others untouched.
func Identity[V comparable]() Mappers[V] {
	return Mappers[V]{
		Bool:  func(Ctx, expr.BoolExpr[V]) (expr.BoolExpr[V], bool) { return nil, false },
		Int:   func(Ctx, expr.IntExpr[V]) (expr.IntExpr[V], bool) { return nil, false },
		Array: func(Ctx, expr.ArrayExpr[V]) (expr.ArrayExpr[V], bool) { return nil, false },
	}
}

// Bool substitutes through a BoolExpr tree, flipping sign at Not and at
// Implies' antecedent, and holding sign steady through comparisons and
// equalities (spec §4.8).
func Bool[V comparable](ctx Ctx, e expr.BoolExpr[V], m Mappers[V]) expr.BoolExpr[V] {
	if repl, ok := m.Bool(ctx, e); ok {
		return repl
	}
	switch x := e.(type) {
	case expr.BVar[V], expr.BLit[V]:
		return x
	case expr.BAnd[V]:
		return expr.BAnd[V]{Args: boolSlice(ctx, x.Args, m)}
	case expr.BOr[V]:
		return expr.BOr[V]{Args: boolSlice(ctx, x.Args, m)}
	case expr.BNot[V]:
		return expr.BNot[V]{X: Bool(ctx.Flip(), x.X, m)}
	case expr.BImplies[V]:
		return expr.BImplies[V]{
			Ante: Bool(ctx.Flip(), x.Ante, m),
			Cons: Bool(ctx, x.Cons, m),
		}
	case expr.BEqInt[V]:
		return expr.BEqInt[V]{L: Int(ctx, x.L, m), R: Int(ctx, x.R, m)}
	case expr.BEqBool[V]:
		return expr.BEqBool[V]{L: Bool(ctx, x.L, m), R: Bool(ctx, x.R, m)}
	case expr.BEqArray[V]:
		return expr.BEqArray[V]{L: Array(ctx, x.L, m), R: Array(ctx, x.R, m)}
	case expr.BGt[V]:
		return expr.BGt[V]{L: Int(ctx, x.L, m), R: Int(ctx, x.R, m)}
	case expr.BGe[V]:
		return expr.BGe[V]{L: Int(ctx, x.L, m), R: Int(ctx, x.R, m)}
	case expr.BLe[V]:
		return expr.BLe[V]{L: Int(ctx, x.L, m), R: Int(ctx, x.R, m)}
	case expr.BLt[V]:
		return expr.BLt[V]{L: Int(ctx, x.L, m), R: Int(ctx, x.R, m)}
	case expr.BIdx[V]:
		return expr.BIdx[V]{Arr: Array(ctx, x.Arr, m), Index: Int(ctx, x.Index, m)}
	default:
		return e
	}
}

func boolSlice[V comparable](ctx Ctx, xs []expr.BoolExpr[V], m Mappers[V]) []expr.BoolExpr[V] {
	out := make([]expr.BoolExpr[V], len(xs))
	for i, x := range xs {
		out[i] = Bool(ctx, x, m)
	}
	return out
}

// Int substitutes through an IntExpr tree. Integer expressions carry no
// polarity of their own, but the ambient ctx is threaded through so that
// embedded array index expressions see the right sign.
func Int[V comparable](ctx Ctx, e expr.IntExpr[V], m Mappers[V]) expr.IntExpr[V] {
	if repl, ok := m.Int(ctx, e); ok {
		return repl
	}
	switch x := e.(type) {
	case expr.IVar[V], expr.ILit[V]:
		return x
	case expr.IAdd[V]:
		return expr.IAdd[V]{Args: intSlice(ctx, x.Args, m)}
	case expr.ISub[V]:
		return expr.ISub[V]{Args: intSlice(ctx, x.Args, m)}
	case expr.IMul[V]:
		return expr.IMul[V]{Args: intSlice(ctx, x.Args, m)}
	case expr.IDiv[V]:
		return expr.IDiv[V]{L: Int(ctx, x.L, m), R: Int(ctx, x.R, m)}
	case expr.IIdx[V]:
		return expr.IIdx[V]{Arr: Array(ctx, x.Arr, m), Index: Int(ctx, x.Index, m)}
	default:
		return e
	}
}

func intSlice[V comparable](ctx Ctx, xs []expr.IntExpr[V], m Mappers[V]) []expr.IntExpr[V] {
	out := make([]expr.IntExpr[V], len(xs))
	for i, x := range xs {
		out[i] = Int(ctx, x, m)
	}
	return out
}

// Array substitutes through an ArrayExpr tree.
func Array[V comparable](ctx Ctx, e expr.ArrayExpr[V], m Mappers[V]) expr.ArrayExpr[V] {
	if repl, ok := m.Array(ctx, e); ok {
		return repl
	}
	switch x := e.(type) {
	case expr.AVar[V]:
		return x
	case expr.AUpd[V]:
		return expr.AUpd[V]{
			Arr:   Array(ctx, x.Arr, m),
			Index: Int(ctx, x.Index, m),
			Val:   ExprVal(ctx, x.Val, m),
		}
	default:
		return e
	}
}

// ExprVal substitutes through a tagged Expr, dispatching on its kind.
func ExprVal[V comparable](ctx Ctx, e expr.Expr[V], m Mappers[V]) expr.Expr[V] {
	switch x := e.(type) {
	case expr.EInt[V]:
		return expr.EInt[V]{X: Int(ctx, x.X, m)}
	case expr.EBool[V]:
		return expr.EBool[V]{X: Bool(ctx, x.X, m)}
	case expr.EArray[V]:
		return expr.EArray[V]{Elt: x.Elt, Length: x.Length, X: Array(ctx, x.X, m)}
	default:
		return e
	}
}
