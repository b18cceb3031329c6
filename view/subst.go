package view

import (
	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/subst"
)

// SubstituteGFunc substitutes through a single guarded func: per spec §4.8,
// the guard is substituted under the flipped context (it appears negated
// in "cond ⇒ item" reasoning) while the item's parameters keep the
// unchanged context.
func SubstituteGFunc[V comparable](ctx subst.Ctx, g GFunc[V], m subst.Mappers[V]) GFunc[V] {
	return GFunc[V]{
		Cond: subst.Bool(ctx.Flip(), g.Cond, m),
		Item: Func[expr.Expr[V]]{
			Name:   g.Item.Name,
			Params: substParams(ctx, g.Item.Params, m),
		},
	}
}

func substParams[V comparable](ctx subst.Ctx, params []expr.Expr[V], m subst.Mappers[V]) []expr.Expr[V] {
	out := make([]expr.Expr[V], len(params))
	for i, p := range params {
		out[i] = subst.ExprVal(ctx, p, m)
	}
	return out
}

// SubstituteGView substitutes through every item of a GView, preserving
// order and duplicate cardinality.
func SubstituteGView[V comparable](ctx subst.Ctx, g GView[V], m subst.Mappers[V]) GView[V] {
	out := make([]GFunc[V], g.Len())
	for i, it := range g.Items() {
		out[i] = SubstituteGFunc(ctx, it, m)
	}
	return GView[V]{items: out}
}
