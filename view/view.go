// Package view implements guarded views: a multiset of (condition, func)
// pairs where a func is "in" the view only when its condition holds. Views
// form separation-style conjunctions, so duplicate instances of the same
// func matter and must survive mapping, pruning, and substitution.
package view

import "github.com/gogpu/starling/expr"

// Func is a named, ordered-parameter application, e.g. a view-prototype
// instantiation foo(bar, baz) or a symbolic predicate application.
type Func[T any] struct {
	Name   string
	Params []T
}

// Guarded pairs a Boolean condition with an item that holds only when the
// condition is true.
type Guarded[V comparable, I any] struct {
	Cond BoolExpr[V]
	Item I
}

// BoolExpr is a type alias narrowing the import surface callers need; it
// is exactly expr.BoolExpr[V].
type BoolExpr[V comparable] = expr.BoolExpr[V]

// GFunc is a guarded view function: Guarded[V, Func[Expr[V]]].
type GFunc[V comparable] = Guarded[V, Func[expr.Expr[V]]]

// GView is a multiset of GFuncs. Order is insertion order; duplicates are
// preserved (see spec §9 — "a sorted or hash-bucketed multiset of hashable
// GFuncs is sufficient"). GView is implemented here as a plain ordered
// slice: the teacher's registry pattern (naga/ir.TypeRegistry) dedups by
// key, but a view multiset must do the opposite — count, not collapse.
type GView[V comparable] struct {
	items []GFunc[V]
}

// NewGView builds a GView from the given items, in order.
func NewGView[V comparable](items ...GFunc[V]) GView[V] {
	return GView[V]{items: append([]GFunc[V](nil), items...)}
}

// Add appends item to the multiset.
func (g *GView[V]) Add(item GFunc[V]) {
	g.items = append(g.items, item)
}

// Append adds every item of other to g, preserving order and duplicates.
func (g *GView[V]) Append(other GView[V]) {
	g.items = append(g.items, other.items...)
}

// Items returns the multiset's elements in insertion order. The returned
// slice must not be mutated by the caller.
func (g GView[V]) Items() []GFunc[V] {
	return g.items
}

// Len returns the number of elements, counting duplicates.
func (g GView[V]) Len() int {
	return len(g.items)
}

// Map applies f to every item, returning a new GView of the same
// cardinality (duplicates map independently — Map never merges entries).
func Map[V comparable, W comparable](g GView[V], f func(GFunc[V]) GFunc[W]) GView[W] {
	out := make([]GFunc[W], len(g.items))
	for i, it := range g.items {
		out[i] = f(it)
	}
	return GView[W]{items: out}
}

// Filter returns the sub-multiset of items for which keep returns true,
// preserving order and duplicate counts.
func (g GView[V]) Filter(keep func(GFunc[V]) bool) GView[V] {
	var out []GFunc[V]
	for _, it := range g.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return GView[V]{items: out}
}
