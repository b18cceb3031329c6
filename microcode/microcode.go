// Package microcode implements the microcode intermediate language (spec
// §3/§4.5): assignments, assumptions and branches used to encode primitive
// command semantics, plus the write-map normalization that turns a list of
// (possibly array-indexed) assignments into whole-variable assigns.
package microcode

import "github.com/gogpu/starling/expr"

// LValue is an assignment target: a variable, optionally indexed by a
// single Idx step. Starling's array element types are always scalar
// (expr.Type never nests Array inside Array — see expr.Type's doc
// comment), so a well-formed LValue's Path has length 0 or 1; §4.5's
// general "index path" is implemented to that depth.
type LValue[V comparable] struct {
	Var  V
	Path []expr.IntExpr[V]
}

// Whole reports whether lv refers to the entire variable (no indexing).
func (lv LValue[V]) Whole() bool { return len(lv.Path) == 0 }

// Microcode is the IR: Assign, Assume, or Branch.
type Microcode[L any, V comparable] interface {
	microcode()
}

// Assign sets lv to rv, or havocs it when rv is nil.
type Assign[L any, V comparable] struct {
	LV L
	RV expr.Expr[V] // nil RV means havoc; callers check with RVOk
	RVOk bool
}

func (Assign[L, V]) microcode() {}

// NewAssign builds a determinate assignment.
func NewAssign[L any, V comparable](lv L, rv expr.Expr[V]) Assign[L, V] {
	return Assign[L, V]{LV: lv, RV: rv, RVOk: true}
}

// NewHavoc builds a havoc "assignment" (rv unknown).
func NewHavoc[L any, V comparable](lv L) Assign[L, V] {
	return Assign[L, V]{LV: lv}
}

// Assume restricts execution to states where Cond holds.
type Assume[L any, V comparable] struct {
	Cond expr.BoolExpr[V]
}

func (Assume[L, V]) microcode() {}

// Branch executes Then when Cond holds, Else otherwise.
type Branch[L any, V comparable] struct {
	Cond expr.BoolExpr[V]
	Then []Microcode[L, V]
	Else []Microcode[L, V]
}

func (Branch[L, V]) microcode() {}
