package semantics

import (
	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/microcode"
)

// Builtins returns the schemas for the two reserved primitives the
// desugarer synthesizes: __assign (assert/error lowering, spec §4.3) and
// __skip (the block-filler's view-view gap filler, spec §4.4). __assign's
// argument and result are Bool-typed because the only source of a
// synthesized __assign is assert's okay flag; __skip has no typed slots.
// A collator wiring in user-defined primitives extends this map rather than
// replacing it.
func Builtins() PrimSemanticsMap {
	return PrimSemanticsMap{
		"__assign": {
			Params:  []expr.Variable{{Name: "rv", Type: expr.Bool}},
			Results: []expr.Variable{{Name: "lv", Type: expr.Bool}},
			Body: []microcode.Microcode[microcode.LValue[string], string]{
				microcode.NewAssign[microcode.LValue[string], string](
					microcode.LValue[string]{Var: "lv"},
					expr.Expr[string](expr.EBool[string]{X: expr.BVar[string]{Var: "rv"}}),
				),
			},
		},
		"__skip": {
			Params:  nil,
			Results: nil,
			Body:    nil,
		},
	}
}
