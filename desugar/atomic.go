package desugar

import (
	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/syntax"
)

// AssignPrimName is the reserved primitive name synthesized assert/error
// lowering uses to represent a plain assignment. Its schema — args: [rv], results: [lv], body: Assign(lv,
// Some(rv)) — is registered once in package semantics' built-in map, so
// the rest of the pipeline treats assignment uniformly through the same
// instantiation machinery as any other primitive (§4.6).
const AssignPrimName = "__assign"

// SkipPrimName is the reserved no-op primitive block-filling synthesizes
// between two consecutive views (two consecutive commands get a fresh
// unknown view between them instead). Its schema
// has no args, no results, and an empty body — pure frame, no writes.
const SkipPrimName = "__skip"

// DesugaredAtomic is the atomic grammar after §4.3 lowering.
type DesugaredAtomic interface {
	desugaredAtomic()
}

// DAPrim is a single primitive-command application.
type DAPrim struct{ Prim syntax.PrimCommand }

func (DAPrim) desugaredAtomic() {}

// DACond is a conditional choice between two desugared atomic lists.
type DACond struct {
	Cond  expr.BoolExpr[string]
	True  []DesugaredAtomic
	False []DesugaredAtomic
}

func (DACond) desugaredAtomic() {}

// DesugarAtomic lowers a single syntax.Atomic into zero or more
// DesugaredAtomic instructions (spec §4.3).
func (c *Context) DesugarAtomic(a syntax.Atomic) []DesugaredAtomic {
	switch x := a.(type) {
	case syntax.AAssert:
		ok := c.ensureOkayBool()
		return []DesugaredAtomic{DAPrim{Prim: syntax.PrimCommand{
			Name:    AssignPrimName,
			Args:    []expr.Expr[string]{expr.EBool[string]{X: x.Expr}},
			Results: []expr.Expr[string]{expr.VarExpr[string](ok, expr.Bool)},
		}}}

	case syntax.AError:
		return c.DesugarAtomic(syntax.AAssert{Expr: expr.BLit[string]{Value: false}})

	case syntax.APrim:
		return []DesugaredAtomic{DAPrim{Prim: x.Prim}}

	case syntax.ACond:
		return []DesugaredAtomic{DACond{
			Cond:  x.Cond,
			True:  c.DesugarAtomics(x.True),
			False: c.DesugarAtomics(x.False),
		}}

	default:
		return nil
	}
}

// DesugarAtomics lowers an ordered list of atomics, flattening each
// element's result in order.
func (c *Context) DesugarAtomics(as []syntax.Atomic) []DesugaredAtomic {
	var out []DesugaredAtomic
	for _, a := range as {
		out = append(out, c.DesugarAtomic(a)...)
	}
	return out
}
