package desugar

import (
	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/syntax"
	"github.com/gogpu/starling/view"
)

// DesugarView lowers a syntactic view under a guard suffix into a guarded
// view multiset (spec §4.2). suffix == nil is treated as the literal True.
func (c *Context) DesugarView(v syntax.ViewExpr, suffix expr.BoolExpr[string]) view.GView[string] {
	if suffix == nil {
		suffix = expr.BLit[string]{Value: true}
	}

	switch x := v.(type) {
	case syntax.VUnit:
		return view.NewGView[string]()

	case syntax.VFalsehood:
		return c.DesugarView(syntax.VLocal{Expr: expr.BLit[string]{Value: false}}, suffix)

	case syntax.VLocal:
		liftName := c.ensureLocalLiftView()
		return c.DesugarView(syntax.VFunc{
			Name: liftName,
			Args: []expr.Expr[string]{expr.EBool[string]{X: x.Expr}},
		}, suffix)

	case syntax.VFunc:
		return view.NewGView[string](view.GFunc[string]{
			Cond: suffix,
			Item: view.Func[expr.Expr[string]]{Name: x.Name, Params: x.Args},
		})

	case syntax.VJoin:
		out := c.DesugarView(x.A, suffix)
		out.Append(c.DesugarView(x.B, suffix))
		return out

	case syntax.VIf:
		elseBranch := x.Else
		if elseBranch == nil {
			elseBranch = syntax.VUnit{}
		}
		thenGuard := andGuard(suffix, x.Cond)
		elseGuard := andGuard(suffix, expr.BNot[string]{X: x.Cond})
		out := c.DesugarView(x.Then, thenGuard)
		out.Append(c.DesugarView(elseBranch, elseGuard))
		return out

	default:
		return view.NewGView[string]()
	}
}

// andGuard conjoins suffix with extra, except that when suffix is the
// literal True no conjunction is added (§4.2: "When suffix=True, no
// conjunction is added").
func andGuard(suffix, extra expr.BoolExpr[string]) expr.BoolExpr[string] {
	if lit, ok := suffix.(expr.BLit[string]); ok && lit.Value {
		return extra
	}
	return expr.BAnd[string]{Args: []expr.BoolExpr[string]{suffix, extra}}
}

// MarkedGView is the desugared result of a view annotation: Mandatory
// views are real proof obligations; Advisory views are auto-generated
// fresh unknowns (spec §4.2 "Marked views").
type MarkedGView struct {
	Mandatory bool
	View      view.GView[string]
}

// DesugarAnnotation lowers one view-position annotation.
func (c *Context) DesugarAnnotation(a syntax.Annotation) MarkedGView {
	switch x := a.(type) {
	case syntax.Unmarked:
		return MarkedGView{Mandatory: true, View: c.DesugarView(x.View, nil)}
	case syntax.Questioned:
		return MarkedGView{Mandatory: true, View: c.DesugarView(x.View, nil)}
	case syntax.Unknown:
		proto := c.unknownProto()
		args := make([]expr.Expr[string], len(proto.Params))
		for i, p := range proto.Params {
			args[i] = expr.VarExpr[string](p.Name, p.Type)
		}
		g := view.NewGView[string](view.GFunc[string]{
			Cond: expr.BLit[string]{Value: true},
			Item: view.Func[expr.Expr[string]]{Name: proto.Name, Params: args},
		})
		return MarkedGView{Mandatory: false, View: g}
	default:
		return MarkedGView{Mandatory: true, View: view.NewGView[string]()}
	}
}
