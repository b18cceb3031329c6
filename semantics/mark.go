package semantics

import (
	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/markedvar"
)

// markExpr carries a surface (string-keyed) expression into the marked
// namespace, tagging every free variable as a Before-state reference —
// every read within one atomic step sees that step's single incoming
// state (spec §4.7).
func markExpr(e expr.Expr[string], declared map[string]expr.Variable) expr.Expr[markedvar.Sym[markedvar.MarkedVar]] {
	return expr.RenameExpr(e, func(name string) markedvar.Sym[markedvar.MarkedVar] {
		return markedvar.Regular[markedvar.MarkedVar]{V: markedvar.Before(declared[name])}
	})
}

func markBool(e expr.BoolExpr[string], declared map[string]expr.Variable) expr.BoolExpr[markedvar.Sym[markedvar.MarkedVar]] {
	return expr.RenameBool(e, func(name string) markedvar.Sym[markedvar.MarkedVar] {
		return markedvar.Regular[markedvar.MarkedVar]{V: markedvar.Before(declared[name])}
	})
}

func markedRef(v expr.Variable, mv markedvar.MarkedVar) expr.Expr[markedvar.Sym[markedvar.MarkedVar]] {
	return expr.VarExpr[markedvar.Sym[markedvar.MarkedVar]](markedvar.Regular[markedvar.MarkedVar]{V: mv}, v.Type)
}

// eqVarValue builds the equation markedRef(v, mv) = val, dispatching on
// v's declared type to produce the matching BEqInt/BEqBool/BEqArray node.
func eqVarValue(v expr.Variable, mv markedvar.MarkedVar, val expr.Expr[markedvar.Sym[markedvar.MarkedVar]]) expr.BoolExpr[markedvar.Sym[markedvar.MarkedVar]] {
	lhs := markedRef(v, mv)
	switch v.Type.Kind {
	case expr.KindBool:
		return expr.BEqBool[markedvar.Sym[markedvar.MarkedVar]]{
			L: lhs.(expr.EBool[markedvar.Sym[markedvar.MarkedVar]]).X,
			R: val.(expr.EBool[markedvar.Sym[markedvar.MarkedVar]]).X,
		}
	case expr.KindArray:
		return expr.BEqArray[markedvar.Sym[markedvar.MarkedVar]]{
			L: lhs.(expr.EArray[markedvar.Sym[markedvar.MarkedVar]]).X,
			R: val.(expr.EArray[markedvar.Sym[markedvar.MarkedVar]]).X,
		}
	default:
		return expr.BEqInt[markedvar.Sym[markedvar.MarkedVar]]{
			L: lhs.(expr.EInt[markedvar.Sym[markedvar.MarkedVar]]).X,
			R: val.(expr.EInt[markedvar.Sym[markedvar.MarkedVar]]).X,
		}
	}
}

// eqVarTo is the frame equation shorthand markedRef(v, a) = markedRef(v, b).
func eqVarTo(v expr.Variable, a, b expr.Expr[markedvar.Sym[markedvar.MarkedVar]]) expr.BoolExpr[markedvar.Sym[markedvar.MarkedVar]] {
	switch v.Type.Kind {
	case expr.KindBool:
		return expr.BEqBool[markedvar.Sym[markedvar.MarkedVar]]{
			L: a.(expr.EBool[markedvar.Sym[markedvar.MarkedVar]]).X,
			R: b.(expr.EBool[markedvar.Sym[markedvar.MarkedVar]]).X,
		}
	case expr.KindArray:
		return expr.BEqArray[markedvar.Sym[markedvar.MarkedVar]]{
			L: a.(expr.EArray[markedvar.Sym[markedvar.MarkedVar]]).X,
			R: b.(expr.EArray[markedvar.Sym[markedvar.MarkedVar]]).X,
		}
	default:
		return expr.BEqInt[markedvar.Sym[markedvar.MarkedVar]]{
			L: a.(expr.EInt[markedvar.Sym[markedvar.MarkedVar]]).X,
			R: b.(expr.EInt[markedvar.Sym[markedvar.MarkedVar]]).X,
		}
	}
}
