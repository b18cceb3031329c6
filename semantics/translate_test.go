package semantics

import (
	"testing"

	"github.com/gogpu/starling/desugar"
	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/markedvar"
	"github.com/gogpu/starling/microcode"
	"github.com/gogpu/starling/syntax"
	"github.com/stretchr/testify/require"
)

func assignIntSchema() PrimSemanticsMap {
	return PrimSemanticsMap{
		"assign_int": {
			Params:  []expr.Variable{{Name: "rv", Type: expr.Int}},
			Results: []expr.Variable{{Name: "lv", Type: expr.Int}},
			Body: []microcode.Microcode[microcode.LValue[string], string]{
				microcode.NewAssign[microcode.LValue[string], string](
					microcode.LValue[string]{Var: "lv"},
					expr.Expr[string](expr.EInt[string]{X: expr.IVar[string]{Var: "rv"}}),
				),
			},
		},
	}
}

func intVar(name string) expr.Expr[string] {
	return expr.EInt[string]{X: expr.IVar[string]{Var: name}}
}

func ticketAtoms() []desugar.DesugaredAtomic {
	return []desugar.DesugaredAtomic{
		desugar.DAPrim{Prim: syntax.PrimCommand{
			Name:    "assign_int",
			Args:    []expr.Expr[string]{intVar("ticket")},
			Results: []expr.Expr[string]{intVar("t")},
		}},
		desugar.DAPrim{Prim: syntax.PrimCommand{
			Name: "assign_int",
			Args: []expr.Expr[string]{expr.EInt[string]{X: expr.IAdd[string]{Args: []expr.IntExpr[string]{
				expr.IVar[string]{Var: "ticket"}, expr.ILit[string]{Value: 1},
			}}}},
			Results: []expr.Expr[string]{intVar("ticket")},
		}},
	}
}

// Scenario 1: fetch(t, ticket++) reads the same pre-state ticket twice.
func TestTranslateTicketLock(t *testing.T) {
	declared := []expr.Variable{{Name: "t", Type: expr.Int}, {Name: "ticket", Type: expr.Int}}
	got, err := Translate(ticketAtoms(), declared, assignIntSchema())
	require.NoError(t, err)

	simplified := expr.SimplifyBool(got)
	tVar := expr.Variable{Name: "t", Type: expr.Int}
	ticketVar := expr.Variable{Name: "ticket", Type: expr.Int}

	want := expr.BAnd[markedvar.Sym[markedvar.MarkedVar]]{Args: []expr.BoolExpr[markedvar.Sym[markedvar.MarkedVar]]{
		eqVarValue(tVar, markedvar.After(tVar), markedRef(ticketVar, markedvar.Before(ticketVar))),
		eqVarValue(ticketVar, markedvar.After(ticketVar), expr.EInt[markedvar.Sym[markedvar.MarkedVar]]{X: expr.IAdd[markedvar.Sym[markedvar.MarkedVar]]{
			Args: []expr.IntExpr[markedvar.Sym[markedvar.MarkedVar]]{
				markedRef(ticketVar, markedvar.Before(ticketVar)).(expr.EInt[markedvar.Sym[markedvar.MarkedVar]]).X,
				expr.ILit[markedvar.Sym[markedvar.MarkedVar]]{Value: 1},
			},
		}}),
	}}
	wantSimplified := expr.SimplifyBool(want)
	require.True(t, expr.BoolEqual[markedvar.Sym[markedvar.MarkedVar]](simplified, wantSimplified))
}

func TestTranslateFramesUntouchedVariables(t *testing.T) {
	declared := []expr.Variable{{Name: "t", Type: expr.Int}, {Name: "ticket", Type: expr.Int}, {Name: "other", Type: expr.Bool}}
	atoms := []desugar.DesugaredAtomic{ticketAtoms()[0]}
	got, err := Translate(atoms, declared, assignIntSchema())
	require.NoError(t, err)

	otherVar := expr.Variable{Name: "other", Type: expr.Bool}
	found := false
	for _, c := range got.(expr.BAnd[markedvar.Sym[markedvar.MarkedVar]]).Args {
		if expr.BoolEqual[markedvar.Sym[markedvar.MarkedVar]](c, eqVarTo(otherVar, markedRef(otherVar, markedvar.After(otherVar)), markedRef(otherVar, markedvar.Before(otherVar)))) {
			found = true
		}
	}
	require.True(t, found, "an untouched declared variable gets an explicit frame equation")
}

func TestTranslateMissingSchemaIsMissingDefError(t *testing.T) {
	atoms := []desugar.DesugaredAtomic{desugar.DAPrim{Prim: syntax.PrimCommand{Name: "nope"}}}
	_, err := Translate(atoms, nil, assignIntSchema())
	require.Error(t, err)
}

// assumeBoolSchema is a primitive whose body carries a bare Assume, standing
// in for a primitive that restricts execution, so it can be placed inside a
// DACond arm.
func assumeBoolSchema() PrimSemanticsMap {
	return PrimSemanticsMap{
		"assume_true": {
			Params: []expr.Variable{{Name: "c", Type: expr.Bool}},
			Body: []microcode.Microcode[microcode.LValue[string], string]{
				microcode.Assume[microcode.LValue[string], string]{
					Cond: expr.BVar[string]{Var: "c"},
				},
			},
		},
	}
}

// An Assume nested in a DACond arm must be gated by the branch condition:
// it constrains the two-state formula only when that arm is the one taken,
// never unconditionally.
func TestTranslateGuardsAssumeInsideConditionalBranch(t *testing.T) {
	cond := expr.BVar[string]{Var: "p"}
	atoms := []desugar.DesugaredAtomic{
		desugar.DACond{
			Cond: cond,
			True: []desugar.DesugaredAtomic{desugar.DAPrim{Prim: syntax.PrimCommand{
				Name: "assume_true",
				Args: []expr.Expr[string]{expr.EBool[string]{X: expr.BVar[string]{Var: "q"}}},
			}}},
		},
	}
	got, err := Translate(atoms, nil, assumeBoolSchema())
	require.NoError(t, err)

	wantGuard := markBool(
		expr.BImplies[string]{Ante: cond, Cons: expr.BVar[string]{Var: "q"}},
		map[string]expr.Variable{},
	)

	and, ok := got.(expr.BAnd[markedvar.Sym[markedvar.MarkedVar]])
	require.True(t, ok)
	found := false
	for _, c := range and.Args {
		if expr.BoolEqual[markedvar.Sym[markedvar.MarkedVar]](c, wantGuard) {
			found = true
		}
	}
	require.True(t, found, "the branch-local assume must appear wrapped in an implication on its condition, not as a bare conjunct")
}
