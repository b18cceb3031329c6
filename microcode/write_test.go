package microcode

import (
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/gogpu/starling/expr"
	"github.com/stretchr/testify/require"
)

func intVar(types map[string]expr.Type) func(string) expr.Type {
	return func(v string) expr.Type { return types[v] }
}

// Scenario 6: a[i] := 1; a[j] := 2 normalizes to a := upd(upd(a, i, 1), j, 2).
func TestNormalizeArraySubscript(t *testing.T) {
	one := expr.Expr[string](expr.EInt[string]{X: expr.ILit[string]{Value: 1}})
	two := expr.Expr[string](expr.EInt[string]{X: expr.ILit[string]{Value: 2}})
	i := expr.IntExpr[string](expr.IVar[string]{Var: "i"})
	j := expr.IntExpr[string](expr.IVar[string]{Var: "j"})

	assigns := []Assign[LValue[string], string]{
		NewAssign[LValue[string], string](LValue[string]{Var: "a", Path: []expr.IntExpr[string]{i}}, one),
		NewAssign[LValue[string], string](LValue[string]{Var: "a", Path: []expr.IntExpr[string]{j}}, two),
	}

	types := intVar(map[string]expr.Type{"a": expr.Array(expr.KindInt, 0)})
	out, err := Normalize(assigns, types)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "a", out[0].Var)
	require.True(t, out[0].RVOk)

	arr := out[0].RV.(expr.EArray[string])
	outer, ok := arr.X.(expr.AUpd[string])
	require.True(t, ok)
	require.True(t, expr.IntEqual[string](outer.Index, j))
	inner, ok := outer.Arr.(expr.AUpd[string])
	require.True(t, ok)
	require.True(t, expr.IntEqual[string](inner.Index, i))
	_, ok = inner.Arr.(expr.AVar[string])
	require.True(t, ok)
}

func TestNormalizeWholeVariable(t *testing.T) {
	rv := expr.Expr[string](expr.EInt[string]{X: expr.ILit[string]{Value: 7}})
	assigns := []Assign[LValue[string], string]{
		NewAssign[LValue[string], string](LValue[string]{Var: "x"}, rv),
	}
	out, err := Normalize(assigns, intVar(nil))
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "x", out[0].Var)
	require.True(t, out[0].RVOk)
}

func TestNormalizeHavocPropagatesThroughIndices(t *testing.T) {
	i := expr.IntExpr[string](expr.IVar[string]{Var: "i"})
	assigns := []Assign[LValue[string], string]{
		NewHavoc[LValue[string], string](LValue[string]{Var: "a", Path: []expr.IntExpr[string]{i}}),
	}
	types := intVar(map[string]expr.Type{"a": expr.Array(expr.KindInt, 0)})
	out, err := Normalize(assigns, types)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.False(t, out[0].RVOk, "a havoced index havocs the whole variable")
}

func TestNormalizeDoubleWriteIsBadSemantics(t *testing.T) {
	rv := expr.Expr[string](expr.EInt[string]{X: expr.ILit[string]{Value: 1}})
	assigns := []Assign[LValue[string], string]{
		NewAssign[LValue[string], string](LValue[string]{Var: "x"}, rv),
		NewAssign[LValue[string], string](LValue[string]{Var: "x"}, rv),
	}
	_, err := Normalize(assigns, intVar(nil))
	require.Error(t, err)
}

func TestNormalizeIndexOverWholeIsBadSemantics(t *testing.T) {
	i := expr.IntExpr[string](expr.IVar[string]{Var: "i"})
	rv := expr.Expr[string](expr.EInt[string]{X: expr.ILit[string]{Value: 1}})
	assigns := []Assign[LValue[string], string]{
		NewAssign[LValue[string], string](LValue[string]{Var: "a"}, rv),
		NewAssign[LValue[string], string](LValue[string]{Var: "a", Path: []expr.IntExpr[string]{i}}, rv),
	}
	_, err := Normalize(assigns, intVar(nil))
	require.Error(t, err)
}

func TestNormalizeReportsEveryDoubleWriteNotJustTheFirst(t *testing.T) {
	rv := expr.Expr[string](expr.EInt[string]{X: expr.ILit[string]{Value: 1}})
	assigns := []Assign[LValue[string], string]{
		NewAssign[LValue[string], string](LValue[string]{Var: "x"}, rv),
		NewAssign[LValue[string], string](LValue[string]{Var: "x"}, rv),
		NewAssign[LValue[string], string](LValue[string]{Var: "y"}, rv),
		NewAssign[LValue[string], string](LValue[string]{Var: "y"}, rv),
	}
	_, err := Normalize(assigns, intVar(nil))
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2, "one conflict per bad variable, not just the first")
}

func TestNormalizePreservesFirstTouchOrder(t *testing.T) {
	rv := expr.Expr[string](expr.EInt[string]{X: expr.ILit[string]{Value: 1}})
	assigns := []Assign[LValue[string], string]{
		NewAssign[LValue[string], string](LValue[string]{Var: "b"}, rv),
		NewAssign[LValue[string], string](LValue[string]{Var: "a"}, rv),
	}
	out, err := Normalize(assigns, intVar(nil))
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, []string{out[0].Var, out[1].Var})
}
