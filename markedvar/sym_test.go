package markedvar

import (
	"testing"

	"github.com/gogpu/starling/expr"
	"github.com/stretchr/testify/require"
)

func TestSymEqualRegular(t *testing.T) {
	a := Sym[string](Regular[string]{V: "x"})
	b := Sym[string](Regular[string]{V: "x"})
	c := Sym[string](Regular[string]{V: "y"})
	veq := func(a, b string) bool { return a == b }
	require.True(t, SymEqual(a, b, veq))
	require.False(t, SymEqual(a, c, veq))
}

func TestSymEqualSymbolic(t *testing.T) {
	arg := expr.Expr[string](expr.EInt[string]{X: expr.IVar[string]{Var: "n"}})
	a := Sym[string](Symbolic[string]{Name: "owns", Args: []expr.Expr[string]{arg}})
	b := Sym[string](Symbolic[string]{Name: "owns", Args: []expr.Expr[string]{arg}})
	d := Sym[string](Symbolic[string]{Name: "owns", Args: nil})
	veq := func(a, b string) bool { return a == b }
	require.True(t, SymEqual(a, b, veq))
	require.False(t, SymEqual(a, d, veq))
}

func TestMarkedVarStringRoles(t *testing.T) {
	v := expr.Variable{Name: "x", Type: expr.Int}
	require.Equal(t, "x!before", Before(v).String())
	require.Equal(t, "x!after", After(v).String())
	require.Equal(t, "x!2", Intermediate(2, v).String())
	require.Equal(t, "x!goal3", Goal(3, v).String())
	require.Equal(t, "x", Unmarked(v).String())
}
