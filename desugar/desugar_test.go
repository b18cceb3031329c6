package desugar

import (
	"testing"

	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/syntax"
	"github.com/stretchr/testify/require"
)

// Scenario 2: Desugar {| false |} from scratch context.
func TestDesugarFalsehood(t *testing.T) {
	c := NewContext(nil, nil, nil)
	g := c.DesugarView(syntax.VFalsehood{}, nil)

	require.Equal(t, 1, g.Len())
	item := g.Items()[0]
	require.True(t, item.Cond.(expr.BLit[string]).Value)
	require.Equal(t, "__lift_0", item.Item.Name)
	require.NotNil(t, c.LocalLiftView)
	require.Equal(t, "__lift_0", *c.LocalLiftView)
	require.Contains(t, c.GeneratedProtos, "__lift_0")
	require.Len(t, c.GeneratedProtos["__lift_0"].Params, 1)
	require.Equal(t, expr.Bool, c.GeneratedProtos["__lift_0"].Params[0].Type)
}

// Scenario 3: Desugar {| ? |} with thread vars [(int s), (int t)].
func TestDesugarUnknown(t *testing.T) {
	threadVars := []expr.Variable{{Name: "s", Type: expr.Int}, {Name: "t", Type: expr.Int}}
	c := NewContext(nil, threadVars, nil)

	marked := c.DesugarAnnotation(syntax.Unknown{})
	require.False(t, marked.Mandatory)
	require.Equal(t, 1, marked.View.Len())

	item := marked.View.Items()[0]
	require.Equal(t, "__unknown_0", item.Item.Name)
	require.Len(t, item.Item.Params, 2)
}

// Scenario 4: Desugar conditional {| if s { foo(bar) } |} (no else).
func TestDesugarConditionalNoElse(t *testing.T) {
	c := NewContext(nil, nil, nil)
	cond := expr.BVar[string]{Var: "s"}
	v := syntax.VIf{
		Cond: cond,
		Then: syntax.VFunc{Name: "foo", Args: []expr.Expr[string]{expr.EInt[string]{X: expr.IVar[string]{Var: "bar"}}}},
	}
	g := c.DesugarView(v, nil)
	require.Equal(t, 1, g.Len(), "Unit else-branch desugars to nothing")
	require.True(t, expr.BoolEqual[string](g.Items()[0].Cond, cond))
	require.Equal(t, "foo", g.Items()[0].Item.Name)
}

// Scenario 5: assert(x) when okay already has __ok_0, __ok_1 in context.
func TestDesugarAssertAllocatesNextOkName(t *testing.T) {
	shared := []expr.Variable{
		{Name: "__ok_0", Type: expr.Bool},
		{Name: "__ok_1", Type: expr.Bool},
	}
	c := NewContext(shared, nil, nil)

	atoms := c.DesugarAtomic(syntax.AAssert{Expr: expr.BVar[string]{Var: "x"}})
	require.Len(t, atoms, 1)
	prim := atoms[0].(DAPrim).Prim
	require.Equal(t, AssignPrimName, prim.Name)
	require.Equal(t, "__ok_2", c.SharedVars[0].Name, "the fresh okay-Boolean is prepended, not appended")
	require.Equal(t, expr.Bool, c.SharedVars[0].Type)
	require.Equal(t, "__ok_2", *c.OkayBool)
}

func TestDesugarErrorIsAssertFalse(t *testing.T) {
	c := NewContext(nil, nil, nil)
	atoms := c.DesugarAtomic(syntax.AError{})
	require.Len(t, atoms, 1)
	prim := atoms[0].(DAPrim).Prim
	require.Equal(t, AssignPrimName, prim.Name)
	lit, ok := prim.Args[0].(expr.EBool[string]).X.(expr.BLit[string])
	require.True(t, ok)
	require.False(t, lit.Value)
}

func TestContextNamesStayUnique(t *testing.T) {
	c := NewContext(nil, nil, nil)
	c.ensureLocalLiftView()
	// Force a fresh proto allocation that must skip the name already taken.
	c.GeneratedProtos["__unknown_0"] = c.GeneratedProtos["__lift_0"]
	c.ThreadVars = []expr.Variable{{Name: "a", Type: expr.Int}}
	p := c.unknownProto()
	require.NotEqual(t, "__unknown_0", p.Name)
	require.Equal(t, "__unknown_1", p.Name)
}
