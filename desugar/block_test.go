package desugar

import (
	"testing"

	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/syntax"
	"github.com/stretchr/testify/require"
)

func prim(name string) syntax.Command {
	return syntax.CPrim{Prims: []syntax.Atomic{syntax.APrim{Prim: syntax.PrimCommand{Name: name}}}}
}

func TestFillAndDesugarBlockSingleView(t *testing.T) {
	c := NewContext(nil, nil, nil)
	raw := syntax.Block{syntax.EView{Annotation: syntax.Unmarked{View: syntax.VUnit{}}}}
	b := c.FillAndDesugarBlock(raw)
	require.Empty(t, b.Cmds)
	require.True(t, b.Pre.Mandatory)
}

func TestFillAndDesugarBlockCapsBothEnds(t *testing.T) {
	c := NewContext(nil, nil, nil)
	raw := syntax.Block{syntax.ECmd{Cmd: prim("p")}}
	b := c.FillAndDesugarBlock(raw)
	require.False(t, b.Pre.Mandatory, "leading gap fills with Unknown")
	require.Len(t, b.Cmds, 1)
	require.False(t, b.Cmds[0].Post.Mandatory, "trailing gap fills with Unknown")
}

func TestFillAndDesugarBlockCmdCmdGap(t *testing.T) {
	c := NewContext(nil, nil, nil)
	raw := syntax.Block{syntax.ECmd{Cmd: prim("p")}, syntax.ECmd{Cmd: prim("q")}}
	b := c.FillAndDesugarBlock(raw)
	require.Len(t, b.Cmds, 2)
	require.False(t, b.Cmds[0].Post.Mandatory, "gap between two commands is filled with a fresh Unknown")
	cp, ok := b.Cmds[1].Cmd.(CPrim)
	require.True(t, ok)
	require.Len(t, cp.Atoms, 1)
}

func TestFillAndDesugarBlockViewViewInsertsSkip(t *testing.T) {
	c := NewContext(nil, nil, nil)
	raw := syntax.Block{
		syntax.EView{Annotation: syntax.Unmarked{View: syntax.VUnit{}}},
		syntax.EView{Annotation: syntax.Unmarked{View: syntax.VUnit{}}},
	}
	b := c.FillAndDesugarBlock(raw)
	require.Len(t, b.Cmds, 1)
	cp, ok := b.Cmds[0].Cmd.(CPrim)
	require.True(t, ok)
	require.Len(t, cp.Atoms, 1)
	prim := cp.Atoms[0].(DAPrim).Prim
	require.Equal(t, SkipPrimName, prim.Name)
}

func TestFillAndDesugarBlockNestedIf(t *testing.T) {
	c := NewContext(nil, nil, nil)
	innerThen := syntax.Block{syntax.ECmd{Cmd: prim("p")}}
	raw := syntax.Block{
		syntax.ECmd{Cmd: syntax.CIf{Cond: expr.BVar[string]{Var: "s"}, Then: innerThen}},
	}
	b := c.FillAndDesugarBlock(raw)
	require.Len(t, b.Cmds, 1)
	ifCmd, ok := b.Cmds[0].Cmd.(CIf)
	require.True(t, ok)
	require.Nil(t, ifCmd.Else)
	require.Len(t, ifCmd.Then.Cmds, 1)
}
