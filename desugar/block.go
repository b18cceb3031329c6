package desugar

import "github.com/gogpu/starling/syntax"

// Command is the desugared structured-command grammar: atomic sets are
// fully lowered (§4.3); structured forms (If/While/DoWhile/Blocks) recurse
// into fully-desugared sub-blocks.
type Command interface {
	desugaredCommand()
}

// CPrim is a desugared primitive set — the atomics of one FPrim step.
type CPrim struct{ Atoms []DesugaredAtomic }

func (CPrim) desugaredCommand() {}

// CIf is structured if/else over desugared sub-blocks.
type CIf struct {
	Cond syntax.Atomic0Cond
	Then Block
	Else *Block
}

func (CIf) desugaredCommand() {}

// CWhile is a structured pre-tested loop over a desugared body.
type CWhile struct {
	Cond syntax.Atomic0Cond
	Body Block
}

func (CWhile) desugaredCommand() {}

// CDoWhile is a structured post-tested loop over a desugared body.
type CDoWhile struct {
	Body Block
	Cond syntax.Atomic0Cond
}

func (CDoWhile) desugaredCommand() {}

// CBlocks is parallel composition of desugared blocks.
type CBlocks struct{ Blocks []Block }

func (CBlocks) desugaredCommand() {}

// CmdView pairs a command with the view that must hold immediately after
// it (spec §3 FullBlock's cmds field).
type CmdView struct {
	Cmd  Command
	Post MarkedGView
}

// Block is a filled, fully desugared block: a precondition view and an
// ordered sequence of (command, postcondition) pairs.
type Block struct {
	Pre  MarkedGView
	Cmds []CmdView
}

// FillAndDesugarBlock runs the two-pass block filling of spec §4.4 (cap,
// then pairwise slide) over a raw syntax.Block, then desugars every view
// position and lowers every command position, left to right, threading c.
func (c *Context) FillAndDesugarBlock(raw syntax.Block) Block {
	capped := capBlock(raw)

	if len(capped) == 1 {
		av, _ := capped[0].(syntax.EView)
		return Block{Pre: c.DesugarAnnotation(av.Annotation)}
	}

	type rawPair struct {
		cmd  syntax.Command
		post syntax.Annotation
	}

	preAnn := capped[0].(syntax.EView).Annotation
	var pairs []rawPair

	i := 0
	for i+1 < len(capped) {
		a, b := capped[i], capped[i+1]
		switch av := a.(type) {
		case syntax.EView:
			if bv, ok := b.(syntax.EView); ok {
				// (view, view): insert a skip between them, carrying the
				// second view as its postcondition.
				pairs = append(pairs, rawPair{cmd: skipCommand(), post: bv.Annotation})
			}
			// (view, cmd): already handled — the cmd is re-examined as
			// the left half of the next window.
			i++

		case syntax.ECmd:
			if bv, ok := b.(syntax.EView); ok {
				// (cmd, view): a real pair; the view is re-examined as the
				// left half of the next window.
				pairs = append(pairs, rawPair{cmd: av.Cmd, post: bv.Annotation})
				i++
				continue
			}
			// (cmd, cmd): gap-fill with a fresh unknown view.
			pairs = append(pairs, rawPair{cmd: av.Cmd, post: syntax.Unknown{}})
			i++
		}
	}

	out := Block{Pre: c.DesugarAnnotation(preAnn)}
	out.Cmds = make([]CmdView, len(pairs))
	for idx, p := range pairs {
		out.Cmds[idx] = CmdView{
			Cmd:  c.lowerCommand(p.cmd),
			Post: c.DesugarAnnotation(p.post),
		}
	}
	return out
}

// capBlock ensures the block's first and last elements are views, per
// spec §4.4 rule 1: a non-view leading/trailing element gets an Unknown
// view annotation prepended/appended.
func capBlock(raw syntax.Block) syntax.Block {
	if len(raw) == 0 {
		return syntax.Block{syntax.EView{Annotation: syntax.Unknown{}}}
	}
	out := append(syntax.Block(nil), raw...)
	if _, ok := out[0].(syntax.EView); !ok {
		out = append(syntax.Block{syntax.EView{Annotation: syntax.Unknown{}}}, out...)
	}
	if _, ok := out[len(out)-1].(syntax.EView); !ok {
		out = append(out, syntax.EView{Annotation: syntax.Unknown{}})
	}
	return out
}

// skipCommand synthesizes the no-op command inserted between two
// consecutive view positions.
func skipCommand() syntax.Command {
	return syntax.CPrim{Prims: []syntax.Atomic{syntax.APrim{Prim: syntax.PrimCommand{Name: SkipPrimName}}}}
}

// lowerCommand recursively desugars a raw command's nested blocks and
// atomics, threading c through every sub-call.
func (c *Context) lowerCommand(cmd syntax.Command) Command {
	switch x := cmd.(type) {
	case syntax.CPrim:
		return CPrim{Atoms: c.DesugarAtomics(x.Prims)}
	case syntax.CIf:
		then := c.FillAndDesugarBlock(x.Then)
		var elseBlock *Block
		if x.Else != nil {
			b := c.FillAndDesugarBlock(*x.Else)
			elseBlock = &b
		}
		return CIf{Cond: x.Cond, Then: then, Else: elseBlock}
	case syntax.CWhile:
		return CWhile{Cond: x.Cond, Body: c.FillAndDesugarBlock(x.Body)}
	case syntax.CDoWhile:
		return CDoWhile{Body: c.FillAndDesugarBlock(x.Body), Cond: x.Cond}
	case syntax.CBlocks:
		blocks := make([]Block, len(x.Blocks))
		for i, b := range x.Blocks {
			blocks[i] = c.FillAndDesugarBlock(b)
		}
		return CBlocks{Blocks: blocks}
	default:
		return CPrim{}
	}
}
