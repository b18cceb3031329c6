// Package term implements the term producer (C7, spec §4.9): it combines a
// weakest-precondition view, a command's two-state semantics, and a goal
// view into verification terms, marking every view's free variables with
// the appropriate pre/post-state role along the way.
package term

import (
	"github.com/gogpu/starling/desugar"
	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/markedvar"
	"github.com/gogpu/starling/semantics"
	"github.com/gogpu/starling/view"
)

// MarkedView is a guarded view over fully marked variables.
type MarkedView = view.GView[markedvar.Sym[markedvar.MarkedVar]]

// Axiom is one (precondition, command, postcondition) triple taken from a
// single desugared command step.
type Axiom struct {
	Pre  MarkedView
	Cmd  semantics.MarkedExpr
	Post MarkedView
}

// Term is the verification condition `wpre ∧ cmd ⇒ goal`. Goal keeps its
// guard (Guarded, not a bare Func) so a goal view's per-item condition is
// never silently dropped when the view is split into one term per item.
type Term struct {
	Wpre MarkedView
	Cmd  semantics.MarkedExpr
	Goal view.GFunc[markedvar.Sym[markedvar.MarkedVar]]
}

func variableMap(vs []expr.Variable) map[string]expr.Variable {
	m := make(map[string]expr.Variable, len(vs))
	for _, v := range vs {
		m[v.Name] = v
	}
	return m
}

// MarkGView carries a surface-named view into the marked namespace, tagging
// every free variable with mark (markedvar.Before for a precondition,
// markedvar.After for a postcondition or goal).
func MarkGView(g view.GView[string], declared map[string]expr.Variable, mark func(expr.Variable) markedvar.MarkedVar) MarkedView {
	rename := func(name string) markedvar.Sym[markedvar.MarkedVar] {
		return markedvar.Regular[markedvar.MarkedVar]{V: mark(declared[name])}
	}
	return view.Map(g, func(f view.GFunc[string]) view.GFunc[markedvar.Sym[markedvar.MarkedVar]] {
		params := make([]expr.Expr[markedvar.Sym[markedvar.MarkedVar]], len(f.Item.Params))
		for i, p := range f.Item.Params {
			params[i] = expr.RenameExpr(p, rename)
		}
		return view.GFunc[markedvar.Sym[markedvar.MarkedVar]]{
			Cond: expr.RenameBool(f.Cond, rename),
			Item: view.Func[expr.Expr[markedvar.Sym[markedvar.MarkedVar]]]{Name: f.Item.Name, Params: params},
		}
	})
}

// CollectAxioms walks a desugared block left to right, producing one Axiom
// per leaf primitive step (CPrim) and chaining each step's postcondition
// view into the next step's precondition. Structured commands (If/While/
// DoWhile/Blocks) contribute no axiom of their own — their nested blocks
// are already bounded by view annotations at every gap, so recursing into
// them yields the same per-leaf-step granularity without re-deriving a
// cross-branch two-state formula the view annotations already discharge.
func CollectAxioms(block desugar.Block, declared []expr.Variable, schemas semantics.PrimSemanticsMap) ([]Axiom, error) {
	declMap := variableMap(declared)
	var axioms []Axiom
	pre := block.Pre.View

	for _, cv := range block.Cmds {
		switch c := cv.Cmd.(type) {
		case desugar.CPrim:
			cmdSem, err := semantics.Translate(c.Atoms, declared, schemas)
			if err != nil {
				return nil, err
			}
			axioms = append(axioms, Axiom{
				Pre:  MarkGView(pre, declMap, markedvar.Before),
				Cmd:  cmdSem,
				Post: MarkGView(cv.Post.View, declMap, markedvar.After),
			})

		case desugar.CIf:
			nested, err := CollectAxioms(c.Then, declared, schemas)
			if err != nil {
				return nil, err
			}
			axioms = append(axioms, nested...)
			if c.Else != nil {
				nested, err = CollectAxioms(*c.Else, declared, schemas)
				if err != nil {
					return nil, err
				}
				axioms = append(axioms, nested...)
			}

		case desugar.CWhile:
			nested, err := CollectAxioms(c.Body, declared, schemas)
			if err != nil {
				return nil, err
			}
			axioms = append(axioms, nested...)

		case desugar.CDoWhile:
			nested, err := CollectAxioms(c.Body, declared, schemas)
			if err != nil {
				return nil, err
			}
			axioms = append(axioms, nested...)

		case desugar.CBlocks:
			for _, b := range c.Blocks {
				nested, err := CollectAxioms(b, declared, schemas)
				if err != nil {
					return nil, err
				}
				axioms = append(axioms, nested...)
			}
		}
		pre = cv.Post.View
	}
	return axioms, nil
}

// BuildTerms pairs every axiom with every item of goal (spec §4.9: "a term
// is built for every (goal-view, axiom) pair"), marking the goal's free
// variables as post-state references.
func BuildTerms(axioms []Axiom, goal view.GView[string], declared []expr.Variable) []Term {
	declMap := variableMap(declared)
	marked := MarkGView(goal, declMap, markedvar.After)

	var terms []Term
	for _, ax := range axioms {
		for _, item := range marked.Items() {
			terms = append(terms, Term{Wpre: ax.Pre, Cmd: ax.Cmd, Goal: item})
		}
	}
	return terms
}
