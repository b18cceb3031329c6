package semantics

import (
	"github.com/gogpu/starling/desugar"
	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/markedvar"
	"github.com/gogpu/starling/microcode"
	"github.com/gogpu/starling/serr"
)

// MarkedExpr is shorthand for the fully marked expression type every
// CommandSemantics ultimately speaks in.
type MarkedExpr = expr.BoolExpr[markedvar.Sym[markedvar.MarkedVar]]

// outcome records what a routine does to one declared variable: nothing
// (frame), an unconstrained havoc, a determinate new value, or a choice
// between two further outcomes gated on a condition.
type outcome struct {
	kind int
	rv   expr.Expr[string]
	cond expr.BoolExpr[string]
	then *outcome
	els  *outcome
}

const (
	oFrame = iota
	oHavoc
	oAssign
	oCond
)

// routine translates one atomic step's flattened atom list into a
// two-state Boolean predicate over the declared shared/thread variables
// (spec §4.7). Every read inside the step sees the step's single incoming
// (pre-) state — atoms within one atomic block commit together, like the
// ticket-lock scenario's `t := ticket; ticket := ticket + 1`, which must
// read the same pre-state ticket twice, not the post-write value.
type routine struct {
	schemas  PrimSemanticsMap
	declared map[string]expr.Variable
}

// Translate builds the two-state predicate for one CPrim's atom list,
// given the full set of shared+thread variables the surrounding command
// must account for (every declared variable gets a frame equation unless
// the routine writes or havocs it).
func Translate(atoms []desugar.DesugaredAtomic, declared []expr.Variable, schemas PrimSemanticsMap) (MarkedExpr, error) {
	r := &routine{
		schemas:  schemas,
		declared: make(map[string]expr.Variable, len(declared)),
	}
	for _, v := range declared {
		r.declared[v.Name] = v
	}

	outcomes, assumes, err := r.translateAtoms(atoms)
	if err != nil {
		return nil, err
	}

	var conjuncts []expr.BoolExpr[markedvar.Sym[markedvar.MarkedVar]]
	for _, v := range declared {
		o, ok := outcomes[v.Name]
		if !ok {
			o = outcome{kind: oFrame}
		}
		conjuncts = append(conjuncts, r.equationFor(v, o))
	}
	for _, a := range assumes {
		conjuncts = append(conjuncts, markBool(a, r.declared))
	}
	return expr.BAnd[markedvar.Sym[markedvar.MarkedVar]]{Args: conjuncts}, nil
}

func (r *routine) varType(name string) expr.Type {
	return r.declared[name].Type
}

// translateAtoms walks one atomic step's flattened atom list, combining
// every unconditional primitive's writes through a single microcode.
// Normalize call (so two separate indexed writes to the same array, from
// two different primitive applications in the same step, still merge
// per spec §4.5/scenario 6), and handling conditional atomics (DACond) by
// recursing into each arm and wrapping both its outcomes and its assumes in
// an implication pair gated on x.Cond — an Assume inside a branch must not
// become an unconditional constraint on the two-state formula.
func (r *routine) translateAtoms(atoms []desugar.DesugaredAtomic) (map[string]outcome, []expr.BoolExpr[string], error) {
	var flat []microcode.Assign[microcode.LValue[string], string]
	var assumes []expr.BoolExpr[string]
	condOutcomes := map[string]outcome{}

	for _, a := range atoms {
		switch x := a.(type) {
		case desugar.DAPrim:
			schema, ok := r.schemas[x.Prim.Name]
			if !ok {
				return nil, nil, &serr.MissingDefError{Prim: x.Prim.Name}
			}
			assigns, as, err := Instantiate(schema, x.Prim)
			if err != nil {
				return nil, nil, &serr.InstantiateError{Prim: x.Prim.Name, Inner: err}
			}
			flat = append(flat, assigns...)
			assumes = append(assumes, as...)

		case desugar.DACond:
			thenOut, thenAssumes, err := r.translateAtoms(x.True)
			if err != nil {
				return nil, nil, err
			}
			elseOut, elseAssumes, err := r.translateAtoms(x.False)
			if err != nil {
				return nil, nil, err
			}
			for v := range unionKeys(thenOut, elseOut) {
				to, ok := thenOut[v]
				if !ok {
					to = outcome{kind: oFrame}
				}
				eo, ok := elseOut[v]
				if !ok {
					eo = outcome{kind: oFrame}
				}
				if _, exists := condOutcomes[v]; exists {
					return nil, nil, &serr.BadSemanticsError{Reason: "variable written by more than one conditional atomic in the same step"}
				}
				thenCopy, elseCopy := to, eo
				condOutcomes[v] = outcome{kind: oCond, cond: x.Cond, then: &thenCopy, els: &elseCopy}
			}
			for _, a := range thenAssumes {
				assumes = append(assumes, expr.BImplies[string]{Ante: x.Cond, Cons: a})
			}
			for _, a := range elseAssumes {
				assumes = append(assumes, expr.BImplies[string]{Ante: expr.BNot[string]{X: x.Cond}, Cons: a})
			}

		default:
			return nil, nil, &serr.BadSemanticsError{Reason: "unrecognized desugared atomic"}
		}
	}

	normalized, err := microcode.Normalize(flat, r.varType)
	if err != nil {
		return nil, nil, err
	}

	out := make(map[string]outcome, len(normalized)+len(condOutcomes))
	for _, wa := range normalized {
		if _, exists := condOutcomes[wa.Var]; exists {
			return nil, nil, &serr.BadSemanticsError{Reason: "variable written both unconditionally and conditionally in the same step"}
		}
		if wa.RVOk {
			out[wa.Var] = outcome{kind: oAssign, rv: wa.RV}
		} else {
			out[wa.Var] = outcome{kind: oHavoc}
		}
	}
	for v, o := range condOutcomes {
		out[v] = o
	}
	return out, assumes, nil
}

func unionKeys(a, b map[string]outcome) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

// equationFor renders one declared variable's outcome as a marked-state
// equation. A conditional outcome keeps a single After(v) reference across
// both arms and constrains it with an implication pair, rather than
// synthesizing an expression-level if-then-else (the expr grammar has none).
func (r *routine) equationFor(v expr.Variable, o outcome) expr.BoolExpr[markedvar.Sym[markedvar.MarkedVar]] {
	switch o.kind {
	case oFrame:
		return eqVarTo(v, markedRef(v, markedvar.After(v)), markedRef(v, markedvar.Before(v)))
	case oHavoc:
		return expr.BLit[markedvar.Sym[markedvar.MarkedVar]]{Value: true}
	case oAssign:
		return eqVarValue(v, markedvar.After(v), markExpr(o.rv, r.declared))
	case oCond:
		cond := markBool(o.cond, r.declared)
		thenEq := r.equationFor(v, *o.then)
		elseEq := r.equationFor(v, *o.els)
		return expr.BAnd[markedvar.Sym[markedvar.MarkedVar]]{Args: []expr.BoolExpr[markedvar.Sym[markedvar.MarkedVar]]{
			expr.BImplies[markedvar.Sym[markedvar.MarkedVar]]{Ante: cond, Cons: thenEq},
			expr.BImplies[markedvar.Sym[markedvar.MarkedVar]]{Ante: expr.BNot[markedvar.Sym[markedvar.MarkedVar]]{X: cond}, Cons: elseEq},
		}}
	default:
		panic("semantics: unreachable outcome kind")
	}
}
