package microcode

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/serr"
)

// WholeAssign is the post-normalization form: a variable paired with its new
// value, or an unset RVOk meaning the variable is havoced.
type WholeAssign[V comparable] struct {
	Var  V
	RV   expr.Expr[V]
	RVOk bool
}

type indexEntry[V comparable] struct {
	idx expr.IntExpr[V]
	rv  expr.Expr[V]
	ok  bool
}

type write[V comparable] struct {
	isEntire bool
	val      expr.Expr[V]
	valOk    bool
	indices  []indexEntry[V]
}

// Normalize implements spec §4.5: given an ordered list of (possibly
// array-indexed) assignments to a set of variables, it builds a per-variable
// write-map and folds array-index writes into Upd cascades, yielding one
// whole-variable assignment per touched variable, in first-touch order.
// Writing the same location twice, or indexing through an already-whole
// write, is a BadSemanticsError (a malformed primitive schema, not a user
// error reachable from well-typed input). varType resolves a variable's
// declared Type, needed to reconstruct the element kind/length of an
// indexed write's Upd cascade.
func Normalize[V comparable](assigns []Assign[LValue[V], V], varType func(V) expr.Type) ([]WholeAssign[V], error) {
	order := make([]V, 0, len(assigns))
	seen := make(map[V]bool, len(assigns))
	writes := make(map[V]*write[V], len(assigns))
	bad := make(map[V]bool, len(assigns))

	var errs *multierror.Error
	for _, a := range assigns {
		v := a.LV.Var
		if bad[v] {
			// Already reported a conflict for this variable; further
			// writes to it would only cascade duplicate complaints.
			continue
		}
		if !seen[v] {
			seen[v] = true
			order = append(order, v)
		}
		var rv expr.Expr[V]
		if a.RVOk {
			rv = a.RV
		}
		w, err := insert(writes[v], a.LV.Path, rv, a.RVOk)
		if err != nil {
			errs = multierror.Append(errs, err)
			bad[v] = true
			continue
		}
		writes[v] = w
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	out := make([]WholeAssign[V], 0, len(order))
	for _, v := range order {
		w := writes[v]
		out = append(out, resolve(v, w, varType))
	}
	return out, nil
}

func insert[V comparable](w *write[V], path []expr.IntExpr[V], rv expr.Expr[V], ok bool) (*write[V], error) {
	switch len(path) {
	case 0:
		if w != nil {
			return nil, &serr.BadSemanticsError{Reason: "double write to the same location"}
		}
		return &write[V]{isEntire: true, val: rv, valOk: ok}, nil

	case 1:
		if w == nil {
			w = &write[V]{}
		}
		if w.isEntire {
			return nil, &serr.BadSemanticsError{Reason: "indexed write over an already-whole assignment"}
		}
		for i := range w.indices {
			if expr.IntEqual(w.indices[i].idx, path[0]) {
				return nil, &serr.BadSemanticsError{Reason: "double write to the same array index"}
			}
		}
		w.indices = append(w.indices, indexEntry[V]{idx: path[0], rv: rv, ok: ok})
		return w, nil

	default:
		return nil, &serr.BadSemanticsError{Reason: fmt.Sprintf("unsupported array index path depth %d", len(path))}
	}
}

func resolve[V comparable](v V, w *write[V], varType func(V) expr.Type) WholeAssign[V] {
	if w == nil {
		return WholeAssign[V]{Var: v}
	}
	if w.isEntire {
		return WholeAssign[V]{Var: v, RV: w.val, RVOk: w.valOk}
	}

	t := varType(v)
	cur := expr.ArrayExpr[V](expr.AVar[V]{Var: v})
	havoc := false
	for _, e := range w.indices {
		if !e.ok {
			havoc = true
			continue
		}
		cur = expr.AUpd[V]{Arr: cur, Index: e.idx, Val: e.rv}
	}
	if havoc {
		return WholeAssign[V]{Var: v}
	}
	return WholeAssign[V]{Var: v, RV: expr.EArray[V]{Elt: t.Elt, Length: t.Length, X: cur}, RVOk: true}
}
