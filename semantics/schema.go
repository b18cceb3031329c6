// Package semantics implements primitive-command instantiation and the
// translation of a desugared atomic routine into a two-state Boolean
// predicate over Sym<MarkedVar> (spec §4.6, §4.7): the semantics
// instantiator (C6).
package semantics

import (
	"github.com/hashicorp/go-multierror"

	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/microcode"
	"github.com/gogpu/starling/serr"
	"github.com/gogpu/starling/subst"
	"github.com/gogpu/starling/syntax"
)

// PrimSemantics is a primitive command's schema: formal parameter and
// result slots, named the way a function signature is, and a microcode
// body expressed purely in terms of those formal names.
type PrimSemantics struct {
	Params  []expr.Variable
	Results []expr.Variable
	Body    []microcode.Microcode[microcode.LValue[string], string]
}

// PrimSemanticsMap is the set of known primitive schemas, keyed by name.
type PrimSemanticsMap map[string]PrimSemantics

// Instantiate substitutes a call site's actual arguments and result
// lvalues into schema, producing the assignments and assumptions the call
// contributes (spec §4.6). Argument count/type mismatches and result
// lvalues of unsupported shape are reported, not panicked.
func Instantiate(schema PrimSemantics, call syntax.PrimCommand) ([]microcode.Assign[microcode.LValue[string], string], []expr.BoolExpr[string], error) {
	if len(call.Args) != len(schema.Params) {
		return nil, nil, &serr.CountMismatchError{Prim: call.Name, Expected: len(schema.Params), Actual: len(call.Args)}
	}
	if len(call.Results) != len(schema.Results) {
		return nil, nil, &serr.CountMismatchError{Prim: call.Name, Expected: len(schema.Results), Actual: len(call.Results)}
	}

	var errs *multierror.Error

	argMap := make(map[string]expr.Expr[string], len(schema.Params))
	for i, p := range schema.Params {
		actual := call.Args[i]
		if !expr.TypeOf(actual).Equal(p.Type) {
			errs = multierror.Append(errs, &serr.TypeMismatchError{Param: p.Name, ActualType: expr.TypeOf(actual).String(), WantType: p.Type.String()})
			continue
		}
		argMap[p.Name] = actual
	}

	lvMap := make(map[string]microcode.LValue[string], len(schema.Results))
	for i, r := range schema.Results {
		lv, err := exprToLValue(call.Results[i])
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		lvMap[r.Name] = lv
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, nil, err
	}

	mappers := argMappers(argMap)

	var assigns []microcode.Assign[microcode.LValue[string], string]
	var assumes []expr.BoolExpr[string]
	for _, mc := range schema.Body {
		switch m := mc.(type) {
		case microcode.Assign[microcode.LValue[string], string]:
			lv, ok := lvMap[m.LV.Var]
			if !ok {
				return nil, nil, &serr.FreeVarInSubError{Param: m.LV.Var}
			}
			a := microcode.Assign[microcode.LValue[string], string]{LV: lv}
			if m.RVOk {
				a.RV = subst.ExprVal(subst.Root(), m.RV, mappers)
				a.RVOk = true
			}
			assigns = append(assigns, a)

		case microcode.Assume[microcode.LValue[string], string]:
			assumes = append(assumes, subst.Bool(subst.Root(), m.Cond, mappers))

		case microcode.Branch[microcode.LValue[string], string]:
			return nil, nil, &serr.BadSemanticsError{Reason: "branch microcode in a primitive schema body is not supported"}
		}
	}
	return assigns, assumes, nil
}

// argMappers builds the subst.Mappers that replace a schema's formal
// parameter names with the call site's actual expressions. Names outside
// argMap are left alone — they can only be the schema's own result
// placeholders, which never appear in read position.
func argMappers(argMap map[string]expr.Expr[string]) subst.Mappers[string] {
	return subst.Mappers[string]{
		Bool: func(_ subst.Ctx, e expr.BoolExpr[string]) (expr.BoolExpr[string], bool) {
			v, ok := e.(expr.BVar[string])
			if !ok {
				return nil, false
			}
			actual, ok := argMap[v.Var]
			if !ok {
				return nil, false
			}
			return actual.(expr.EBool[string]).X, true
		},
		Int: func(_ subst.Ctx, e expr.IntExpr[string]) (expr.IntExpr[string], bool) {
			v, ok := e.(expr.IVar[string])
			if !ok {
				return nil, false
			}
			actual, ok := argMap[v.Var]
			if !ok {
				return nil, false
			}
			return actual.(expr.EInt[string]).X, true
		},
		Array: func(_ subst.Ctx, e expr.ArrayExpr[string]) (expr.ArrayExpr[string], bool) {
			v, ok := e.(expr.AVar[string])
			if !ok {
				return nil, false
			}
			actual, ok := argMap[v.Var]
			if !ok {
				return nil, false
			}
			return actual.(expr.EArray[string]).X, true
		},
	}
}

// exprToLValue recovers the assignment target an actual result expression
// denotes: a bare variable reference, or a single array-index step into
// one. Anything else is not a valid lvalue shape.
func exprToLValue(e expr.Expr[string]) (microcode.LValue[string], error) {
	switch x := e.(type) {
	case expr.EInt[string]:
		switch iv := x.X.(type) {
		case expr.IVar[string]:
			return microcode.LValue[string]{Var: iv.Var}, nil
		case expr.IIdx[string]:
			av, ok := iv.Arr.(expr.AVar[string])
			if !ok {
				return microcode.LValue[string]{}, &serr.BadSemanticsError{Reason: "array index lvalue base is not a plain variable"}
			}
			return microcode.LValue[string]{Var: av.Var, Path: []expr.IntExpr[string]{iv.Index}}, nil
		}
	case expr.EBool[string]:
		switch bv := x.X.(type) {
		case expr.BVar[string]:
			return microcode.LValue[string]{Var: bv.Var}, nil
		case expr.BIdx[string]:
			av, ok := bv.Arr.(expr.AVar[string])
			if !ok {
				return microcode.LValue[string]{}, &serr.BadSemanticsError{Reason: "array index lvalue base is not a plain variable"}
			}
			return microcode.LValue[string]{Var: av.Var, Path: []expr.IntExpr[string]{bv.Index}}, nil
		}
	case expr.EArray[string]:
		if av, ok := x.X.(expr.AVar[string]); ok {
			return microcode.LValue[string]{Var: av.Var}, nil
		}
	}
	return microcode.LValue[string]{}, &serr.BadSemanticsError{Reason: "result expression is not a valid assignment target"}
}
