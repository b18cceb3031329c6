// Package serr implements the Error sum of spec §7: every core operation
// returns a result-or-error, and no operation silently recovers except
// simplification, which never fails. Each variant follows the teacher's
// naga/ir.ValidationError shape — a struct with an Error() string method —
// and InstantiateError/TraversalError wrap an inner cause the way
// naga/ir.ResolveExpressionType wraps nested resolution failures, so
// errors.As/errors.Unwrap see through them to the concrete root cause.
package serr

import "fmt"

// MissingDefError reports that a primitive command has no semantic schema.
type MissingDefError struct {
	Prim string
}

func (e *MissingDefError) Error() string {
	return fmt.Sprintf("no semantics defined for primitive %q", e.Prim)
}

// CountMismatchError reports a schema/call argument-count mismatch.
type CountMismatchError struct {
	Prim     string
	Expected int
	Actual   int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("primitive %q: expected %d arguments, got %d", e.Prim, e.Expected, e.Actual)
}

// TypeMismatchError reports that a caller-side expression's type does not
// match the schema parameter it is substituted for.
type TypeMismatchError struct {
	Param      string
	ActualType string
	WantType   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("parameter %q: expected type %s, got %s", e.Param, e.WantType, e.ActualType)
}

// BadSemanticsError reports a malformed primitive schema: an index over a
// non-array, or a double write to the same variable (spec §4.5).
type BadSemanticsError struct {
	Reason string
}

func (e *BadSemanticsError) Error() string {
	return fmt.Sprintf("bad semantics: %s", e.Reason)
}

// FreeVarInSubError reports a schema variable absent from a substitution map.
type FreeVarInSubError struct {
	Param string
}

func (e *FreeVarInSubError) Error() string {
	return fmt.Sprintf("free variable %q in substitution", e.Param)
}

// InstantiateError wraps a failure encountered while instantiating a
// specific primitive's semantics.
type InstantiateError struct {
	Prim  string
	Inner error
}

func (e *InstantiateError) Error() string {
	return fmt.Sprintf("instantiating %q: %v", e.Prim, e.Inner)
}

func (e *InstantiateError) Unwrap() error { return e.Inner }

// TraversalError wraps a failure raised by a generic tree-walker, which
// may recursively embed another semantic error.
type TraversalError struct {
	Inner error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("traversal: %v", e.Inner)
}

func (e *TraversalError) Unwrap() error { return e.Inner }
