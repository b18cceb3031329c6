// Package markedvar implements the variable-marking discipline (§3 "MarkedVar")
// used to tag a Variable with its role in a two-state translation — pre-state,
// post-state, an intermediate composition stage, or membership in a goal
// view — and Sym[V], the symbolic-function wrapper that lets Starling carry
// opaque predicates through traversals it cannot interpret.
package markedvar

import (
	"fmt"

	"github.com/gogpu/starling/expr"
)

// Role identifies which state a MarkedVar refers to.
type Role uint8

const (
	RoleUnmarked Role = iota
	RoleBefore
	RoleAfter
	RoleIntermediate
	RoleGoal
)

// MarkedVar tags a Variable with its role. Every MarkedVar refers back to
// exactly one expr.Variable.
type MarkedVar struct {
	Role  Role
	Stage int // valid iff Role == RoleIntermediate (composition stage) or RoleGoal (goal index)
	Var   expr.Variable
}

// Unmarked returns an untagged reference to v.
func Unmarked(v expr.Variable) MarkedVar { return MarkedVar{Role: RoleUnmarked, Var: v} }

// Before returns a pre-state reference to v.
func Before(v expr.Variable) MarkedVar { return MarkedVar{Role: RoleBefore, Var: v} }

// After returns a post-state reference to v.
func After(v expr.Variable) MarkedVar { return MarkedVar{Role: RoleAfter, Var: v} }

// Intermediate returns a reference to v at composition stage n.
func Intermediate(n int, v expr.Variable) MarkedVar {
	return MarkedVar{Role: RoleIntermediate, Stage: n, Var: v}
}

// Goal returns a reference to v as belonging to the n-th goal view.
func Goal(n int, v expr.Variable) MarkedVar {
	return MarkedVar{Role: RoleGoal, Stage: n, Var: v}
}

// String renders a MarkedVar the way diagnostics print it, e.g. "x!before",
// "x!after", "x!2", "x!goal3".
func (m MarkedVar) String() string {
	switch m.Role {
	case RoleBefore:
		return m.Var.Name + "!before"
	case RoleAfter:
		return m.Var.Name + "!after"
	case RoleIntermediate:
		return fmt.Sprintf("%s!%d", m.Var.Name, m.Stage)
	case RoleGoal:
		return fmt.Sprintf("%s!goal%d", m.Var.Name, m.Stage)
	default:
		return m.Var.Name
	}
}

// Equal reports whether two MarkedVars name the same role over the same
// underlying variable.
func (m MarkedVar) Equal(o MarkedVar) bool {
	return m.Role == o.Role && m.Stage == o.Stage && m.Var.Name == o.Var.Name && m.Var.Type.Equal(o.Var.Type)
}
