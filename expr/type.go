// Package expr defines Starling's typed expression algebra: integer, Boolean
// and array expressions over a generic variable type, a sound simplifier,
// and the helpers (variable collection, stage counters) the rest of the
// pipeline builds on.
package expr

import "fmt"

// Kind identifies the base type of a Starling value.
type Kind uint8

const (
	KindInt Kind = iota
	KindBool
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Type is a Starling value type: Int, Bool, or Array(eltType, length).
// Element types are scalar (Int or Bool) — the surface language and
// collator (external to the core) never produce arrays of arrays. Type is
// a plain value, not pointer-linked, so it is safe to use as part of a
// comparable key (MarkedVar embeds a Variable, which embeds a Type).
type Type struct {
	Kind   Kind
	Elt    Kind // valid iff Kind == KindArray; the scalar element kind
	Length int  // valid iff Kind == KindArray
}

// Int is the scalar integer type.
var Int = Type{Kind: KindInt}

// Bool is the scalar Boolean type.
var Bool = Type{Kind: KindBool}

// Array builds an array type of the given scalar element kind and length.
func Array(elt Kind, length int) Type {
	return Type{Kind: KindArray, Elt: elt, Length: length}
}

// Equal reports whether two types are structurally identical.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind != KindArray {
		return true
	}
	return t.Elt == o.Elt && t.Length == o.Length
}

func (t Type) String() string {
	switch t.Kind {
	case KindArray:
		return fmt.Sprintf("array(%s, %d)", t.Elt, t.Length)
	default:
		return t.Kind.String()
	}
}

// Variable is a named slot with a base type.
type Variable struct {
	Name string
	Type Type
}
