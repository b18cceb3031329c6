// Package syntax defines the minimal shape of the upstream AST that the
// (external, out-of-scope) lexer/parser/collator hand to the core: view
// expressions, atomic commands, and blocks of commands interleaved with
// view annotations. Spec §3's FullBlock<V, C> / FullCommand are generic
// over the view representation V and command representation C; this
// package fixes V = Annotation and C = Command, the concrete "raw" instance
// the desugarer (package desugar) consumes. The desugarer produces the
// second concrete instance — desugar.Block / desugar.Command, with views
// lowered to guarded view multisets — see that package's doc comment.
package syntax

import "github.com/gogpu/starling/expr"

// Var is the variable-reference type used by syntax-level expressions:
// a plain name, not yet marked with a pre/post/intermediate/goal role.
type Var = string

// ViewExpr is the syntactic view grammar consumed by desugaring (§4.2).
type ViewExpr interface {
	viewExpr()
}

// VUnit is the empty view (desugars to the empty GView).
type VUnit struct{}

func (VUnit) viewExpr() {}

// VFalsehood is the impossible view (desugars as a lifted false).
type VFalsehood struct{}

func (VFalsehood) viewExpr() {}

// VLocal locally lifts a Boolean expression into view position.
type VLocal struct{ Expr expr.BoolExpr[Var] }

func (VLocal) viewExpr() {}

// VFunc applies a view prototype by name.
type VFunc struct {
	Name string
	Args []expr.Expr[Var]
}

func (VFunc) viewExpr() {}

// VJoin is the separating conjunction of two views.
type VJoin struct{ A, B ViewExpr }

func (VJoin) viewExpr() {}

// VIf conditionally selects between two views. Else == nil means the
// default Unit view.
type VIf struct {
	Cond expr.BoolExpr[Var]
	Then ViewExpr
	Else ViewExpr
}

func (VIf) viewExpr() {}

// Annotation is a view position's marking: whether it is a mandatory
// obligation, an advisory (questioned) one, or wholly unknown and left for
// the desugarer to fill with a fresh view.
type Annotation interface {
	annotation() bool // true iff mandatory
}

// Unmarked is a plain, mandatory view annotation {| v |}.
type Unmarked struct{ View ViewExpr }

func (Unmarked) annotation() bool { return true }

// Questioned is a mandatory-desugaring, advisory-in-spirit annotation
// {| v? |} — per spec §4.2 it desugars exactly like Unmarked.
type Questioned struct{ View ViewExpr }

func (Questioned) annotation() bool { return true }

// Unknown is a totally unspecified annotation {| ? |}: the desugarer fills
// it with a fresh `__unknown_N` prototype over the thread-local variables.
type Unknown struct{}

func (Unknown) annotation() bool { return false }

// PrimCommand is a primitive command application: a named operation over
// argument and result expressions (spec §3).
type PrimCommand struct {
	Name    string
	Args    []expr.Expr[Var]
	Results []expr.Expr[Var]
}

// Atomic is the pre-lowering atomic-command grammar (spec §4.3).
type Atomic interface {
	atomic()
}

// AAssert asserts a Boolean expression holds.
type AAssert struct{ Expr expr.BoolExpr[Var] }

func (AAssert) atomic() {}

// AError unconditionally signals an error (spec: AError -> AAssert(False)).
type AError struct{}

func (AError) atomic() {}

// APrim passes a primitive command through unchanged.
type APrim struct{ Prim PrimCommand }

func (APrim) atomic() {}

// ACond conditionally executes one of two atomic lists. False == nil means
// an empty false branch.
type ACond struct {
	Cond  expr.BoolExpr[Var]
	True  []Atomic
	False []Atomic
}

func (ACond) atomic() {}

// Command is the raw, pre-desugar structured-command grammar a block's
// positions carry between view annotations (spec §3 FullCommand).
type Command interface {
	command()
}

// CPrim is a set of atomics executed together as one primitive step
// (spec's FPrim(primSet)) — e.g. the contents of one atomic block `< ... >`.
type CPrim struct{ Prims []Atomic }

func (CPrim) command() {}

// CIf is structured if/else. Else == nil means no else branch.
type CIf struct {
	Cond Atomic0Cond
	Then Block
	Else *Block
}

func (CIf) command() {}

// Atomic0Cond is the Boolean guard of a structured control construct —
// named distinctly from Atomic since control conditions are plain
// expressions, never assertions or primitives.
type Atomic0Cond = expr.BoolExpr[Var]

// CWhile is a structured pre-tested loop.
type CWhile struct {
	Cond Atomic0Cond
	Body Block
}

func (CWhile) command() {}

// CDoWhile is a structured post-tested loop.
type CDoWhile struct {
	Body Block
	Cond Atomic0Cond
}

func (CDoWhile) command() {}

// CBlocks is parallel composition of independent blocks.
type CBlocks struct{ Blocks []Block }

func (CBlocks) command() {}

// Elem is one position in a raw block: either a view annotation or a
// command. A well-formed block alternates views and commands, but the
// capping pass (§4.4) accepts any mix and inserts the missing views.
type Elem interface {
	elem()
}

// EView is a view-annotation position.
type EView struct{ Annotation Annotation }

func (EView) elem() {}

// ECmd is a command position.
type ECmd struct{ Cmd Command }

func (ECmd) elem() {}

// Block is the raw, uncapped sequence of view/command positions produced
// by the parser for one method or atomic-block body.
type Block []Elem
