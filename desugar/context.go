// Package desugar lowers the syntactic AST (package syntax) into guarded
// views and microcode-ready commands: view desugaring (§4.2), atomic
// desugaring of assert/error (§4.3), and block filling (§4.4). The
// DesugarContext threads through every call, growing monotonically as
// fresh view prototypes and the okay-Boolean are generated.
package desugar

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/view"
)

// Context is the state threaded through desugaring (spec §3 DesugarContext).
// It is not safe for concurrent use — see spec §5: the fresh-name counter
// implicit in its generator methods is shared by every caller.
type Context struct {
	SharedVars []expr.Variable
	ThreadVars []expr.Variable

	// Namespace, when non-empty, prefixes every generated name. It lets two
	// contexts built for independently desugared methods mint fresh names
	// that can never collide once their outputs are merged, without the
	// two contexts ever having to share a counter.
	Namespace string

	LocalLiftView *string // name of the generated Boolean-lifting view, once created
	OkayBool      *string // name of the generated error-tracking Boolean, once created

	GeneratedProtos map[string]view.Proto
	ExistingProtos  map[string]view.Proto
}

// NewContext builds a DesugarContext with the given shared/thread
// variables and pre-existing view prototypes. generatedProtos starts
// empty; okayBool and localLiftView start unset.
func NewContext(sharedVars, threadVars []expr.Variable, existingProtos map[string]view.Proto) *Context {
	existing := make(map[string]view.Proto, len(existingProtos))
	for k, v := range existingProtos {
		existing[k] = v
	}
	return &Context{
		SharedVars:      append([]expr.Variable(nil), sharedVars...),
		ThreadVars:      append([]expr.Variable(nil), threadVars...),
		GeneratedProtos: make(map[string]view.Proto),
		ExistingProtos:  existing,
	}
}

// NewNamespacedContext is NewContext with a random namespace prefix
// (spec: google/uuid-derived) mixed into every fresh name, so the
// returned context's generated protos/variables never collide with
// another method's contexts even before the two are merged together.
func NewNamespacedContext(sharedVars, threadVars []expr.Variable, existingProtos map[string]view.Proto) *Context {
	c := NewContext(sharedVars, threadVars, existingProtos)
	c.Namespace = uuid.NewString()[:8]
	return c
}

// nameTaken reports whether name is already used by an existing or
// generated view prototype — the invariant names in generatedProtos ∪
// existingProtos are unique is maintained by only ever allocating names
// that fail this check.
func (c *Context) nameTaken(name string) bool {
	if _, ok := c.GeneratedProtos[name]; ok {
		return true
	}
	_, ok := c.ExistingProtos[name]
	return ok
}

// freshProtoName returns the smallest "<prefix>_N" not already used by any
// existing or generated prototype.
func (c *Context) freshProtoName(prefix string) string {
	if c.Namespace != "" {
		prefix = c.Namespace + "_" + prefix
	}
	for n := 0; ; n++ {
		candidate := fmt.Sprintf("%s_%d", prefix, n)
		if !c.nameTaken(candidate) {
			return candidate
		}
	}
}

// variableTaken reports whether name is already used by a shared or
// thread variable.
func (c *Context) variableTaken(name string) bool {
	for _, v := range c.SharedVars {
		if v.Name == name {
			return true
		}
	}
	for _, v := range c.ThreadVars {
		if v.Name == name {
			return true
		}
	}
	return false
}

// freshVariableName returns the smallest "<prefix>_N" not already used by
// any shared or thread variable (§4.3: the okay-Boolean's name).
func (c *Context) freshVariableName(prefix string) string {
	if c.Namespace != "" {
		prefix = c.Namespace + "_" + prefix
	}
	for n := 0; ; n++ {
		candidate := fmt.Sprintf("%s_%d", prefix, n)
		if !c.variableTaken(candidate) {
			return candidate
		}
	}
}

// registerProto adds a freshly generated view prototype to GeneratedProtos.
func (c *Context) registerProto(p view.Proto) {
	c.GeneratedProtos[p.Name] = p
}

// ensureLocalLiftView returns the name of the local-lift view, generating
// "__lift_N(bool x)" on first use.
func (c *Context) ensureLocalLiftView() string {
	if c.LocalLiftView != nil {
		return *c.LocalLiftView
	}
	name := c.freshProtoName("__lift")
	c.registerProto(view.Proto{
		Name:   name,
		Params: []view.Param{{Type: expr.Bool, Name: "x"}},
	})
	c.LocalLiftView = &name
	return name
}

// ensureOkayBool returns the name of the error-tracking Boolean,
// generating "__ok_N" and prepending it to SharedVars (type Bool) on
// first use (spec §8 scenario 5: the fresh okay-Boolean is prepended,
// not appended).
func (c *Context) ensureOkayBool() string {
	if c.OkayBool != nil {
		return *c.OkayBool
	}
	name := c.freshVariableName("__ok")
	c.SharedVars = append([]expr.Variable{{Name: name, Type: expr.Bool}}, c.SharedVars...)
	c.OkayBool = &name
	return name
}

// unknownProto generates a fresh "__unknown_N" prototype whose parameters
// are the thread-local variables, in declaration order.
func (c *Context) unknownProto() view.Proto {
	name := c.freshProtoName("__unknown")
	params := make([]view.Param, len(c.ThreadVars))
	for i, v := range c.ThreadVars {
		params[i] = view.Param{Type: v.Type, Name: v.Name}
	}
	p := view.Proto{Name: name, Params: params}
	c.registerProto(p)
	return p
}
