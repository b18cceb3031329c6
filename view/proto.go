package view

import "github.com/gogpu/starling/expr"

// Param is a single (type, name) entry of a view prototype's parameter list.
type Param struct {
	Type expr.Type
	Name string
}

// Proto is a named, typed parameter list declaring a view's shape. The
// optional iterated form carries an iterator-count parameter (the n in a
// family of views view(n; params...)).
type Proto struct {
	Name         string
	Params       []Param
	IsAnonymous  bool
	Iterated     bool
	IterCountVar string // valid iff Iterated
}
