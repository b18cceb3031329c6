package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/gogpu/starling/collate"
	"github.com/gogpu/starling/desugar"
	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/syntax"
	"github.com/gogpu/starling/term"
	"github.com/gogpu/starling/view"
)

// Driver runs the core pipeline — desugar (C4), semantics instantiation
// (C6) and term production (C7) — over every named method of a
// collate.Script, the way naga.CompileWithOptions sequences its own
// front-to-back-end stages. Driver holds no per-run state; Run is safe
// to call repeatedly with different scripts.
type Driver struct {
	Config Config
	Logger hclog.Logger
}

// NewDriver builds a Driver. A nil logger defaults to hclog.NewNullLogger(),
// matching the core packages' own preference for staying silent unless a
// caller opts in (spec §2 ambient stack: only the driver and CLI log).
func NewDriver(cfg Config, logger hclog.Logger) *Driver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Driver{Config: cfg, Logger: logger}
}

// MethodResult is one named method's verification terms.
type MethodResult struct {
	Method string
	Terms  []term.Term
}

// Result is a full run's output, one MethodResult per script method, in
// deterministic (sorted) method-name order.
type Result struct {
	Methods []MethodResult
}

// Run desugars, instantiates and produces terms for every method in
// script, against its shared/thread variable context and view prototype
// table, logging each stage's wall-clock duration at debug level.
func (d *Driver) Run(script *collate.Script) (*Result, error) {
	shared, err := script.SharedVariables()
	if err != nil {
		return nil, fmt.Errorf("pipeline: shared variables: %w", err)
	}
	thread, err := script.ThreadVariables()
	if err != nil {
		return nil, fmt.Errorf("pipeline: thread variables: %w", err)
	}
	protos, err := script.Protos()
	if err != nil {
		return nil, fmt.Errorf("pipeline: view protos: %w", err)
	}

	names := make([]string, 0, len(script.Methods))
	for name := range script.Methods {
		names = append(names, name)
	}
	sort.Strings(names)

	result := &Result{Methods: make([]MethodResult, 0, len(names))}
	for _, name := range names {
		mr, err := d.runMethod(name, script.Methods[name], shared, thread, protos, script)
		if err != nil {
			return nil, fmt.Errorf("pipeline: method %q: %w", name, err)
		}
		result.Methods = append(result.Methods, mr)
	}
	return result, nil
}

// runMethod desugars one method's raw block, translates its command
// steps into axioms, and crosses those axioms against the method's goal
// view (script.Goal[name], defaulting to the empty view — the unit goal
// every method satisfies trivially — when the script names none).
//
// declared is rebuilt from ctx.SharedVars/ctx.ThreadVars *after* desugaring,
// not from the pre-desugar shared/thread passed in: FillAndDesugarBlock can
// grow ctx.SharedVars with a fresh okay-Boolean (assert/error, spec §4.3),
// and CollectAxioms/BuildTerms must see that variable or its two-state
// equation (and frame) never get emitted.
func (d *Driver) runMethod(
	name string,
	raw syntax.Block,
	shared, thread []expr.Variable,
	protos map[string]view.Proto,
	script *collate.Script,
) (MethodResult, error) {
	log := d.Logger.Named("pipeline").With("method", name)

	desugarStart := time.Now()
	ctx := desugar.NewContext(shared, thread, protos)
	block := ctx.FillAndDesugarBlock(raw)
	log.Debug("desugared method", "elapsed", time.Since(desugarStart))

	declared := append(append([]expr.Variable(nil), ctx.SharedVars...), ctx.ThreadVars...)

	instantiateStart := time.Now()
	axioms, err := term.CollectAxioms(block, declared, script.Semantics)
	if err != nil {
		return MethodResult{}, fmt.Errorf("collecting axioms: %w", err)
	}
	log.Debug("instantiated semantics", "elapsed", time.Since(instantiateStart), "axioms", len(axioms))

	termStart := time.Now()
	goal := script.Goal[name]
	terms := term.BuildTerms(axioms, goal, declared)
	log.Debug("produced terms", "elapsed", time.Since(termStart), "terms", len(terms))

	return MethodResult{Method: name, Terms: terms}, nil
}
