package collate

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/starling/expr"
	"github.com/gogpu/starling/semantics"
	"github.com/gogpu/starling/syntax"
	"github.com/gogpu/starling/view"
)

// VarDecl is a (name, type) declaration the way a Script document spells
// it — the YAML-friendly stand-in for expr.Variable / view.Param, whose
// Type field is a Go struct rather than a scalar a document can hold.
type VarDecl struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// ToVariable converts a declaration to its runtime form.
func (d VarDecl) ToVariable() (expr.Variable, error) {
	t, err := parseType(d.Type)
	if err != nil {
		return expr.Variable{}, err
	}
	return expr.Variable{Name: d.Name, Type: t}, nil
}

// VariableDecl is the inverse of ToVariable.
func VariableDecl(v expr.Variable) VarDecl {
	return VarDecl{Name: v.Name, Type: typeString(v.Type)}
}

// ToParam converts a declaration to a view.Param.
func (d VarDecl) ToParam() (view.Param, error) {
	t, err := parseType(d.Type)
	if err != nil {
		return view.Param{}, err
	}
	return view.Param{Name: d.Name, Type: t}, nil
}

// ParamDecl is the inverse of ToParam.
func ParamDecl(p view.Param) VarDecl {
	return VarDecl{Name: p.Name, Type: typeString(p.Type)}
}

// ViewProtoDecl is the document shape of a view.Proto.
type ViewProtoDecl struct {
	Name         string    `yaml:"name"`
	Params       []VarDecl `yaml:"params"`
	IsAnonymous  bool      `yaml:"anonymous,omitempty"`
	Iterated     bool      `yaml:"iterated,omitempty"`
	IterCountVar string    `yaml:"iter_count_var,omitempty"`
}

// ToProto converts a declaration to its runtime form.
func (d ViewProtoDecl) ToProto() (view.Proto, error) {
	params := make([]view.Param, len(d.Params))
	for i, pd := range d.Params {
		p, err := pd.ToParam()
		if err != nil {
			return view.Proto{}, fmt.Errorf("collate: view proto %q param %d: %w", d.Name, i, err)
		}
		params[i] = p
	}
	return view.Proto{
		Name:         d.Name,
		Params:       params,
		IsAnonymous:  d.IsAnonymous,
		Iterated:     d.Iterated,
		IterCountVar: d.IterCountVar,
	}, nil
}

// ProtoDecl is the inverse of ToProto.
func ProtoDecl(p view.Proto) ViewProtoDecl {
	params := make([]VarDecl, len(p.Params))
	for i, pp := range p.Params {
		params[i] = ParamDecl(pp)
	}
	return ViewProtoDecl{
		Name:         p.Name,
		Params:       params,
		IsAnonymous:  p.IsAnonymous,
		Iterated:     p.Iterated,
		IterCountVar: p.IterCountVar,
	}
}

// Script is the already-collated program the pipeline driver consumes:
// the shared/thread variable context and view prototype table a
// DesugarContext is seeded with, plus the named method bodies and
// primitive semantics map the rest of the pipeline walks, and a
// search-depth/term-flavor hint for the driver itself.
//
// Methods, Semantics and Goal are excluded from YAML (yaml:"-"): they are
// populated by the external collator calling into this package's Go API
// directly, not by
// parsing a document (see the package doc comment).
type Script struct {
	SharedVars           []VarDecl       `yaml:"shared_vars"`
	ThreadVars           []VarDecl       `yaml:"thread_vars"`
	ViewProtos           []ViewProtoDecl `yaml:"view_protos"`
	SearchDepth          int             `yaml:"search_depth"`
	EmitGrasshopperTerms bool            `yaml:"emit_grasshopper_terms"`

	Methods   map[string]syntax.Block      `yaml:"-"`
	Semantics semantics.PrimSemanticsMap   `yaml:"-"`
	Goal      map[string]view.GView[string] `yaml:"-"`
}

// LoadScript decodes a Script's declarative header from YAML. The
// returned Script's Methods/Semantics/Goal are nil — callers attach them
// programmatically afterward.
func LoadScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("collate: decoding script: %w", err)
	}
	return &s, nil
}

// Save encodes a Script's declarative header as YAML.
func (s *Script) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("collate: encoding script: %w", err)
	}
	return nil
}

// Declared returns the shared and thread variables together, in
// shared-then-thread order, converted to their runtime form.
func (s *Script) Declared() ([]expr.Variable, error) {
	out := make([]expr.Variable, 0, len(s.SharedVars)+len(s.ThreadVars))
	for _, d := range s.SharedVars {
		v, err := d.ToVariable()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	for _, d := range s.ThreadVars {
		v, err := d.ToVariable()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SharedVariables converts SharedVars alone to runtime form.
func (s *Script) SharedVariables() ([]expr.Variable, error) {
	return convertVars(s.SharedVars)
}

// ThreadVariables converts ThreadVars alone to runtime form.
func (s *Script) ThreadVariables() ([]expr.Variable, error) {
	return convertVars(s.ThreadVars)
}

func convertVars(decls []VarDecl) ([]expr.Variable, error) {
	out := make([]expr.Variable, len(decls))
	for i, d := range decls {
		v, err := d.ToVariable()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Protos converts ViewProtos to the map shape view.Proto consumers (and
// desugar.NewContext) expect, keyed by prototype name.
func (s *Script) Protos() (map[string]view.Proto, error) {
	out := make(map[string]view.Proto, len(s.ViewProtos))
	for _, d := range s.ViewProtos {
		p, err := d.ToProto()
		if err != nil {
			return nil, err
		}
		out[p.Name] = p
	}
	return out, nil
}
