// Package collate defines the shape of an already-collated Starling
// program: the shared/thread variable context, view prototypes, named
// method bodies and primitive semantics map that the pipeline driver
// needs as its input (spec §3's DesugarContext seed plus §6's "input to
// core"). It mirrors the way naga/ir defines TypeInner/ExpressionKind
// without depending on the wgsl front end that produces them — the real
// lexer, parser and collator live outside this module; this package only
// names the data they hand over.
//
// Method bodies and primitive microcode bodies are arbitrary command/
// expression trees with no natural flat document shape, so they are
// populated programmatically by the external collator, not parsed from
// YAML here. The declarative header — variable and view-prototype
// declarations, and the pipeline's search-depth/term-flavor hints — does
// have a flat shape, and is YAML (de)serializable via gopkg.in/yaml.v3.
package collate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/starling/expr"
)

// typeString renders a Type the way a Script document spells it in its
// "type" fields: "int", "bool", or "array(int,4)"/"array(bool,4)".
func typeString(t expr.Type) string {
	if t.Kind != expr.KindArray {
		return t.Kind.String()
	}
	return fmt.Sprintf("array(%s,%d)", t.Elt, t.Length)
}

// parseType parses the inverse of typeString, returning an error naming
// the offending text on anything else.
func parseType(s string) (expr.Type, error) {
	switch s {
	case "int":
		return expr.Int, nil
	case "bool":
		return expr.Bool, nil
	}
	if !strings.HasPrefix(s, "array(") || !strings.HasSuffix(s, ")") {
		return expr.Type{}, fmt.Errorf("collate: unrecognized type %q", s)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "array("), ")")
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return expr.Type{}, fmt.Errorf("collate: malformed array type %q", s)
	}
	var elt expr.Kind
	switch strings.TrimSpace(parts[0]) {
	case "int":
		elt = expr.KindInt
	case "bool":
		elt = expr.KindBool
	default:
		return expr.Type{}, fmt.Errorf("collate: unsupported array element type %q", parts[0])
	}
	length, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return expr.Type{}, fmt.Errorf("collate: malformed array length in %q: %w", s, err)
	}
	return expr.Array(elt, length), nil
}
