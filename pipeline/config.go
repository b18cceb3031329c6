// Package pipeline wires the core C4→C6→C7 stages (desugar, semantics
// instantiation, term production) into a single driver consuming a
// collate.Script, the way naga's root package wires parse→lower→
// validate→generate behind CompileWithOptions. The core packages stay
// pure; this package owns the I/O-adjacent concerns — structured logging
// and YAML-backed configuration — naga reserves for its own root file
// and cmd/nagac.
package pipeline

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the driver's tunable behavior: how deep a bounded search for
// a satisfying term is expected to go (a hint passed through to the
// external SMT/GRASShopper collaborator, not consulted by the core), and
// which term flavor the run is marked for. Driver.Run reads neither
// field: it produces the same terms whatever EmitGrasshopperTerms says.
type Config struct {
	SearchDepth          int  `yaml:"search_depth"`
	EmitGrasshopperTerms bool `yaml:"emit_grasshopper_terms"`
}

// DefaultConfig is the configuration callers pass to NewDriver when they
// have no explicit one (the terms subcommand takes its -depth default
// from it); NewDriver itself does not substitute it.
var DefaultConfig = Config{SearchDepth: 8}

// LoadConfig decodes a Config from YAML.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("pipeline: decoding config: %w", err)
	}
	return c, nil
}
