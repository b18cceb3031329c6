package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/starling/collate"
)

// CollateCommand validates a Script document's declarative header
// (shared/thread variables, view prototypes) — the part this module
// reads from YAML; method bodies and primitive semantics are the
// external collator's job to attach programmatically (see package
// collate's doc comment).
type CollateCommand struct{}

func (c *CollateCommand) Synopsis() string { return "Validate a Script document's declarative header" }

func (c *CollateCommand) Help() string {
	return "Usage: starlingc collate <script.yaml>\n\n" +
		"Parses a Script document's shared/thread variable and view\n" +
		"prototype declarations and reports what it found."
}

func (c *CollateCommand) Run(args []string) int {
	fs := flag.NewFlagSet("collate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: no script file specified")
		fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
		return 1
	}
	defer f.Close()

	script, err := collate.LoadScript(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing script: %v\n", err)
		return 1
	}

	shared, err := script.SharedVariables()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	thread, err := script.ThreadVariables()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	protos, err := script.Protos()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("%d shared var(s), %d thread var(s), %d view prototype(s), search depth %d\n",
		len(shared), len(thread), len(protos), script.SearchDepth)
	return 0
}
