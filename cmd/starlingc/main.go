// Command starlingc drives the Starling core pipeline over an
// already-collated script document.
//
// Usage:
//
//	starlingc <subcommand> [options] [args]
//
// Subcommands:
//
//	collate  validate a Script YAML document's declarative header
//	terms    run the pipeline over a Script and report term counts
//	version  print the build version
package main

import (
	"os"

	"github.com/hashicorp/cli"
)

func main() {
	c := cli.NewCLI("starlingc", version())
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"collate": func() (cli.Command, error) { return &CollateCommand{}, nil },
		"terms":   func() (cli.Command, error) { return &TermsCommand{}, nil },
		"version": func() (cli.Command, error) { return &VersionCommand{}, nil },
	}

	exitStatus, err := c.Run()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
	}
	os.Exit(exitStatus)
}
