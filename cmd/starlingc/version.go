package main

import (
	"fmt"
	"runtime/debug"
)

// version returns the module version from build info, mirroring nagac's
// own fallback-to-"dev" behavior when built without module metadata.
func version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}

// VersionCommand prints the build version.
type VersionCommand struct{}

func (c *VersionCommand) Help() string     { return "Print the starlingc build version." }
func (c *VersionCommand) Synopsis() string { return "Print the build version" }

func (c *VersionCommand) Run(args []string) int {
	fmt.Printf("starlingc version %s\n", version())
	return 0
}
