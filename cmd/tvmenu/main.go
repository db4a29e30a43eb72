// Command tvmenu is a tile launcher for TVs and couch setups.
package main

import (
	"runtime"

	"github.com/bnema/tvmenu/internal/cli/cmd"
	"github.com/bnema/tvmenu/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Pass build info to CLI
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
