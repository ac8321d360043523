// Command focusctl is a one-shot CLI that computes a directional
// focus move over the sway/i3 layout tree and issues a focus command.
package main

import (
	"runtime"

	"github.com/korreman/sway-overfocus/internal/cli/build"
	"github.com/korreman/sway-overfocus/internal/cli/cmd"
)

// Build-time variables (set via -ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
