//go:build !unix

package ipc

import "os/exec"

// setProcAttr is a no-op on non-unix platforms; sway and i3 are
// Linux/BSD-only so this path only matters for `go vet`/cross-builds.
func setProcAttr(cmd *exec.Cmd) {}
