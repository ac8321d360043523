// Package target parses the argv token grammar of spec.md §4.1/§6
// into structured Targets.
package target

import "github.com/korreman/sway-overfocus/internal/geometry"

// Kind is the container class a Target moves focus among.
type Kind int

const (
	KindSplit Kind = iota
	KindGroup
	KindFloat
	KindOutput
	KindWorkspace
)

// Edge is the behavior when a directional step would leave the
// containing frame.
type Edge int

const (
	EdgeStop Edge = iota
	EdgeWrap
	EdgeInactiveSpill
	EdgeTraverseSpill
)

// Target is one user-supplied movement intent.
type Target struct {
	Kind      Kind
	Direction geometry.Direction
	Edge      Edge
}
