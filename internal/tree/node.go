// Package tree is the in-memory representation of the window
// manager's container tree and the predicates used to match it
// against user-supplied targets.
package tree

import "github.com/korreman/sway-overfocus/internal/geometry"

// Kind classifies what a container fundamentally is.
type Kind int

const (
	KindRoot Kind = iota
	KindOutput
	KindWorkspace
	KindSplit
	KindGroup
	KindFloat
	KindLeaf
)

// Layout describes how a container arranges its children.
type Layout int

const (
	LayoutNone Layout = iota
	LayoutSplitH
	LayoutSplitV
	LayoutTabbed
	LayoutStacked
	LayoutFloating
)

// Node is one container in the tree. Trees are built once per
// invocation (see Tree, below) and never mutated afterward.
type Node struct {
	ID      int64
	Name    string
	Kind    Kind
	Layout  Layout
	Rect    geometry.Rect
	Focused bool

	Children   []int // indices into Tree.Nodes, tiled children
	Floats     []int // indices into Tree.Nodes, floating children (workspaces only)
	FocusOrder []int64

	ParentIdx int // -1 for the root
}

// Rectangle returns the node's rectangle as a geometry.Rect.
func (n *Node) Rectangle() geometry.Rect { return n.Rect }

// IsLeaf reports whether n has no children reachable via the tiled or
// floating relationship.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0 && len(n.Floats) == 0
}

// MatchesSplit reports whether n is a split container.
func (n *Node) MatchesSplit() bool {
	return n.Layout == LayoutSplitH || n.Layout == LayoutSplitV
}

// MatchesGroup reports whether n is a tabbed or stacked container.
func (n *Node) MatchesGroup() bool {
	return n.Layout == LayoutTabbed || n.Layout == LayoutStacked
}

// SplitAxis returns the axis a split or group container lays its
// children out along, per spec.md §4.2: horizontal-split/tabbed use
// l/r, vertical-split/stacked use u/d.
func (n *Node) SplitAxis() (geometry.Axis, bool) {
	switch n.Layout {
	case LayoutSplitH, LayoutTabbed:
		return geometry.Horizontal, true
	case LayoutSplitV, LayoutStacked:
		return geometry.Vertical, true
	default:
		return 0, false
	}
}
