package tree

import "fmt"

// Tree is a flat arena of Nodes, indexed by position, with parent
// back-pointers instead of an owning pointer tree (spec.md §9: "an
// arena+indices layout gives O(1) ancestor access without ownership
// ambiguity").
type Tree struct {
	Nodes   []Node
	Focused int // index of the single focused node, or -1
}

// ErrNoFocus indicates the tree claims no node is focused.
var ErrNoFocus = fmt.Errorf("no focused node in tree")

// ErrMultipleFocus indicates more than one node claims focus.
var ErrMultipleFocus = fmt.Errorf("more than one focused node in tree")

// Validate checks the invariants spec.md §3 requires of a tree
// snapshot: exactly one focused node.
func (t *Tree) Validate() error {
	count := 0
	idx := -1
	for i := range t.Nodes {
		if t.Nodes[i].Focused {
			count++
			idx = i
		}
	}
	switch {
	case count == 0:
		return ErrNoFocus
	case count > 1:
		return ErrMultipleFocus
	}
	t.Focused = idx
	return nil
}

// Node returns a pointer to the node at idx.
func (t *Tree) Node(idx int) *Node {
	return &t.Nodes[idx]
}

// Ancestors returns the chain of ancestor indices of idx, nearest
// first, not including idx itself.
func (t *Tree) Ancestors(idx int) []int {
	var out []int
	cur := t.Nodes[idx].ParentIdx
	for cur != -1 {
		out = append(out, cur)
		cur = t.Nodes[cur].ParentIdx
	}
	return out
}

// ChildOnPathTo returns the index of ancestorIdx's direct child that
// is itself an ancestor of (or equal to) idx.
func (t *Tree) ChildOnPathTo(ancestorIdx, idx int) (int, bool) {
	cur := idx
	for cur != -1 {
		if t.Nodes[cur].ParentIdx == ancestorIdx {
			return cur, true
		}
		cur = t.Nodes[cur].ParentIdx
	}
	return -1, false
}

// IndexOfChild returns the position of childIdx within parentIdx's
// tiled Children slice.
func (t *Tree) IndexOfChild(parentIdx, childIdx int) (int, bool) {
	for i, c := range t.Nodes[parentIdx].Children {
		if c == childIdx {
			return i, true
		}
	}
	return -1, false
}

// WorkspaceOf returns the index of the nearest workspace ancestor of
// idx, or -1 if none (idx is itself at or above output level).
func (t *Tree) WorkspaceOf(idx int) int {
	cur := idx
	for cur != -1 {
		if t.Nodes[cur].Kind == KindWorkspace {
			return cur
		}
		cur = t.Nodes[cur].ParentIdx
	}
	return -1
}

// OutputOf returns the index of the nearest output ancestor of idx,
// or -1 if none.
func (t *Tree) OutputOf(idx int) int {
	cur := idx
	for cur != -1 {
		if t.Nodes[cur].Kind == KindOutput {
			return cur
		}
		cur = t.Nodes[cur].ParentIdx
	}
	return -1
}

// IsUnderFloats reports whether idx is reachable from workspaceIdx's
// floating list rather than its tiled children.
func (t *Tree) IsUnderFloats(workspaceIdx, idx int) bool {
	ws := &t.Nodes[workspaceIdx]
	cur := idx
	for cur != -1 && cur != workspaceIdx {
		parent := t.Nodes[cur].ParentIdx
		if parent == workspaceIdx {
			for _, f := range ws.Floats {
				if f == cur {
					return true
				}
			}
			return false
		}
		cur = parent
	}
	return false
}

// DescentPolicy selects how Descend picks a leaf when landing on a
// non-leaf node.
type DescentPolicy int

const (
	// DescendFocusOrder follows the most-recently-focused child chain.
	DescendFocusOrder DescentPolicy = iota
	// DescendGeometric picks, at each level, the child whose rect is
	// closest to a reference rect (used only for the first step after
	// a traverse-spill or traverse-edge output jump, per spec.md §4.4).
	DescendGeometric
)

// Descend returns the leaf reached from idx by repeatedly choosing a
// child per policy, per spec.md's descend(N) definition. ref is only
// consulted when policy is DescendGeometric, and stays fixed at the
// triggering target's original focus rect for every level of the
// walk (spec.md §4.4: geometric descent compares each level's
// candidates against "F's rectangle", not against the previous
// level's winner).
func (t *Tree) Descend(idx int, policy DescentPolicy, ref *Node) int {
	cur := idx
	for {
		n := &t.Nodes[cur]
		if n.IsLeaf() {
			return cur
		}

		var next int
		var ok bool
		if policy == DescendGeometric && ref != nil {
			next, ok = t.closestChild(cur, ref)
		} else {
			next, ok = t.focusOrderChild(cur)
		}
		if !ok {
			return cur
		}
		cur = next
	}
}

// focusOrderChild returns the first id in n.FocusOrder that is present
// among n's tiled children or floats.
func (t *Tree) focusOrderChild(idx int) (int, bool) {
	n := &t.Nodes[idx]
	members := make(map[int64]int, len(n.Children)+len(n.Floats))
	for _, c := range n.Children {
		members[t.Nodes[c].ID] = c
	}
	for _, f := range n.Floats {
		members[t.Nodes[f].ID] = f
	}
	for _, id := range n.FocusOrder {
		if childIdx, ok := members[id]; ok {
			return childIdx, true
		}
	}
	// No focus_order entry matched; fall back to the first available
	// child so descent always makes progress.
	if len(n.Children) > 0 {
		return n.Children[0], true
	}
	if len(n.Floats) > 0 {
		return n.Floats[0], true
	}
	return -1, false
}

// closestChild returns the tiled or floating child of idx whose rect
// center is nearest to ref's rect center.
func (t *Tree) closestChild(idx int, ref *Node) (int, bool) {
	n := &t.Nodes[idx]
	all := make([]int, 0, len(n.Children)+len(n.Floats))
	all = append(all, n.Children...)
	all = append(all, n.Floats...)
	if len(all) == 0 {
		return -1, false
	}

	rcx, rcy := ref.Rect.Center()
	best := all[0]
	bestDist := -1
	for _, c := range all {
		cx, cy := t.Nodes[c].Rect.Center()
		dx, dy := cx-rcx, cy-rcy
		dist := dx*dx + dy*dy
		if bestDist == -1 || dist < bestDist || (dist == bestDist && t.Nodes[c].ID < t.Nodes[best].ID) {
			best, bestDist = c, dist
		}
	}
	return best, true
}
