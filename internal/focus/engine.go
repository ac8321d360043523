// Package focus implements the focus decision algorithm: given a tree
// snapshot and an ordered list of targets, it selects exactly one
// container to receive focus. This is the core of spec.md (§4.4); the
// engine is a pure function over its inputs and never mutates the
// tree.
package focus

import (
	"context"

	"github.com/korreman/sway-overfocus/internal/geometry"
	"github.com/korreman/sway-overfocus/internal/logging"
	"github.com/korreman/sway-overfocus/internal/target"
	"github.com/korreman/sway-overfocus/internal/tree"
)

// Engine runs the focus decision algorithm over a Tree.
type Engine struct{}

// New creates a focus Engine.
func New() *Engine { return &Engine{} }

// Run attempts each target in order and returns the tree index of the
// node chosen by the first target that produces a node different from
// the current focus. It reports moved=false, with the current focus
// index, when every target fails (spec.md's NoMove).
func (e *Engine) Run(ctx context.Context, tr *tree.Tree, targets []target.Target) (idx int, moved bool) {
	log := logging.FromContext(ctx)
	focus := tr.Focused

	for i, tg := range targets {
		candidate, ok := e.attempt(ctx, tr, focus, tg)
		log.Debug().
			Int("target_index", i).
			Int("kind", int(tg.Kind)).
			Bool("matched", ok).
			Msg("attempted target")

		if ok && candidate != focus {
			log.Info().Int("target_index", i).Int64("new_focus_id", tr.Node(candidate).ID).Msg("focus move chosen")
			return candidate, true
		}
	}

	log.Debug().Msg("no target produced a move")
	return focus, false
}

// attempt dispatches to the per-kind procedure of spec.md §4.4.
func (e *Engine) attempt(ctx context.Context, tr *tree.Tree, focusIdx int, tg target.Target) (int, bool) {
	switch tg.Kind {
	case target.KindSplit, target.KindGroup:
		return attemptSplitOrGroup(tr, focusIdx, tg.Kind, tg.Direction, tg.Edge)
	case target.KindFloat:
		return attemptFloat(tr, focusIdx, tg.Direction, tg.Edge)
	case target.KindOutput:
		return attemptOutput(tr, focusIdx, tg.Direction, tg.Edge)
	case target.KindWorkspace:
		return attemptWorkspace(tr, focusIdx, tg.Direction, tg.Edge)
	default:
		return 0, false
	}
}

// matchesKindAxis reports whether n is a valid split/group ancestor
// for kind along wantAxis, per spec.md §4.2.
func matchesKindAxis(n *tree.Node, kind target.Kind, wantAxis geometry.Axis) bool {
	switch kind {
	case target.KindSplit:
		if !n.MatchesSplit() {
			return false
		}
	case target.KindGroup:
		if !n.MatchesGroup() {
			return false
		}
	default:
		return false
	}
	axis, ok := n.SplitAxis()
	return ok && axis == wantAxis
}

// attemptSplitOrGroup implements spec.md §4.4's split/group procedure,
// including wrap and the two spill edge policies. It generalizes the
// teacher's findAdjacentPane/findLeafInDirection ancestor walk to an
// n-ary split/tabbed/stacked model with configurable edge behavior.
func attemptSplitOrGroup(tr *tree.Tree, focusIdx int, kind target.Kind, dir geometry.Direction, edge target.Edge) (int, bool) {
	wantAxis := geometry.AxisOf(dir)
	origin := tr.Node(focusIdx)
	chain := tr.Ancestors(focusIdx)

	spilled := false
	for _, aIdx := range chain {
		a := tr.Node(aIdx)
		if !matchesKindAxis(a, kind, wantAxis) {
			continue
		}

		c, ok := tr.ChildOnPathTo(aIdx, focusIdx)
		if !ok {
			continue
		}
		i, ok := tr.IndexOfChild(aIdx, c)
		if !ok {
			continue
		}

		j := i + 1
		if dir.IsPrevious() {
			j = i - 1
		}
		n := len(a.Children)

		if j >= 0 && j < n {
			policy := tree.DescendFocusOrder
			var ref *tree.Node
			if spilled && edge == target.EdgeTraverseSpill {
				policy, ref = tree.DescendGeometric, origin
			}
			return tr.Descend(a.Children[j], policy, ref), true
		}

		switch edge {
		case target.EdgeStop:
			return 0, false
		case target.EdgeWrap:
			if n == 0 {
				return 0, false
			}
			jp := ((j % n) + n) % n
			if a.Children[jp] != c {
				return tr.Descend(a.Children[jp], tree.DescendFocusOrder, nil), true
			}
			return 0, false
		case target.EdgeInactiveSpill, target.EdgeTraverseSpill:
			spilled = true
			continue
		}
	}

	return 0, false
}

// attemptFloat implements spec.md §4.4's float procedure.
func attemptFloat(tr *tree.Tree, focusIdx int, dir geometry.Direction, edge target.Edge) (int, bool) {
	wsIdx := tr.WorkspaceOf(focusIdx)
	if wsIdx == -1 {
		return 0, false
	}

	ws := tr.Node(wsIdx)
	origin := tr.Node(focusIdx)

	idxByID := make(map[int64]int, len(ws.Floats))
	candidates := make([]geometry.Candidate, 0, len(ws.Floats))
	for _, f := range ws.Floats {
		idxByID[tr.Node(f).ID] = f
		if f == focusIdx {
			continue
		}
		candidates = append(candidates, geometry.Candidate{ID: tr.Node(f).ID, Rect: tr.Node(f).Rect})
	}

	if winner, ok := geometry.DirectionalNeighbor(origin.Rect, candidates, dir); ok {
		return tr.Descend(idxByID[winner.ID], tree.DescendFocusOrder, nil), true
	}

	if edge != target.EdgeWrap {
		// Floats do not spill past their workspace; stop/inactive-spill/
		// traverse-spill all fail here (spec.md §4.4).
		return 0, false
	}

	best, ok := extremeOpposite(tr, ws.Floats, dir)
	if !ok || best == focusIdx {
		return 0, false
	}
	return tr.Descend(best, tree.DescendFocusOrder, nil), true
}

// attemptOutput implements spec.md §4.4's output procedure.
func attemptOutput(tr *tree.Tree, focusIdx int, dir geometry.Direction, edge target.Edge) (int, bool) {
	outIdx := tr.OutputOf(focusIdx)
	if outIdx == -1 {
		return 0, false
	}
	parentIdx := tr.Node(outIdx).ParentIdx
	if parentIdx == -1 {
		return 0, false
	}
	siblings := tr.Node(parentIdx).Children

	idxByID := make(map[int64]int, len(siblings))
	candidates := make([]geometry.Candidate, 0, len(siblings))
	for _, o := range siblings {
		idxByID[tr.Node(o).ID] = o
		if o == outIdx {
			continue
		}
		candidates = append(candidates, geometry.Candidate{ID: tr.Node(o).ID, Rect: tr.Node(o).Rect})
	}

	origin := tr.Node(focusIdx)
	if winner, ok := geometry.OutputNeighbor(tr.Node(outIdx).Rect, candidates, dir); ok {
		return descendOutput(tr, idxByID[winner.ID], edge, origin), true
	}

	if edge != target.EdgeWrap {
		return 0, false
	}
	best, ok := extremeOpposite(tr, siblings, dir)
	if !ok {
		return 0, false
	}
	return descendOutput(tr, best, edge, origin), true
}

// descendOutput picks the output's focused workspace, then descends
// into it; edge "t" compares every level of the descent against the
// original focus rect instead of following focus_order, per spec.md
// §4.4.
func descendOutput(tr *tree.Tree, outputIdx int, edge target.Edge, origin *tree.Node) int {
	out := tr.Node(outputIdx)
	wsIdx := -1
	for _, id := range out.FocusOrder {
		for _, c := range out.Children {
			if wsIdx == -1 && tr.Node(c).ID == id {
				wsIdx = c
			}
		}
	}
	if wsIdx == -1 {
		if len(out.Children) == 0 {
			return outputIdx
		}
		wsIdx = out.Children[0]
	}

	policy, ref := tree.DescendFocusOrder, (*tree.Node)(nil)
	if edge == target.EdgeTraverseSpill {
		policy, ref = tree.DescendGeometric, origin
	}
	return tr.Descend(wsIdx, policy, ref)
}

// attemptWorkspace implements spec.md §4.4's workspace procedure.
func attemptWorkspace(tr *tree.Tree, focusIdx int, dir geometry.Direction, edge target.Edge) (int, bool) {
	wsIdx := tr.WorkspaceOf(focusIdx)
	if wsIdx == -1 {
		return 0, false
	}
	outIdx := tr.Node(wsIdx).ParentIdx
	if outIdx == -1 {
		return 0, false
	}
	siblings := tr.Node(outIdx).Children

	i, ok := tr.IndexOfChild(outIdx, wsIdx)
	if !ok {
		return 0, false
	}

	j := i + 1
	if dir.IsPrevious() {
		j = i - 1
	}
	n := len(siblings)
	if j >= 0 && j < n {
		return tr.Descend(siblings[j], tree.DescendFocusOrder, nil), true
	}

	if edge != target.EdgeWrap || n == 0 {
		return 0, false
	}
	jp := 0
	if dir.IsPrevious() {
		jp = n - 1
	}
	if siblings[jp] == wsIdx {
		return 0, false
	}
	return tr.Descend(siblings[jp], tree.DescendFocusOrder, nil), true
}

// extremeOpposite returns the member whose rect center is furthest in
// the direction opposite to dir — used by wrap fallbacks for floats
// and outputs (spec.md §4.4: "the extreme one opposite to D").
func extremeOpposite(tr *tree.Tree, members []int, dir geometry.Direction) (int, bool) {
	if len(members) == 0 {
		return 0, false
	}

	best := members[0]
	bestVal, _ := coord(tr.Node(best).Rect, dir)
	bestID := tr.Node(best).ID

	for _, m := range members[1:] {
		val, _ := coord(tr.Node(m).Rect, dir)
		id := tr.Node(m).ID
		if isMoreExtremeOpposite(val, id, bestVal, bestID, dir) {
			best, bestVal, bestID = m, val, id
		}
	}
	return best, true
}

// coord returns the rect center's coordinate along dir's axis.
func coord(r geometry.Rect, dir geometry.Direction) (int, int) {
	cx, cy := r.Center()
	if geometry.AxisOf(dir) == geometry.Horizontal {
		return cx, cy
	}
	return cy, cx
}

// isMoreExtremeOpposite reports whether (val, id) is further opposite
// dir than (bestVal, bestID): smaller coordinate for right/down,
// larger for left/up, ties broken by smaller id.
func isMoreExtremeOpposite(val int, id int64, bestVal int, bestID int64, dir geometry.Direction) bool {
	switch dir {
	case geometry.Right, geometry.Down:
		if val != bestVal {
			return val < bestVal
		}
	default:
		if val != bestVal {
			return val > bestVal
		}
	}
	return id < bestID
}
