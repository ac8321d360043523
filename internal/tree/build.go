package tree

import (
	"encoding/json"
	"fmt"

	"github.com/korreman/sway-overfocus/internal/geometry"
)

// rawNode is the shape of one node in the `get_tree` IPC reply
// (spec.md §6): a recursive JSON object decoded with the standard
// library before being flattened into a Tree arena.
type rawNode struct {
	ID            int64     `json:"id"`
	Name          *string   `json:"name"`
	Type          string    `json:"type"`
	Layout        string    `json:"layout"`
	Rect          rawRect   `json:"rect"`
	Focused       bool      `json:"focused"`
	Nodes         []rawNode `json:"nodes"`
	FloatingNodes []rawNode `json:"floating_nodes"`
	Focus         []int64   `json:"focus"`
}

type rawRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Decode parses a `get_tree` JSON reply into a Tree.
func Decode(payload []byte) (*Tree, error) {
	var root rawNode
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil, fmt.Errorf("decode tree payload: %w", err)
	}

	t := &Tree{Focused: -1}
	flatten(t, &root, -1, false)
	return t, nil
}

// flatten appends raw and its descendants to t.Nodes, returning raw's
// own index. isFloat marks that raw was reached via a floating_nodes
// array rather than a tiled nodes array.
func flatten(t *Tree, raw *rawNode, parentIdx int, isFloat bool) int {
	name := ""
	if raw.Name != nil {
		name = *raw.Name
	}

	n := Node{
		ID:      raw.ID,
		Name:    name,
		Kind:    classify(raw, isFloat),
		Layout:  parseLayout(raw.Layout),
		Rect:    geometry.Rect{X: raw.Rect.X, Y: raw.Rect.Y, W: raw.Rect.Width, H: raw.Rect.Height},
		Focused: raw.Focused,

		FocusOrder: append([]int64(nil), raw.Focus...),
		ParentIdx:  parentIdx,
	}

	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, n)

	for i := range raw.Nodes {
		childIdx := flatten(t, &raw.Nodes[i], idx, false)
		t.Nodes[idx].Children = append(t.Nodes[idx].Children, childIdx)
	}
	for i := range raw.FloatingNodes {
		childIdx := flatten(t, &raw.FloatingNodes[i], idx, true)
		t.Nodes[idx].Floats = append(t.Nodes[idx].Floats, childIdx)
	}

	return idx
}

func classify(raw *rawNode, isFloat bool) Kind {
	switch raw.Type {
	case "root":
		return KindRoot
	case "output":
		return KindOutput
	case "workspace":
		return KindWorkspace
	case "floating_con":
		return KindFloat
	default: // "con"
		if isFloat {
			return KindFloat
		}
		switch raw.Layout {
		case "splith", "splitv":
			return KindSplit
		case "tabbed", "stacked":
			return KindGroup
		default:
			return KindLeaf
		}
	}
}

func parseLayout(s string) Layout {
	switch s {
	case "splith":
		return LayoutSplitH
	case "splitv":
		return LayoutSplitV
	case "tabbed":
		return LayoutTabbed
	case "stacked":
		return LayoutStacked
	case "output":
		return LayoutNone
	default:
		return LayoutNone
	}
}
