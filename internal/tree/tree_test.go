package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildS1 constructs the S1 fixture from spec.md §8:
// workspace/splith[10]{ con/tabbed[1]{leaf[a], leaf[b]*}, leaf[c] }
// focus_order(10) = [1, c-id], focus_order(1) = [b-id, a-id]
func buildS1() (*Tree, int) {
	t := &Tree{Focused: -1}
	// indices: 0=workspace(10), 1=tabbed(1), 2=leaf(a), 3=leaf(b), 4=leaf(c)
	t.Nodes = []Node{
		{ID: 10, Kind: KindWorkspace, Layout: LayoutSplitH, ParentIdx: -1},
		{ID: 1, Kind: KindGroup, Layout: LayoutTabbed, ParentIdx: 0},
		{ID: 100, Name: "a", Kind: KindLeaf, ParentIdx: 1},
		{ID: 101, Name: "b", Kind: KindLeaf, ParentIdx: 1, Focused: true},
		{ID: 102, Name: "c", Kind: KindLeaf, ParentIdx: 0},
	}
	t.Nodes[0].Children = []int{1, 4}
	t.Nodes[0].FocusOrder = []int64{1, 102}
	t.Nodes[1].Children = []int{2, 3}
	t.Nodes[1].FocusOrder = []int64{101, 100}
	t.Focused = 3
	return t, 3
}

func TestValidate_ExactlyOneFocused(t *testing.T) {
	tr, _ := buildS1()
	require.NoError(t, tr.Validate())
	assert.Equal(t, 3, tr.Focused)
}

func TestValidate_NoFocus(t *testing.T) {
	tr := &Tree{Nodes: []Node{{ID: 1}}}
	err := tr.Validate()
	assert.ErrorIs(t, err, ErrNoFocus)
}

func TestValidate_MultipleFocus(t *testing.T) {
	tr := &Tree{Nodes: []Node{{ID: 1, Focused: true}, {ID: 2, Focused: true}}}
	err := tr.Validate()
	assert.ErrorIs(t, err, ErrMultipleFocus)
}

func TestAncestors(t *testing.T) {
	tr, focus := buildS1()
	got := tr.Ancestors(focus)
	assert.Equal(t, []int{1, 0}, got)
}

func TestChildOnPathTo(t *testing.T) {
	tr, focus := buildS1()
	idx, ok := tr.ChildOnPathTo(0, focus)
	require.True(t, ok)
	assert.Equal(t, 1, idx) // the tabbed group is workspace's direct child on the path
}

func TestDescend_FocusOrder(t *testing.T) {
	tr, _ := buildS1()
	leaf := tr.Descend(1, DescendFocusOrder, nil)
	assert.Equal(t, int64(101), tr.Nodes[leaf].ID) // b, focus_order[0]
}

func TestDescend_Geometric(t *testing.T) {
	tr, _ := buildS1()
	tr.Nodes[3].Rect.X = 1000 // push b far away so a is geometrically closer
	ref := &Node{Rect: tr.Nodes[2].Rect}
	leaf := tr.Descend(1, DescendGeometric, ref)
	assert.Equal(t, int64(100), tr.Nodes[leaf].ID) // closest to ref is a
}

func TestIsUnderFloats(t *testing.T) {
	tr := &Tree{Nodes: []Node{
		{ID: 1, Kind: KindWorkspace, ParentIdx: -1},
		{ID: 2, Kind: KindFloat, ParentIdx: 0},
		{ID: 3, Kind: KindLeaf, ParentIdx: 0},
	}}
	tr.Nodes[0].Floats = []int{1}
	tr.Nodes[0].Children = []int{2}

	assert.True(t, tr.IsUnderFloats(0, 1))
	assert.False(t, tr.IsUnderFloats(0, 2))
}
