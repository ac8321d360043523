// Package command translates a chosen tree.Node into the window
// manager's focus command syntax, per spec.md §4.5.
package command

import (
	"fmt"

	"github.com/korreman/sway-overfocus/internal/tree"
)

// Focus builds the focus command for node n. Sway addresses containers
// by numeric con_id; i3 takes the same criterion but requires it
// quoted, per spec.md §4.5's "by name for certain node kinds (i3
// fallback)" note.
func Focus(n *tree.Node, i3Mode bool) string {
	if i3Mode {
		return fmt.Sprintf(`[con_id="%d"] focus`, n.ID)
	}
	return fmt.Sprintf("[con_id=%d] focus", n.ID)
}
