package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/korreman/sway-overfocus/internal/tree"
)

func TestFocus_SwayMode(t *testing.T) {
	n := &tree.Node{ID: 42}
	assert.Equal(t, "[con_id=42] focus", Focus(n, false))
}

func TestFocus_I3Mode(t *testing.T) {
	n := &tree.Node{ID: 42}
	assert.Equal(t, `[con_id="42"] focus`, Focus(n, true))
}
