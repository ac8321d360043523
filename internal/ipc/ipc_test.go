package ipc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultsTimeout(t *testing.T) {
	c := New(false, 0)
	assert.Equal(t, DefaultTimeout, c.Timeout)

	c2 := New(true, 5*time.Second)
	assert.Equal(t, 5*time.Second, c2.Timeout)
}

func TestBinary_SelectsByMode(t *testing.T) {
	assert.Equal(t, "swaymsg", New(false, 0).binary())
	assert.Equal(t, "i3-msg", New(true, 0).binary())
}

func TestLookPath_MissingBinaryIsIPCFailure(t *testing.T) {
	c := New(false, 0)
	c.I3Mode = true
	// A bogus PATH makes even i3-msg unresolvable without depending on
	// the host actually having sway/i3 installed.
	t.Setenv("PATH", t.TempDir())

	err := c.LookPath()
	assert.ErrorIs(t, err, ErrIPCFailure)
}
