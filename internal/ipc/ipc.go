// Package ipc is the thin adapter between the focus engine and the
// window manager: it invokes swaymsg/i3-msg to fetch a tree snapshot
// and to dispatch the chosen focus command, per spec.md §4.6.
package ipc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/korreman/sway-overfocus/internal/logging"
	"github.com/korreman/sway-overfocus/internal/tree"
)

// ErrIPCFailure wraps every fatal adapter error: missing binary,
// nonzero exit, unparseable reply, or a timed-out round-trip.
var ErrIPCFailure = errors.New("ipc failure")

// DefaultTimeout bounds a single swaymsg/i3-msg invocation when the
// caller does not override it (SPEC_FULL.md §4.6 — spec.md's adapter
// has no internal timeout; this is an ambient robustness addition so a
// hung binary does not hang a keybinding forever).
const DefaultTimeout = 2 * time.Second

// Client talks to sway or i3 via their message-passing binaries.
type Client struct {
	I3Mode  bool
	Timeout time.Duration
}

// New builds a Client. A zero Timeout is replaced with DefaultTimeout.
func New(i3Mode bool, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{I3Mode: i3Mode, Timeout: timeout}
}

// binary returns the message tool for the configured mode.
func (c *Client) binary() string {
	if c.I3Mode {
		return "i3-msg"
	}
	return "swaymsg"
}

// LookPath reports whether the configured binary is on $PATH.
func (c *Client) LookPath() error {
	if _, err := exec.LookPath(c.binary()); err != nil {
		return fmt.Errorf("%w: %s not found on PATH: %w", ErrIPCFailure, c.binary(), err)
	}
	return nil
}

// GetTree fetches and decodes the current container tree.
func (c *Client) GetTree(ctx context.Context) (*tree.Tree, error) {
	logging.FromContext(ctx).Debug().Str("binary", c.binary()).Msg("fetching tree")
	out, err := c.run(ctx, "-t", "get_tree")
	if err != nil {
		return nil, err
	}
	t, err := tree.Decode(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIPCFailure, err)
	}
	return t, nil
}

// Dispatch sends cmd (a focus command, per internal/command) to the
// window manager.
func (c *Client) Dispatch(ctx context.Context, cmd string) error {
	logging.FromContext(ctx).Debug().Str("binary", c.binary()).Str("cmd", cmd).Msg("dispatching focus command")
	_, err := c.run(ctx, cmd)
	return err
}

// run invokes the configured binary with args under the client's
// timeout.
func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.binary(), args...)
	setProcAttr(cmd)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("%w: %s timed out after %s", ErrIPCFailure, c.binary(), c.Timeout)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s failed: %w (%s)", ErrIPCFailure, c.binary(), err, stderr.String())
	}
	return out, nil
}
