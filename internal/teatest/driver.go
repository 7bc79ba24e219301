// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and every returned Cmd is run to completion
// before the next key is sent, so the chat loop can be exercised without a
// terminal or a tea.Program.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds Cmd chains such as tick loops.
const maxDepth = 64

// Driver owns the model under test.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been produced.
	Quitting bool

	// Seen lists every message fed back into Update, in order.
	Seen []tea.Msg

	timeout time.Duration
	skip    []func(tea.Msg) bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithCmdTimeout sets how long a single Cmd may run before its result is
// dropped. Assistant calls against the seed data finish well within the
// default.
func WithCmdTimeout(d time.Duration) Option {
	return func(drv *Driver) { drv.timeout = d }
}

// WithSkip drops messages matching fn instead of feeding them to Update.
// Use it for self-rescheduling ticks.
func WithSkip(fn func(tea.Msg) bool) Option {
	return func(drv *Driver) { drv.skip = append(drv.skip, fn) }
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(drv *Driver) {
		drv.Model, _ = drv.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Call Start to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, timeout: time.Second}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start runs Init and everything it produces.
func (d *Driver) Start() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send feeds msg through Update and drains the result.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

// Type sends s as a single runes key event.
func (d *Driver) Type(s string) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// Press sends a special key such as tea.KeyEnter.
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// Submit types line and presses Enter.
func (d *Driver) Submit(line string) {
	d.T.Helper()
	d.Type(line)
	d.Press(tea.KeyEnter)
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.T.Logf("teatest: stopped draining at depth %d", maxDepth)
		return
	}

	msg := d.run(cmd)
	if msg == nil || isBlink(msg) || d.skipped(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		return
	}

	d.Seen = append(d.Seen, msg)
	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.drain(next, depth+1)
}

func (d *Driver) run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.timeout):
		d.T.Logf("teatest: cmd did not return within %s", d.timeout)
		return nil
	}
}

func (d *Driver) skipped(msg tea.Msg) bool {
	for _, fn := range d.skip {
		if fn(msg) {
			return true
		}
	}
	return false
}

// Cursor blink message types are unexported in bubbles.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
