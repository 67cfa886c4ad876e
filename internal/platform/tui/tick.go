// Package tui provides the Bubble Tea front end for skyhop.
// It handles the terminal UI loop, input mapping, and surface switching.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/driver"
)

// TickMsg is sent to trigger a frame. Gen identifies the loop that armed it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// teaDriver is a frame driver built on tea.Tick. Frames run on the Bubble
// Tea update goroutine, so the session needs no locking.
//
// Every Start and Stop bumps the generation; ticks armed by an older
// generation are dropped when they arrive.
type teaDriver struct {
	interval time.Duration
	gen      uint64
	frame    func()
	running  bool
	armed    bool
}

func newTeaDriver(fps int) *teaDriver {
	return &teaDriver{interval: driver.Interval(fps)}
}

func (d *teaDriver) Start(frame func()) {
	d.gen++
	d.frame = frame
	d.running = true
	d.armed = false
}

func (d *teaDriver) Stop() {
	if !d.running {
		return
	}
	d.gen++
	d.running = false
	d.armed = false
}

func (d *teaDriver) Running() bool {
	return d.running
}

// Arm returns the command for the next tick, or nil if the loop is stopped
// or a tick for the current generation is already pending.
func (d *teaDriver) Arm() tea.Cmd {
	if !d.running || d.armed {
		return nil
	}
	d.armed = true
	gen := d.gen
	return tea.Tick(d.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// Handle runs one frame if msg belongs to the running loop.
func (d *teaDriver) Handle(msg TickMsg) bool {
	if msg.Gen != d.gen || !d.running {
		return false
	}
	d.armed = false
	d.frame()
	return true
}
