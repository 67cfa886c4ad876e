// Package driver provides frame drivers: loops that invoke a frame callback
// at a fixed rate until stopped.
//
// Every driver guarantees that once Stop returns no new callback begins,
// including when Stop is called from inside the callback itself.
package driver

import "time"

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// Interval converts a frame rate into a tick interval.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Driver is the contract shared by every frame driver in this package.
type Driver interface {
	Start(frame func())
	Stop()
	Running() bool
}

// Hooked wraps another driver and runs Before ahead of every frame.
type Hooked struct {
	Driver Driver
	Before func()
}

// Start starts the wrapped driver with the hook prepended to frame.
func (h Hooked) Start(frame func()) {
	h.Driver.Start(func() {
		if h.Before != nil {
			h.Before()
		}
		frame()
	})
}

// Stop stops the wrapped driver.
func (h Hooked) Stop() { h.Driver.Stop() }

// Running reports whether the wrapped driver is running.
func (h Hooked) Running() bool { return h.Driver.Running() }

var (
	_ Driver = (*Manual)(nil)
	_ Driver = (*Ticker)(nil)
	_ Driver = Hooked{}
)
