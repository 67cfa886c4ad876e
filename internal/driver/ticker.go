package driver

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Ticker is a real-time driver running frames on its own goroutine.
// Frames from one Ticker never overlap.
type Ticker struct {
	interval time.Duration
	logger   *log.Logger

	mu      sync.Mutex
	stopCh  chan struct{}
	frameMu sync.Mutex
	frames  atomic.Uint64
}

// NewTicker creates a stopped ticker firing at fps frames per second.
func NewTicker(fps int, logger *log.Logger) *Ticker {
	return &Ticker{
		interval: Interval(fps),
		logger:   logger,
	}
}

// Start begins a new loop. A loop that is already running is stopped first.
func (t *Ticker) Start(frame func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopCh != nil {
		close(t.stopCh)
	}
	stopCh := make(chan struct{})
	t.stopCh = stopCh

	if t.logger != nil {
		t.logger.Debug("frame loop started", "interval", t.interval)
	}
	go t.loop(stopCh, frame)
}

// Stop ends the current loop. A frame already in progress completes,
// but no frame begins after Stop returns.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopCh == nil {
		return
	}
	close(t.stopCh)
	t.stopCh = nil

	if t.logger != nil {
		t.logger.Debug("frame loop stopped")
	}
}

// Running reports whether a loop is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopCh != nil
}

// Frames returns the number of frames run so far.
func (t *Ticker) Frames() uint64 {
	return t.frames.Load()
}

// Do runs fn between frames, waiting for a frame in progress to finish.
// It must not be called from inside a frame.
func (t *Ticker) Do(fn func()) {
	t.frameMu.Lock()
	defer t.frameMu.Unlock()
	fn()
}

func (t *Ticker) loop(stopCh chan struct{}, frame func()) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !t.runFrame(stopCh, frame) {
				return
			}
		}
	}
}

// runFrame runs one frame if stopCh still belongs to the active loop.
func (t *Ticker) runFrame(stopCh chan struct{}, frame func()) bool {
	t.frameMu.Lock()
	defer t.frameMu.Unlock()

	t.mu.Lock()
	current := t.stopCh == stopCh
	t.mu.Unlock()
	if !current {
		return false
	}

	frame()
	t.frames.Add(1)
	return true
}
