package driver

// Manual is a deterministic driver that runs frames only when advanced.
// It is used for headless simulation, tests, and front ends that own
// their own loop.
type Manual struct {
	frame   func()
	running bool

	starts int
	stops  int
	frames int
}

// NewManual creates a stopped manual driver.
func NewManual() *Manual {
	return &Manual{}
}

// Start arms the driver with a frame callback.
func (m *Manual) Start(frame func()) {
	m.frame = frame
	m.running = true
	m.starts++
}

// Stop disarms the driver. Pending Advance calls stop before the next frame.
func (m *Manual) Stop() {
	if m.running {
		m.stops++
	}
	m.running = false
}

// Running reports whether the driver is armed.
func (m *Manual) Running() bool {
	return m.running
}

// Advance runs up to n frames and returns how many actually ran.
func (m *Manual) Advance(n int) int {
	ran := 0
	for ran < n && m.running {
		m.frame()
		ran++
		m.frames++
	}
	return ran
}

// Starts returns how many times Start has been called.
func (m *Manual) Starts() int { return m.starts }

// Stops returns how many running loops have been stopped.
func (m *Manual) Stops() int { return m.stops }

// Frames returns the total number of frames run.
func (m *Manual) Frames() int { return m.frames }
