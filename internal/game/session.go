package game

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"
)

// HighScoreStore persists the best score under a fixed key.
// A missing key reads as zero.
type HighScoreStore interface {
	HighScore(key string) (int, error)
	SetHighScore(key string, score int) error
}

// Presenter owns the three mutually exclusive surfaces of the game.
type Presenter interface {
	ShowIntro(highScore string)
	ShowPlaying()
	ShowGameOver(score, highScore string)
}

// FrameDriver repeatedly invokes a frame callback until stopped.
// Stop must be synchronous: no callback may begin after it returns.
type FrameDriver interface {
	Start(frame func())
	Stop()
	Running() bool
}

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Result summarizes a finished run.
type Result struct {
	Score        int
	HighScore    int
	Frames       int
	NewHighScore bool
}

// Options configures a Session. Store, Presenter and Canvas may be nil.
type Options struct {
	Params       Params
	Seed         int64
	Width        float64
	Height       float64
	HighScoreKey string

	Store     HighScoreStore
	Presenter Presenter
	Driver    FrameDriver
	Canvas    Canvas
	Logger    *log.Logger

	// OnGameOver is called after the high score has been settled.
	OnGameOver func(Result)
}

// Session runs the Intro -> Playing -> GameOver -> Playing state machine.
// All methods must be called from the goroutine that runs frame callbacks.
type Session struct {
	state  *State
	sim    *Simulator
	params Params
	key    string

	store      HighScoreStore
	presenter  Presenter
	driver     FrameDriver
	canvas     Canvas
	logger     *log.Logger
	onGameOver func(Result)
}

// NewSession creates a session in the intro phase and reads the stored
// high score once.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		state:      NewState(opts.Params, opts.Width, opts.Height),
		sim:        NewSimulator(opts.Params, opts.Seed, logger),
		params:     opts.Params,
		key:        opts.HighScoreKey,
		store:      opts.Store,
		presenter:  opts.Presenter,
		driver:     opts.Driver,
		canvas:     opts.Canvas,
		logger:     logger,
		onGameOver: opts.OnGameOver,
	}

	if s.store != nil {
		high, err := s.store.HighScore(s.key)
		if err != nil {
			logger.Warn("could not read high score", "key", s.key, "error", err)
		} else {
			s.state.HighScore = high
		}
	}
	return s
}

// State exposes the simulation state for rendering and inspection.
func (s *Session) State() *State {
	return s.state
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	switch {
	case !s.state.Started:
		return PhaseIntro
	case s.state.GameOver:
		return PhaseGameOver
	default:
		return PhasePlaying
	}
}

// ShowIntro returns to the intro surface.
func (s *Session) ShowIntro() {
	if s.driver != nil {
		s.driver.Stop()
	}
	s.state.Started = false
	if s.presenter != nil {
		s.presenter.ShowIntro(strconv.Itoa(s.state.HighScore))
	}
}

// Activate starts the game from the intro and lifts while playing.
// It is ignored after game over.
func (s *Session) Activate() {
	switch s.Phase() {
	case PhaseIntro:
		s.Start()
	case PhasePlaying:
		s.Lift()
	}
}

// Start leaves the intro and begins a run.
func (s *Session) Start() {
	if s.Phase() != PhaseIntro {
		return
	}
	s.begin()
}

// Restart begins a new run after game over.
func (s *Session) Restart() {
	if s.Phase() != PhaseGameOver {
		return
	}
	s.begin()
}

// Lift sets the entity velocity to the lift impulse. Repeated lifts do not
// accumulate.
func (s *Session) Lift() {
	if s.Phase() != PhasePlaying {
		return
	}
	s.state.Entity.Velocity = s.state.Entity.Lift
}

// Resize records a new play-area size reported by the surface.
func (s *Session) Resize(width, height float64) {
	s.state.Resize(width, height)
}

// Frame is the frame driver callback: one simulation step, then a render.
func (s *Session) Frame() {
	if s.sim.Step(s.state) == OutcomeCollision {
		s.end()
	}
	s.Render()
}

// Render paints the current state onto the bound canvas, if any.
func (s *Session) Render() {
	if s.canvas != nil {
		Render(s.state, s.params.Render, s.canvas)
	}
}

func (s *Session) begin() {
	s.state.Reset(s.params)
	if s.presenter != nil {
		s.presenter.ShowPlaying()
	}
	s.logger.Debug("run started", "width", s.state.Width, "height", s.state.Height)
	if s.driver != nil {
		s.driver.Start(s.Frame)
	}
}

// end settles a collision: stop the loop first so nothing else mutates
// the state, then persist and present.
func (s *Session) end() {
	s.state.GameOver = true
	if s.driver != nil {
		s.driver.Stop()
	}

	res := Result{
		Score:     s.state.Score,
		HighScore: s.state.HighScore,
		Frames:    s.state.Frame,
	}
	if s.state.Score > s.state.HighScore {
		s.state.HighScore = s.state.Score
		res.HighScore = s.state.Score
		res.NewHighScore = true
		if s.store != nil {
			if err := s.store.SetHighScore(s.key, s.state.HighScore); err != nil {
				s.logger.Error("could not save high score", "key", s.key, "error", err)
			}
		}
	}

	s.logger.Info("run ended", "score", res.Score, "high_score", res.HighScore, "frames", res.Frames)

	if s.presenter != nil {
		s.presenter.ShowGameOver(strconv.Itoa(res.Score), strconv.Itoa(res.HighScore))
	}
	if s.onGameOver != nil {
		s.onGameOver(res)
	}
}
