package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Outcome describes what a single Step did.
type Outcome int

const (
	OutcomeIdle       Outcome = iota // Not started or already over; nothing changed
	OutcomeAdvanced                  // Normal frame
	OutcomeDegenerate                // Fallback spawn; the sweep and the frame counter were skipped
	OutcomeCollision                 // Entity hit a segment; GameOver is now set
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeDegenerate:
		return "degenerate"
	case OutcomeCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Simulator advances a State one frame at a time.
// It owns the RNG so identical seeds and inputs replay identically.
type Simulator struct {
	params Params
	rng    *rand.Rand
	logger *log.Logger
}

// NewSimulator creates a simulator. A nil logger discards output.
func NewSimulator(p Params, seed int64, logger *log.Logger) *Simulator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{
		params: p,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Step advances the state by one frame.
func (s *Simulator) Step(st *State) Outcome {
	if st.GameOver || !st.Started {
		return OutcomeIdle
	}

	e := &st.Entity
	e.Velocity += e.Gravity
	e.Y += e.Velocity

	// The top edge is a ceiling: the entity rests there. There is no floor.
	if e.Y < 0 {
		e.Y = 0
		e.Velocity = 0
	}

	if st.Frame%s.params.SpawnInterval == 0 {
		if s.spawn(st) {
			return OutcomeDegenerate
		}
	}

	entity := e.Rect()
	for i := range st.Pairs {
		pair := &st.Pairs[i]
		pair.shift(-st.Speed)

		if entity.Intersects(pair.Top.Rect()) || entity.Intersects(pair.Bottom.Rect()) {
			st.GameOver = true
			return OutcomeCollision
		}

		if !pair.Passed && e.X > pair.Right() {
			st.Score++
			pair.Passed = true
		}
	}

	for len(st.Pairs) > 0 && st.Pairs[0].Right() < 0 {
		st.Pairs = st.Pairs[1:]
	}

	st.Frame++
	return OutcomeAdvanced
}
