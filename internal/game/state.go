// Package game implements skyhop: an entity falls under constant gravity and
// must fly through gapped obstacle pairs that scroll left at constant speed.
//
// The package is split the way the frame loop is: Simulator.Step advances a
// State, Render paints it onto a Canvas, and Session ties both to the frame
// driver and the persistence and presentation collaborators.
package game

import "github.com/vovakirdan/skyhop/internal/core"

// Entity is the player-controlled actor. X is fixed; Y and Velocity change
// every frame.
type Entity struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64
	Gravity       float64
	Lift          float64
}

// Rect returns the entity's collision rectangle.
func (e Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Segment is one half of an obstacle pair.
type Segment struct {
	X, Y          float64
	Width, Height float64
	Color         core.Color
}

// Rect returns the segment's collision rectangle.
func (s Segment) Rect() core.Rect {
	return core.NewRect(s.X, s.Y, s.Width, s.Height)
}

// ObstaclePair is a top and bottom segment sharing x, width and color.
type ObstaclePair struct {
	Top    Segment
	Bottom Segment
	Passed bool // Set once when the entity clears the pair; never reset
}

// X returns the shared left edge of the pair.
func (p ObstaclePair) X() float64 {
	return p.Top.X
}

// Right returns the shared right edge of the pair.
func (p ObstaclePair) Right() float64 {
	return p.Top.X + p.Top.Width
}

// shift moves both segments horizontally.
func (p *ObstaclePair) shift(dx float64) {
	p.Top.X += dx
	p.Bottom.X += dx
}

// State is the complete mutable simulation state shared by Step and Render.
type State struct {
	Entity Entity
	Pairs  []ObstaclePair // Spawn order, which is also left-to-right order

	Score     int
	HighScore int
	Frame     int
	Speed     float64

	Started  bool
	GameOver bool

	// Play area in pixels, as last reported by the surface.
	Width  float64
	Height float64

	// CurrentColor is the palette color used by the degenerate spawn branch.
	CurrentColor core.Color
}

// NewState creates an idle (not started) state for a play area.
func NewState(p Params, width, height float64) *State {
	st := &State{Width: width, Height: height}
	st.Entity = Entity{
		X:       p.EntityX,
		Width:   p.EntityWidth,
		Height:  p.EntityHeight,
		Gravity: p.Gravity,
		Lift:    p.Lift,
	}
	st.Reset(p)
	st.Started = false
	return st
}

// Reset clears all transient state for a new run and marks it started.
// The high score and play-area size are kept.
func (s *State) Reset(p Params) {
	s.Entity.X = p.EntityX
	s.Entity.Width = p.EntityWidth
	s.Entity.Height = p.EntityHeight
	s.Entity.Gravity = p.Gravity
	s.Entity.Lift = p.Lift
	s.Entity.Velocity = 0
	s.recenter()

	s.Pairs = s.Pairs[:0]
	s.Score = 0
	s.Frame = 0
	s.Speed = p.Speed
	s.GameOver = false
	s.Started = true
	if len(p.Palette) > 0 {
		s.CurrentColor = p.Palette[0]
	}
}

// Resize records a new play-area size and recenters the entity vertically.
func (s *State) Resize(width, height float64) {
	s.Width = width
	s.Height = height
	s.recenter()
}

func (s *State) recenter() {
	s.Entity.Y = s.Height/2 - s.Entity.Height/2
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Pairs = append([]ObstaclePair(nil), s.Pairs...)
	return &c
}
