package game

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/skyhop/internal/core"
)

// openParams returns parameters whose only possible gap is centered at
// height/2 with the given gap, so an entity at the vertical center never hits.
func openParams(height, gap float64) Params {
	p := DefaultParams()
	p.Gravity = 0
	p.Gap = gap
	p.MinOffset = height/2 - gap/2
	p.MaxOffset = height/2 - gap/2
	return p
}

func startedState(p Params, w, h float64) *State {
	st := NewState(p, w, h)
	st.Reset(p)
	return st
}

func TestGapCenterRange(t *testing.T) {
	tests := []struct {
		name           string
		height, gap    float64
		minOff, maxOff float64
		wantMin        float64
		wantMax        float64
		degenerate     bool
	}{
		{"classic browser layout", 800, 380, 70, 70, 260, 540, false},
		{"exact fit", 600, 500, 50, 50, 300, 300, false},
		{"gap too large", 800, 700, 70, 70, 420, 380, true},
		{"default terminal layout", 384, 150, 40, 40, 115, 269, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := GapCenterRange(tt.height, tt.gap, tt.minOff, tt.maxOff)
			if lo != tt.wantMin || hi != tt.wantMax {
				t.Errorf("GapCenterRange = [%v, %v], want [%v, %v]", lo, hi, tt.wantMin, tt.wantMax)
			}
			if (lo > hi) != tt.degenerate {
				t.Errorf("degenerate = %v, want %v", lo > hi, tt.degenerate)
			}
		})
	}
}

func TestStepIsNoOpWhenIdleOrOver(t *testing.T) {
	p := DefaultParams()

	idle := NewState(p, 800, 600)
	over := startedState(p, 800, 600)
	over.GameOver = true
	over.Pairs = append(over.Pairs, ObstaclePair{
		Top:    Segment{X: 100, Width: 50, Height: 100},
		Bottom: Segment{X: 100, Y: 300, Width: 50, Height: 300},
	})

	for name, st := range map[string]*State{"idle": idle, "game over": over} {
		t.Run(name, func(t *testing.T) {
			sim := NewSimulator(p, 1, nil)
			before := st.Clone()
			for i := 0; i < 10; i++ {
				if got := sim.Step(st); got != OutcomeIdle {
					t.Fatalf("Step() = %v, want %v", got, OutcomeIdle)
				}
			}
			if !reflect.DeepEqual(before, st) {
				t.Errorf("state changed: before %+v, after %+v", before, st)
			}
		})
	}
}

func TestStepCeilingClamp(t *testing.T) {
	p := DefaultParams()
	sim := NewSimulator(p, 1, nil)
	st := startedState(p, 800, 600)
	st.Entity.Y = 1
	st.Entity.Velocity = p.Lift

	sim.Step(st)

	if st.Entity.Y != 0 {
		t.Errorf("Y = %v, want 0", st.Entity.Y)
	}
	if st.Entity.Velocity != 0 {
		t.Errorf("Velocity = %v, want 0", st.Entity.Velocity)
	}
}

func TestStepNoFloor(t *testing.T) {
	p := DefaultParams()
	p.SpawnInterval = 1 << 30
	sim := NewSimulator(p, 1, nil)
	st := startedState(p, 800, 600)
	st.Frame = 1

	for i := 0; i < 500; i++ {
		sim.Step(st)
	}

	if st.GameOver {
		t.Error("falling below the play area must not end the game")
	}
	if st.Entity.Y <= st.Height {
		t.Errorf("expected entity below the play area, Y = %v", st.Entity.Y)
	}
}

func TestStepLiftKinematics(t *testing.T) {
	p := DefaultParams()
	sim := NewSimulator(p, 1, nil)
	st := startedState(p, 800, 600)
	y0 := st.Entity.Y
	st.Entity.Velocity = p.Lift

	sim.Step(st)

	want := p.Lift + p.Gravity
	if !closeTo(st.Entity.Velocity, want) {
		t.Errorf("Velocity = %v, want %v", st.Entity.Velocity, want)
	}
	if !closeTo(st.Entity.Y, y0+want) {
		t.Errorf("Y = %v, want %v", st.Entity.Y, y0+want)
	}
}

func TestStepSpawnLayout(t *testing.T) {
	p := DefaultParams()
	p.Gap = 380
	p.MinOffset = 70
	p.MaxOffset = 70

	for seed := int64(0); seed < 50; seed++ {
		sim := NewSimulator(p, seed, nil)
		st := startedState(p, 400, 800)

		if got := sim.Step(st); got != OutcomeAdvanced {
			t.Fatalf("seed %d: Step() = %v, want %v", seed, got, OutcomeAdvanced)
		}
		if len(st.Pairs) != 1 {
			t.Fatalf("seed %d: %d pairs, want 1", seed, len(st.Pairs))
		}

		pair := st.Pairs[0]
		center := pair.Top.Height + p.Gap/2
		if center < 260 || center > 540 {
			t.Errorf("seed %d: gap center %v outside [260, 540]", seed, center)
		}
		if pair.Bottom.Y-pair.Top.Height != p.Gap {
			t.Errorf("seed %d: gap = %v, want %v", seed, pair.Bottom.Y-pair.Top.Height, p.Gap)
		}
		if pair.Bottom.Y+pair.Bottom.Height != st.Height {
			t.Errorf("seed %d: bottom segment does not reach the floor", seed)
		}
		if pair.Top.X != 400-p.Speed || pair.Bottom.X != pair.Top.X {
			t.Errorf("seed %d: pair x = %v/%v, want %v", seed, pair.Top.X, pair.Bottom.X, 400-p.Speed)
		}
		if pair.Top.Color != pair.Bottom.Color || !inPalette(p.Palette, pair.Top.Color) {
			t.Errorf("seed %d: bad pair color %v/%v", seed, pair.Top.Color, pair.Bottom.Color)
		}
	}
}

func TestStepDegenerateSpawn(t *testing.T) {
	tests := []struct {
		name          string
		gap           float64
		wantTopHeight float64
		wantBottomY   float64
		wantBottomH   float64
	}{
		{"gap exceeds offsets", 700, 50, 750, 50},
		{"gap exceeds height", 900, 0, 900, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.Gap = tt.gap
			p.MinOffset = 70
			p.MaxOffset = 70
			sim := NewSimulator(p, 1, nil)
			st := startedState(p, 400, 800)

			if got := sim.Step(st); got != OutcomeDegenerate {
				t.Fatalf("Step() = %v, want %v", got, OutcomeDegenerate)
			}
			if st.Frame != 0 {
				t.Errorf("Frame = %d, want 0", st.Frame)
			}

			pair := st.Pairs[0]
			if pair.Top.X != 400 {
				t.Errorf("pair was shifted to %v; the sweep must be skipped", pair.Top.X)
			}
			if pair.Top.Height != tt.wantTopHeight || pair.Bottom.Y != tt.wantBottomY || pair.Bottom.Height != tt.wantBottomH {
				t.Errorf("layout = top %v, bottom y %v h %v; want %v, %v, %v",
					pair.Top.Height, pair.Bottom.Y, pair.Bottom.Height,
					tt.wantTopHeight, tt.wantBottomY, tt.wantBottomH)
			}
			if pair.Top.Color != p.Palette[0] {
				t.Errorf("fallback pair color = %v, want the current color %v", pair.Top.Color, p.Palette[0])
			}
		})
	}
}

func TestStepDegenerateSpawnRepeats(t *testing.T) {
	p := DefaultParams()
	p.Gap = 700
	p.MinOffset = 70
	p.MaxOffset = 70
	sim := NewSimulator(p, 1, nil)
	st := startedState(p, 400, 800)

	for i := 1; i <= 3; i++ {
		if got := sim.Step(st); got != OutcomeDegenerate {
			t.Fatalf("step %d: Step() = %v, want %v", i, got, OutcomeDegenerate)
		}
		if st.Frame != 0 {
			t.Fatalf("step %d: Frame = %d, want 0", i, st.Frame)
		}
		if len(st.Pairs) != i {
			t.Fatalf("step %d: %d pairs, want %d", i, len(st.Pairs), i)
		}
		for j, pair := range st.Pairs {
			if pair.Top.X != 400 || pair.Bottom.X != 400 {
				t.Errorf("step %d: pair %d moved to %v/%v", i, j, pair.Top.X, pair.Bottom.X)
			}
		}
	}
}

func TestStepCollisionIsEdgeExclusive(t *testing.T) {
	p := DefaultParams()
	p.Gravity = 0
	sim := NewSimulator(p, 1, nil)
	st := startedState(p, 800, 600)
	st.Frame = 1
	st.Entity.Y = 100

	// After one shift the top segment's left edge touches the entity's right edge.
	edge := st.Entity.X + st.Entity.Width
	st.Pairs = append(st.Pairs, ObstaclePair{
		Top:    Segment{X: edge + p.Speed, Width: 50, Height: 300},
		Bottom: Segment{X: edge + p.Speed, Y: 500, Width: 50, Height: 100},
	})

	if got := sim.Step(st); got != OutcomeAdvanced {
		t.Fatalf("touching edges: Step() = %v, want %v", got, OutcomeAdvanced)
	}
	if got := sim.Step(st); got != OutcomeCollision {
		t.Fatalf("overlap: Step() = %v, want %v", got, OutcomeCollision)
	}
	if !st.GameOver {
		t.Error("GameOver not set after collision")
	}

	frame := st.Frame
	if got := sim.Step(st); got != OutcomeIdle || st.Frame != frame {
		t.Errorf("step after game over changed the state")
	}
}

func TestStepCollisionStopsSweep(t *testing.T) {
	p := DefaultParams()
	p.Gravity = 0
	sim := NewSimulator(p, 1, nil)
	st := startedState(p, 800, 600)
	st.Frame = 1
	st.Entity.Y = 400

	st.Pairs = append(st.Pairs,
		ObstaclePair{ // hits the entity through its bottom segment
			Top:    Segment{X: 60, Width: 50, Height: 100},
			Bottom: Segment{X: 60, Y: 300, Width: 50, Height: 300},
		},
		ObstaclePair{
			Top:    Segment{X: 300, Width: 50, Height: 100},
			Bottom: Segment{X: 300, Y: 300, Width: 50, Height: 300},
		},
	)

	if got := sim.Step(st); got != OutcomeCollision {
		t.Fatalf("Step() = %v, want %v", got, OutcomeCollision)
	}
	if st.Pairs[1].X() != 300 {
		t.Errorf("pairs after the hit must not be moved, x = %v", st.Pairs[1].X())
	}
	if st.Frame != 1 {
		t.Errorf("Frame = %d, want 1", st.Frame)
	}
}

func TestStepScoresOncePerPair(t *testing.T) {
	p := DefaultParams()
	p.SpawnInterval = 1 << 30
	sim := NewSimulator(p, 1, nil)
	st := startedState(p, 800, 600)
	st.Frame = 1

	st.Pairs = append(st.Pairs, ObstaclePair{
		Top:    Segment{X: 0.5, Width: 50, Height: 100},
		Bottom: Segment{X: 0.5, Y: 500, Width: 50, Height: 100},
	})

	sim.Step(st)
	if st.Score != 1 || !st.Pairs[0].Passed {
		t.Fatalf("Score = %d, Passed = %v; want 1, true", st.Score, st.Pairs[0].Passed)
	}

	for i := 0; i < 10; i++ {
		sim.Step(st)
	}
	if st.Score != 1 {
		t.Errorf("Score = %d after more frames, want 1", st.Score)
	}
}

func TestStepRecycleTiming(t *testing.T) {
	const width, height = 200.0, 600.0
	p := openParams(height, 500)
	p.SpawnInterval = 1 << 30
	sim := NewSimulator(p, 7, nil)
	st := startedState(p, width, height)

	steps := int(width + p.ObstacleWidth)
	for i := 0; i < steps; i++ {
		if got := sim.Step(st); got != OutcomeAdvanced {
			t.Fatalf("step %d: %v", i, got)
		}
	}
	if len(st.Pairs) != 1 {
		t.Fatalf("after %d steps: %d pairs, want 1", steps, len(st.Pairs))
	}

	sim.Step(st)
	if len(st.Pairs) != 0 {
		t.Errorf("after %d steps: %d pairs, want 0", steps+1, len(st.Pairs))
	}
	if st.Score != 1 {
		t.Errorf("Score = %d, want 1", st.Score)
	}
}

func TestStepInvariantsOverLongRun(t *testing.T) {
	p := DefaultParams()
	sim := NewSimulator(p, 99, nil)
	st := startedState(p, 640, 384)

	lastScore := 0
	for i := 0; i < 5000 && !st.GameOver; i++ {
		if i%18 == 0 {
			st.Entity.Velocity = st.Entity.Lift
		}
		sim.Step(st)

		if st.Entity.Y < 0 {
			t.Fatalf("frame %d: Y = %v", st.Frame, st.Entity.Y)
		}
		if st.Score < lastScore {
			t.Fatalf("frame %d: score went down from %d to %d", st.Frame, lastScore, st.Score)
		}
		lastScore = st.Score

		passed := 0
		for j, pair := range st.Pairs {
			if pair.Top.X != pair.Bottom.X || pair.Top.Color != pair.Bottom.Color {
				t.Fatalf("frame %d: pair %d halves diverged", st.Frame, j)
			}
			if j > 0 && pair.X() < st.Pairs[j-1].X() {
				t.Fatalf("frame %d: pairs out of order", st.Frame)
			}
			if pair.Passed {
				passed++
			}
		}
		if passed > st.Score {
			t.Fatalf("frame %d: %d passed pairs on screen but score %d", st.Frame, passed, st.Score)
		}
	}
}

func TestSimulatorDeterminism(t *testing.T) {
	run := func() *State {
		p := DefaultParams()
		sim := NewSimulator(p, 12345, nil)
		st := startedState(p, 640, 384)
		for i := 0; i < 2000 && !st.GameOver; i++ {
			if i%20 == 0 {
				st.Entity.Velocity = st.Entity.Lift
			}
			sim.Step(st)
		}
		return st
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs produced different states:\n%+v\n%+v", a, b)
	}
}

func TestResizeRecenters(t *testing.T) {
	p := DefaultParams()
	st := startedState(p, 800, 600)
	st.Entity.Y = 10

	st.Resize(400, 300)

	if st.Width != 400 || st.Height != 300 {
		t.Errorf("size = %vx%v, want 400x300", st.Width, st.Height)
	}
	if want := 150 - p.EntityHeight/2; st.Entity.Y != want {
		t.Errorf("Y = %v, want %v", st.Entity.Y, want)
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func inPalette(palette []core.Color, c core.Color) bool {
	for _, pc := range palette {
		if pc == c {
			return true
		}
	}
	return false
}
