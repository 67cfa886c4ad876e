package game

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/vovakirdan/skyhop/internal/core"
)

// recordingCanvas logs every draw call in order.
type recordingCanvas struct {
	ops       []string
	gradients [][2]core.Color
	texts     []string
}

func (c *recordingCanvas) FillGradient(top, bottom core.Color) {
	c.ops = append(c.ops, "gradient")
	c.gradients = append(c.gradients, [2]core.Color{top, bottom})
}

func (c *recordingCanvas) FillTriangle(a, b, d core.Point, col core.Color) {
	c.ops = append(c.ops, fmt.Sprintf("triangle %v,%v %v,%v %v,%v", a.X, a.Y, b.X, b.Y, d.X, d.Y))
}

func (c *recordingCanvas) FillCircle(center core.Point, radius float64, col core.Color) {
	c.ops = append(c.ops, fmt.Sprintf("circle %v,%v r%v", center.X, center.Y, radius))
}

func (c *recordingCanvas) FillRect(r core.Rect, col core.Color) {
	c.ops = append(c.ops, fmt.Sprintf("rect %v,%v %vx%v %s", r.X, r.Y, r.W, r.H, col.Hex()))
}

func (c *recordingCanvas) StrokeRect(r core.Rect, width float64, col core.Color) {
	c.ops = append(c.ops, fmt.Sprintf("stroke %v,%v %vx%v w%v", r.X, r.Y, r.W, r.H, width))
}

func (c *recordingCanvas) FillText(at core.Point, text string, col core.Color) {
	c.ops = append(c.ops, "text")
	c.texts = append(c.texts, text)
}

func TestRenderOrder(t *testing.T) {
	p := DefaultParams()
	st := startedState(p, 800, 600)
	st.Entity.Y = 100
	st.Score = 3
	green := core.MustParseHex("#4CAF50")
	st.Pairs = append(st.Pairs, ObstaclePair{
		Top:    Segment{X: 400, Width: 50, Height: 200, Color: green},
		Bottom: Segment{X: 400, Y: 350, Width: 50, Height: 250, Color: green},
	})

	c := &recordingCanvas{}
	Render(st, p.Render, c)

	want := []string{
		"gradient",
		"triangle 50,100 80,115 50,130",
		"circle 57.5,107.5 r3",
		"rect 400,0 50x200 #4caf50",
		"stroke 400,0 50x200 w2",
		"rect 400,350 50x250 #4caf50",
		"stroke 400,350 50x250 w2",
		"text",
	}
	if !reflect.DeepEqual(c.ops, want) {
		t.Errorf("draw order:\n got %q\nwant %q", c.ops, want)
	}
	if len(c.texts) != 1 || c.texts[0] != "Score: 3" {
		t.Errorf("score text = %q, want %q", c.texts, "Score: 3")
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	p := DefaultParams()
	sim := NewSimulator(p, 3, nil)
	st := startedState(p, 640, 384)
	for i := 0; i < 200; i++ {
		sim.Step(st)
	}

	before := st.Clone()
	Render(st, p.Render, &recordingCanvas{})
	if !reflect.DeepEqual(before, st) {
		t.Error("Render modified the state")
	}
}

func TestBackgroundHues(t *testing.T) {
	rp := DefaultParams().Render

	tests := []struct {
		frame              int
		wantTop, wantBotom float64
	}{
		{0, 0, 60},
		{100, 10, 70},
		{3000, 300, 0},
		{3700, 10, 70},
	}

	for _, tt := range tests {
		top, bottom := BackgroundHues(tt.frame, rp)
		if !near(top, tt.wantTop) || !near(bottom, tt.wantBotom) {
			t.Errorf("frame %d: hues = %v, %v; want %v, %v", tt.frame, top, bottom, tt.wantTop, tt.wantBotom)
		}
	}
}

func TestRenderGradientStops(t *testing.T) {
	p := DefaultParams()
	st := startedState(p, 800, 600)

	c := &recordingCanvas{}
	Render(st, p.Render, c)

	rp := p.Render
	wantTop := core.HSL(0, rp.Saturation, rp.TopLightness)
	wantBottom := core.HSL(60, rp.Saturation, rp.BottomLightness)
	if c.gradients[0] != [2]core.Color{wantTop, wantBottom} {
		t.Errorf("gradient = %v, want %v -> %v", c.gradients[0], wantTop, wantBottom)
	}
}

// near compares hues on the circle, so 359.9999 and 0 are equal.
func near(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6 || 360-d < 1e-6
}
