package game

import (
	"math"
	"strconv"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Canvas is a 2D drawing surface in play-area pixels. It is implemented by
// core.Raster for terminals and by the window front end for pixel output.
type Canvas interface {
	FillGradient(top, bottom core.Color)
	FillTriangle(a, b, c core.Point, color core.Color)
	FillCircle(center core.Point, radius float64, color core.Color)
	FillRect(r core.Rect, color core.Color)
	StrokeRect(r core.Rect, lineWidth float64, color core.Color)
	FillText(at core.Point, text string, color core.Color)
}

// BackgroundHues returns the hues of the two gradient stops for a frame.
func BackgroundHues(frame int, rp RenderParams) (top, bottom float64) {
	phase := float64(frame) * rp.HueRate
	return math.Mod(phase, 360), math.Mod(phase+rp.HueOffset, 360)
}

// Render paints the state onto the canvas. It never modifies the state.
func Render(st *State, rp RenderParams, c Canvas) {
	topHue, bottomHue := BackgroundHues(st.Frame, rp)
	c.FillGradient(
		core.HSL(topHue, rp.Saturation, rp.TopLightness),
		core.HSL(bottomHue, rp.Saturation, rp.BottomLightness),
	)

	drawEntity(st.Entity, rp, c)

	for _, pair := range st.Pairs {
		drawSegment(pair.Top, rp, c)
		drawSegment(pair.Bottom, rp, c)
	}

	c.FillText(rp.ScorePos, rp.ScoreLabel+strconv.Itoa(st.Score), rp.ScoreColor)
}

func drawEntity(e Entity, rp RenderParams, c Canvas) {
	c.FillTriangle(
		core.Point{X: e.X, Y: e.Y},
		core.Point{X: e.X + e.Width, Y: e.Y + e.Height/2},
		core.Point{X: e.X, Y: e.Y + e.Height},
		rp.EntityColor,
	)
	c.FillCircle(core.Point{X: e.X + e.Width/4, Y: e.Y + e.Height/4}, rp.EyeRadius, rp.EyeColor)
}

func drawSegment(s Segment, rp RenderParams, c Canvas) {
	r := s.Rect()
	c.FillRect(r, s.Color)
	c.StrokeRect(r, rp.OutlineWidth, rp.OutlineColor)
}
