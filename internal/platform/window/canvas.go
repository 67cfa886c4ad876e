package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/skyhop/internal/core"
)

// debugGlyphHeight is the line height of ebitenutil's debug font.
const debugGlyphHeight = 16

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// imageCanvas draws onto an ebiten image. Draw calls made while no target
// is bound are dropped; ebiten only allows drawing the screen from Draw.
type imageCanvas struct {
	target *ebiten.Image
}

func (c *imageCanvas) bind(target *ebiten.Image) { c.target = target }
func (c *imageCanvas) unbind()                   { c.target = nil }

func (c *imageCanvas) FillGradient(top, bottom core.Color) {
	if c.target == nil {
		return
	}
	b := c.target.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vs := []ebiten.Vertex{
		vertex(0, 0, top),
		vertex(w, 0, top),
		vertex(0, h, bottom),
		vertex(w, h, bottom),
	}
	is := []uint16{0, 1, 2, 1, 3, 2}
	c.target.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (c *imageCanvas) FillTriangle(a, b, d core.Point, col core.Color) {
	if c.target == nil {
		return
	}
	vs := []ebiten.Vertex{
		vertex(float32(a.X), float32(a.Y), col),
		vertex(float32(b.X), float32(b.Y), col),
		vertex(float32(d.X), float32(d.Y), col),
	}
	c.target.DrawTriangles(vs, []uint16{0, 1, 2}, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *imageCanvas) FillCircle(center core.Point, radius float64, col core.Color) {
	if c.target == nil {
		return
	}
	vector.DrawFilledCircle(c.target, float32(center.X), float32(center.Y), float32(radius), col, true)
}

func (c *imageCanvas) FillRect(r core.Rect, col core.Color) {
	if c.target == nil {
		return
	}
	vector.DrawFilledRect(c.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

func (c *imageCanvas) StrokeRect(r core.Rect, width float64, col core.Color) {
	if c.target == nil {
		return
	}
	vector.StrokeRect(c.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), col, false)
}

// FillText draws with the debug font, which ignores color. The position is
// a baseline, matching the other canvases.
func (c *imageCanvas) FillText(at core.Point, text string, _ core.Color) {
	if c.target == nil {
		return
	}
	ebitenutil.DebugPrintAt(c.target, text, int(at.X), int(at.Y)-debugGlyphHeight)
}

func vertex(x, y float32, c core.Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: 1,
	}
}
