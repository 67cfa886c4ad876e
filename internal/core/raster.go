package core

import "math"

// Raster draws play-area geometry onto a Screen. One terminal cell covers
// CellW x CellH play-area pixels; a cell is painted when its center falls
// inside the shape.
type Raster struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewRaster wraps a screen. Non-positive cell sizes fall back to 1.
func NewRaster(screen *Screen, cellW, cellH float64) *Raster {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Raster{screen: screen, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying cell buffer.
func (r *Raster) Screen() *Screen {
	return r.screen
}

// PlaySize returns the play-area size in pixels covered by the screen.
func (r *Raster) PlaySize() (float64, float64) {
	return float64(r.screen.Width()) * r.cellW, float64(r.screen.Height()) * r.cellH
}

// cellCenter returns the pixel position of the center of cell (cx, cy).
func (r *Raster) cellCenter(cx, cy int) Point {
	return Point{X: (float64(cx) + 0.5) * r.cellW, Y: (float64(cy) + 0.5) * r.cellH}
}

// cellSpan returns the inclusive range of cells whose centers lie in
// [lo, hi) along one axis, clipped to [0, limit).
func cellSpan(lo, hi, size float64, limit int) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Ceil(hi/size-0.5)) - 1
	return max(first, 0), min(last, limit-1)
}

// FillGradient paints every cell background with a vertical blend from
// top to bottom.
func (r *Raster) FillGradient(top, bottom Color) {
	h := r.screen.Height()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		bg := top.Blend(bottom, t)
		for x := 0; x < r.screen.Width(); x++ {
			r.screen.SetBg(x, y, bg)
		}
	}
}

// FillRect paints the background of every cell covered by rect.
func (r *Raster) FillRect(rect Rect, c Color) {
	x0, x1 := cellSpan(rect.X, rect.Right(), r.cellW, r.screen.Width())
	y0, y1 := cellSpan(rect.Y, rect.Bottom(), r.cellH, r.screen.Height())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetBg(x, y, c)
		}
	}
}

// StrokeRect outlines the cells covered by rect with box-drawing runes.
// A cell is the thinnest line a terminal can show, so width is ignored.
func (r *Raster) StrokeRect(rect Rect, _ float64, c Color) {
	x0 := int(math.Ceil(rect.X/r.cellW - 0.5))
	x1 := int(math.Ceil(rect.Right()/r.cellW-0.5)) - 1
	y0 := int(math.Ceil(rect.Y/r.cellH - 0.5))
	y1 := int(math.Ceil(rect.Bottom()/r.cellH-0.5)) - 1
	if x1 < x0 || y1 < y0 {
		return
	}
	r.screen.DrawBox(x0, y0, x1, y1, c)
}

// FillTriangle paints the cells whose centers fall inside triangle abc.
func (r *Raster) FillTriangle(a, b, c Point, col Color) {
	minX := math.Min(a.X, math.Min(b.X, c.X))
	maxX := math.Max(a.X, math.Max(b.X, c.X))
	minY := math.Min(a.Y, math.Min(b.Y, c.Y))
	maxY := math.Max(a.Y, math.Max(b.Y, c.Y))
	x0, x1 := cellSpan(minX, maxX, r.cellW, r.screen.Width())
	y0, y1 := cellSpan(minY, maxY, r.cellH, r.screen.Height())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if InTriangle(r.cellCenter(x, y), a, b, c) {
				r.screen.SetBg(x, y, col)
			}
		}
	}
}

// FillCircle marks the cell under center with a dot; dots smaller than a
// cell would otherwise disappear.
func (r *Raster) FillCircle(center Point, _ float64, c Color) {
	x := int(math.Floor(center.X / r.cellW))
	y := int(math.Floor(center.Y / r.cellH))
	if !r.screen.inBounds(x, y) {
		return
	}
	cell := r.screen.GetCell(x, y)
	cell.Rune = '●'
	cell.Fg = c
	r.screen.SetCell(x, y, cell)
}

// FillText writes text with its baseline at the given pixel position.
func (r *Raster) FillText(at Point, text string, c Color) {
	x := int(math.Floor(at.X / r.cellW))
	y := int(math.Ceil(at.Y/r.cellH)) - 1
	r.screen.DrawText(x, max(y, 0), text, c)
}
