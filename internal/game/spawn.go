package game

import (
	"math"

	"github.com/vovakirdan/skyhop/internal/core"
)

// GapCenterRange returns the allowed range for the vertical center of a gap.
// The range is empty (min > max) when the gap plus offsets do not fit.
func GapCenterRange(height, gap, minOffset, maxOffset float64) (minCenter, maxCenter float64) {
	return minOffset + gap/2, height - maxOffset - gap/2
}

// spawn appends a new obstacle pair at the right edge of the play area.
// It reports whether the gap did not fit and the centered fallback was used.
func (s *Simulator) spawn(st *State) (degenerate bool) {
	p := s.params
	minCenter, maxCenter := GapCenterRange(st.Height, p.Gap, p.MinOffset, p.MaxOffset)

	if minCenter > maxCenter {
		s.logger.Warn("obstacle gap does not fit the play area, using centered fallback",
			"gap", p.Gap,
			"height", st.Height,
			"min_offset", p.MinOffset,
			"max_offset", p.MaxOffset,
		)
		st.Pairs = append(st.Pairs, s.fallbackPair(st))
		st.CurrentColor = s.pickColor()
		return true
	}

	// Integer steps from minCenter, never beyond maxCenter.
	span := int(math.Floor(maxCenter - minCenter))
	center := minCenter + float64(s.rng.Intn(span+1))

	st.CurrentColor = s.pickColor()
	st.Pairs = append(st.Pairs, s.pairAt(st, center-p.Gap/2, center+p.Gap/2, st.CurrentColor))
	return false
}

// fallbackPair centers the gap in the play area, clamping negative heights to zero.
func (s *Simulator) fallbackPair(st *State) ObstaclePair {
	gap := s.params.Gap
	center := st.Height / 2
	topHeight := center - gap/2
	if topHeight < 0 {
		return s.pairAt(st, 0, gap, st.CurrentColor)
	}
	return s.pairAt(st, topHeight, center+gap/2, st.CurrentColor)
}

// pairAt builds a pair whose top segment spans [0, topHeight) and whose
// bottom segment spans [bottomY, st.Height).
func (s *Simulator) pairAt(st *State, topHeight, bottomY float64, c core.Color) ObstaclePair {
	w := s.params.ObstacleWidth
	return ObstaclePair{
		Top: Segment{
			X:      st.Width,
			Y:      0,
			Width:  w,
			Height: math.Max(topHeight, 0),
			Color:  c,
		},
		Bottom: Segment{
			X:      st.Width,
			Y:      bottomY,
			Width:  w,
			Height: math.Max(st.Height-bottomY, 0),
			Color:  c,
		},
	}
}

func (s *Simulator) pickColor() core.Color {
	return s.params.Palette[s.rng.Intn(len(s.params.Palette))]
}
