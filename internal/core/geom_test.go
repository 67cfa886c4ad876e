package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.99, 9.99, 10, 10),
			expected: true,
		},
		{
			name:     "zero height segment touching edge",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 0),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}

			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestInTriangle(t *testing.T) {
	a, b, c := Point{0, 0}, Point{30, 15}, Point{0, 30}

	if !InTriangle(Point{5, 15}, a, b, c) {
		t.Error("point near the base should be inside")
	}
	if InTriangle(Point{25, 2}, a, b, c) {
		t.Error("point above the slanted edge should be outside")
	}
	if !InTriangle(a, a, b, c) {
		t.Error("vertex should count as inside")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{0.25, 0.25}, // within range
		{-0.5, 0},    // below min
		{1.5, 1},     // above max
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, 0, 1); got != tc.expected {
			t.Errorf("ClampF(%v, 0, 1) = %v, expected %v", tc.val, got, tc.expected)
		}
	}
}
