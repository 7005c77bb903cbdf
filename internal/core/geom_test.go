package core

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		v, n, expected int
	}{
		{0, 20, 0},
		{19, 20, 19},
		{20, 20, 0},  // past right/bottom edge
		{-1, 20, 19}, // past left/top edge
		{-21, 20, 19},
		{45, 20, 5},
	}

	for _, tc := range tests {
		if got := Wrap(tc.v, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.v, tc.n, got, tc.expected)
		}
	}
}

func TestWrapPoint(t *testing.T) {
	p := WrapPoint(Point{X: 10, Y: -1}, 10, 5)
	if p != (Point{X: 0, Y: 4}) {
		t.Errorf("WrapPoint = %+v, expected {0 4}", p)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	r := NewRect(0, 0, 80, 24).Centered(22, 12)
	if r.X != 29 || r.Y != 6 || r.W != 22 || r.H != 12 {
		t.Errorf("Centered() = %+v, expected {29 6 22 12}", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{1, 0, 2, 1},
		{-1, 0, 2, 0},
		{3, 0, 2, 2},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
