package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(50, 100, 20, 10)

	if b.Left != 40 || b.Right != 60 {
		t.Errorf("horizontal edges = (%v, %v), expected (40, 60)", b.Left, b.Right)
	}
	if b.Top != 95 || b.Bottom != 105 {
		t.Errorf("vertical edges = (%v, %v), expected (95, 105)", b.Top, b.Bottom)
	}
}

func TestBoxInset(t *testing.T) {
	b := BoxAround(0, 0, 20, 20).Inset(5, 2)

	if b.Left != -5 || b.Right != 5 {
		t.Errorf("inset horizontal edges = (%v, %v), expected (-5, 5)", b.Left, b.Right)
	}
	if b.Top != -8 || b.Bottom != 8 {
		t.Errorf("inset vertical edges = (%v, %v), expected (-8, 8)", b.Top, b.Bottom)
	}
}

func TestBoxOverlapsX(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping",
			a:        Box{Left: 0, Right: 10},
			b:        Box{Left: 5, Right: 15},
			expected: true,
		},
		{
			name:     "touching edges",
			a:        Box{Left: 0, Right: 10},
			b:        Box{Left: 10, Right: 20},
			expected: false,
		},
		{
			name:     "disjoint",
			a:        Box{Left: 0, Right: 10},
			b:        Box{Left: 30, Right: 40},
			expected: false,
		},
		{
			name:     "contained",
			a:        Box{Left: 0, Right: 40},
			b:        Box{Left: 10, Right: 20},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.OverlapsX(tc.b); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.OverlapsX(tc.a); got != tc.expected {
				t.Errorf("OverlapsX() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
