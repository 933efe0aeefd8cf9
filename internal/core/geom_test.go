package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "identical position",
			a:        NewRect(0, 0, 30, 30),
			b:        NewRect(0, 0, 30, 30),
			expected: true,
		},
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 30, 30),
			b:        NewRect(15, 15, 30, 30),
			expected: true,
		},
		{
			name:     "separated by exactly one width",
			a:        NewRect(0, 0, 30, 30),
			b:        NewRect(30, 0, 30, 30),
			expected: false,
		},
		{
			name:     "separated by exactly one height",
			a:        NewRect(0, 0, 30, 30),
			b:        NewRect(0, 30, 30, 30),
			expected: false,
		},
		{
			name:     "far apart horizontally",
			a:        NewRect(-200, -240, 30, 30),
			b:        NewRect(400, -240, 30, 30),
			expected: false,
		},
		{
			name:     "floor vs ceiling",
			a:        NewRect(-200, -240, 30, 30),
			b:        NewRect(-200, 240, 30, 30),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 40, 40),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        NewRect(0, 0, 30, 30),
			b:        NewRect(29.9, 29.9, 30, 30),
			expected: true,
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
	r := RectAt(V(5, 10), 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Top() != 25 {
		t.Errorf("Top() = %v, expected 25", r.Top())
	}
}

func TestVecDist(t *testing.T) {
	a := V(0, 0)
	b := V(3, 4)

	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
	if d := b.Dist(a); d != 5 {
		t.Errorf("Dist() reversed = %v, expected 5", d)
	}
	if got := b.Sub(a).Add(a); got != b {
		t.Errorf("Sub/Add round trip = %v, expected %v", got, b)
	}
	if l := V(-6, 8).Len(); math.Abs(l-10) > 1e-12 {
		t.Errorf("Len() = %v, expected 10", l)
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

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
