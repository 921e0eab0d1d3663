package core

import (
	"errors"
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	tile := RectAt(V(40, 40), 40, 40)

	tests := []struct {
		name     string
		other    RectF
		expected bool
	}{
		{"same tile", RectAt(V(40, 40), 40, 40), true},
		{"half tile right", RectAt(V(60, 40), 40, 40), true},
		{"sub-pixel overlap", RectAt(V(79.5, 79.5), 40, 40), true},
		{"touching right edge", RectAt(V(80, 40), 40, 40), false},
		{"touching bottom edge", RectAt(V(40, 80), 40, 40), false},
		{"far away", RectAt(V(400, 300), 40, 40), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tile.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Intersects(tile); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n, err := V(3, 4).Normalize()
	if err != nil {
		t.Fatalf("Normalize() unexpected error: %v", err)
	}
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y-0.8) > 1e-9 {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", n)
	}
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("normalized length = %f, expected 1", n.Len())
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	n, err := Vec2{}.Normalize()
	if !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("Normalize() error = %v, expected ErrDegenerateVector", err)
	}
	if n != (Vec2{}) {
		t.Errorf("Normalize() = %v, expected zero vector", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Error("Normalize() of zero vector must not produce NaN")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(800, 0, 760); got != 760 {
		t.Errorf("ClampF(800, 0, 760) = %f, expected 760", got)
	}
}
