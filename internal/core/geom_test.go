package core

import "testing"

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{0.0, 0.0, 400.0, 0.0},
		{400.0, 0.0, 400.0, 400.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampFStaysInRange(t *testing.T) {
	const maxY = 400.0
	for target := -1000.0; target <= 1000.0; target += 7.25 {
		got := ClampF(target, 0, maxY)
		if got < 0 || got > maxY {
			t.Fatalf("ClampF(%f) = %f, outside [0, %f]", target, got, maxY)
		}
		if target >= 0 && target <= maxY && got != target {
			t.Fatalf("ClampF(%f) = %f, in-range value should pass through", target, got)
		}
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected bool
	}{
		{"below", 9.999, false},
		{"at min", 10, true},
		{"inside", 50, true},
		{"at max", 110, true},
		{"above", 110.001, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InRange(tc.val, 10, 110); got != tc.expected {
				t.Errorf("InRange(%f, 10, 110) = %v, expected %v", tc.val, got, tc.expected)
			}
		})
	}
}

// fixedSource replays a fixed value as every draw.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestRandomInt(t *testing.T) {
	tests := []struct {
		draw     float64
		expected int
	}{
		{0.0, 1},
		{0.33, 1},
		{0.34, 2},
		{0.66, 2},
		{0.67, 3},
		{0.999999, 3}, // never reaches b
	}

	for _, tc := range tests {
		got := RandomInt(fixedSource(tc.draw), 1, 4)
		if got != tc.expected {
			t.Errorf("RandomInt(%f, 1, 4) = %d, expected %d", tc.draw, got, tc.expected)
		}
	}
}
