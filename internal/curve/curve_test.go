package curve

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestInterpolate_EmptyPoints(t *testing.T) {
	if _, err := Interpolate(nil, 5); err == nil {
		t.Fatal("expected error for empty point list")
	}
}

func TestInterpolate_BelowRange(t *testing.T) {
	pts := []Point{{5, 32}, {10, 44}}
	y, err := Interpolate(pts, 1)
	if err != nil {
		t.Fatal(err)
	}
	if y != 32 {
		t.Errorf("expected flat extrapolation to 32, got %v", y)
	}
}

func TestInterpolate_AboveRange(t *testing.T) {
	pts := []Point{{5, 32}, {10, 44}}
	y, err := Interpolate(pts, 200)
	if err != nil {
		t.Fatal(err)
	}
	if y != 44 {
		t.Errorf("expected flat extrapolation to 44, got %v", y)
	}
}

func TestInterpolate_Interior(t *testing.T) {
	// Between (5,32) and (10,44): 32 + (6-5)/(10-5)*(44-32) = 34.4
	pts := []Point{{0, 0}, {5, 32}, {10, 44}}
	y, err := Interpolate(pts, 6)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(y, 34.4) {
		t.Errorf("expected 34.4, got %v", y)
	}
}

func TestInterpolate_ExactKnot(t *testing.T) {
	pts := []Point{{0, 0}, {5, 32}, {10, 44}}
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{5, 32},
		{10, 44},
	}
	for _, tc := range tests {
		y, err := Interpolate(pts, tc.x)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(y, tc.want) {
			t.Errorf("Interpolate(%v) = %v, want %v", tc.x, y, tc.want)
		}
	}
}

func TestInterpolate_MonotonicWhenYMonotonic(t *testing.T) {
	pts := []Point{{0, 0}, {1, 12}, {5, 32}, {10, 44}, {20, 56}, {50, 72}, {100, 84}}
	prev := -1.0
	for x := -5.0; x <= 120; x += 0.5 {
		y, err := Interpolate(pts, x)
		if err != nil {
			t.Fatal(err)
		}
		if y < prev {
			t.Fatalf("not monotonic at x=%v: %v < %v", x, y, prev)
		}
		prev = y
	}
}

func TestNew_SortsPoints(t *testing.T) {
	c, err := New("test", []Point{{10, 44}, {0, 0}, {5, 32}})
	if err != nil {
		t.Fatal(err)
	}
	pts := c.Points()
	for i := 1; i < len(pts); i++ {
		if pts[i].X <= pts[i-1].X {
			t.Fatalf("points not sorted: %v", pts)
		}
	}
	if !almostEqual(c.Y(6), 34.4) {
		t.Errorf("expected 34.4 after sorting, got %v", c.Y(6))
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{"empty", nil},
		{"single point", []Point{{0, 0}}},
		{"duplicate x", []Point{{0, 0}, {5, 10}, {5, 20}}},
		{"negative x", []Point{{-1, 0}, {5, 10}}},
		{"negative y", []Point{{0, -1}, {5, 10}}},
	}
	for _, tc := range tests {
		if _, err := New(tc.name, tc.points); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestNew_ErrorNamesCurve(t *testing.T) {
	_, err := New("distress 1 severity M", []Point{{0, 0}})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "distress 1 severity M") {
		t.Errorf("error should name the curve, got %q", got)
	}
}
