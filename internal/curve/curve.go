// Package curve provides validated piecewise-linear curves with clamped
// extrapolation, the lookup primitive behind deduct and CDV tables.
package curve

import (
	"fmt"
	"sort"
)

// Point is one knot on a curve.
type Point struct {
	X float64
	Y float64
}

// Curve is a named, validated point set with strictly increasing X.
type Curve struct {
	name   string
	points []Point
}

// New sorts points by X ascending and validates them. The name is only
// used in error messages.
func New(name string, points []Point) (*Curve, error) {
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	if err := validate(name, pts); err != nil {
		return nil, err
	}
	return &Curve{name: name, points: pts}, nil
}

func validate(name string, pts []Point) error {
	if len(pts) == 0 {
		return fmt.Errorf("%s: points list cannot be empty", name)
	}
	if len(pts) < 2 {
		return fmt.Errorf("%s: need at least 2 points for interpolation", name)
	}
	for i, p := range pts {
		if p.X < 0 || p.Y < 0 {
			return fmt.Errorf("%s: x and y values must be non-negative", name)
		}
		if i > 0 && p.X <= pts[i-1].X {
			return fmt.Errorf("%s: x values must be strictly increasing", name)
		}
	}
	return nil
}

// Name returns the curve's diagnostic name.
func (c *Curve) Name() string { return c.name }

// Points returns the sorted knots.
func (c *Curve) Points() []Point { return c.points }

// Y interpolates the curve at x. Validation guarantees the point set is
// non-empty, so this cannot fail.
func (c *Curve) Y(x float64) float64 {
	y, _ := Interpolate(c.points, x)
	return y
}

// Interpolate linearly interpolates an x-ascending point set at x.
// Queries below the first knot return the first Y, queries above the
// last knot return the last Y. Interior queries use the bracketing pair
// with x0 < x <= x1.
func Interpolate(points []Point, x float64) (float64, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("points list cannot be empty")
	}

	if x <= points[0].X {
		return points[0].Y, nil
	}
	if x >= points[len(points)-1].X {
		return points[len(points)-1].Y, nil
	}

	// First knot with X >= x; x is strictly inside the range here.
	idx := sort.Search(len(points), func(i int) bool { return points[i].X >= x })

	x0, y0 := points[idx-1].X, points[idx-1].Y
	x1, y1 := points[idx].X, points[idx].Y

	if x1 == x0 {
		return y0, nil
	}

	t := (x - x0) / (x1 - x0)
	return y0 + t*(y1-y0), nil
}
