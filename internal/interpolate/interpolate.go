// Package interpolate maps a time budget onto a gas price by piecewise
// linear interpolation over the (time, price) points an oracle publishes.
package interpolate

import "sort"

// Point is a single (X, Y) sample.
type Point struct {
	X float64
	Y float64
}

// Linear evaluates the piecewise-linear function through points at x,
// clamping to the first and last samples outside their range. Points must
// be non-empty and sorted by ascending X.
func Linear(x float64, points []Point) float64 {
	if x <= points[0].X {
		return points[0].Y
	}

	last := points[len(points)-1]
	if x >= last.X {
		return last.Y
	}

	i := sort.Search(len(points), func(i int) bool { return points[i].X >= x })
	lo, hi := points[i-1], points[i]
	t := (x - lo.X) / (hi.X - lo.X)

	return lo.Y + t*(hi.Y-lo.Y)
}
