package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinear(t *testing.T) {
	points := []Point{
		{X: 15, Y: 100},
		{X: 60, Y: 90},
		{X: 300, Y: 80},
	}

	// Clamped below and above.
	assert.Equal(t, 100.0, Linear(0, points))
	assert.Equal(t, 100.0, Linear(15, points))
	assert.Equal(t, 80.0, Linear(300, points))
	assert.Equal(t, 80.0, Linear(9999, points))

	// Exact sample.
	assert.Equal(t, 90.0, Linear(60, points))

	// Midpoints.
	assert.InDelta(t, 95.0, Linear(37.5, points), 1e-9)
	assert.InDelta(t, 85.0, Linear(180, points), 1e-9)
}

func TestLinearSinglePoint(t *testing.T) {
	points := []Point{{X: 60, Y: 42}}
	assert.Equal(t, 42.0, Linear(0, points))
	assert.Equal(t, 42.0, Linear(60, points))
	assert.Equal(t, 42.0, Linear(120, points))
}
