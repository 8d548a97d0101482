package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedPoint(t *testing.T) {
	p1 := Point3D{0, 1, 0}
	p2 := Point3D{4, 1, 8}
	// only x,z are shifted by 1/4; y holds its p1 value (mu=0)
	w := WeightedPoint(p1, p2, 0.25, 0, 0.25)
	require.InDelta(t, 1.0, w[0], 1e-12)
	require.InDelta(t, 1.0, w[1], 1e-12)
	require.InDelta(t, 2.0, w[2], 1e-12)
}

func TestForwardDiff(t *testing.T) {
	x := []float64{0, 1, 3, 6}
	d := ForwardDiff(x)
	assert.Equal(t, []float64{1, 2, 3}, d)
	assert.Nil(t, ForwardDiff([]float64{1}))
}

func TestRotate2D(t *testing.T) {
	p := Point2D{1, 0}
	r := Rotate2D(p, math.Pi/2)
	assert.InDelta(t, 0.0, r[0], 1e-9)
	assert.InDelta(t, 1.0, r[1], 1e-9)
}

func TestRotateAxisAngleIdentity(t *testing.T) {
	p := Point3D{1, 2, 3}
	r := RotateAxisAngle(p, Point3D{0, 0, 1}, 0)
	for i := range p {
		assert.InDelta(t, p[i], r[i], 1e-12)
	}
}

func TestCosineSpacingEndpoints(t *testing.T) {
	x := CosineSpacing(0, 1, 10)
	require.Len(t, x, 10)
	assert.InDelta(t, 0.0, x[0], 1e-12)
	assert.InDelta(t, 1.0, x[len(x)-1], 1e-12)
	// clustering: first interval should be smaller than the middle one
	assert.Less(t, x[1]-x[0], x[5]-x[4])
}

func TestCosineSpacingIdempotent(t *testing.T) {
	// two calls at the same count yield the same points, the spacing
	// half of invariant 7 (airfoil resampling is checked in package airfoil)
	x1 := CosineSpacing(-1, 1, 21)
	x2 := CosineSpacing(-1, 1, 21)
	assert.Equal(t, x1, x2)
}

func TestUniformSpacing(t *testing.T) {
	x := UniformSpacing(0, 10, 5)
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, x)
}
