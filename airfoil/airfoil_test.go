package airfoil

import (
	"testing"

	"github.com/notargets/aeromdao/geom"
	"github.com/stretchr/testify/require"
)

func naca0012() *Airfoil {
	// coarse symmetric diamond-ish stand-in, Selig order (TE->LE upper,
	// LE->TE lower), sufficient to exercise split/resample/camber logic.
	pts := []geom.Point2D{
		{1, 0}, {0.5, 0.06}, {0, 0},
		{0.5, -0.06}, {1, 0},
	}
	af, err := New(pts)
	if err != nil {
		panic(err)
	}
	return af
}

func TestSplit(t *testing.T) {
	af := naca0012()
	upper, lower := af.Split()
	require.Len(t, upper, 3)
	require.Len(t, lower, 3)
	require.Equal(t, geom.Point2D{0, 0}, upper[len(upper)-1])
	require.Equal(t, geom.Point2D{0, 0}, lower[0])
}

func TestCosineResampleIdempotent(t *testing.T) {
	af := naca0012()
	r1, err := af.CosineResample(21)
	require.NoError(t, err)
	r2, err := r1.CosineResample(21)
	require.NoError(t, err)
	require.Len(t, r2.Points, len(r1.Points))
	for i := range r1.Points {
		require.InDelta(t, r1.Points[i][0], r2.Points[i][0], 1e-9)
		require.InDelta(t, r1.Points[i][1], r2.Points[i][1], 1e-6)
	}
}

func TestCamberThicknessSymmetric(t *testing.T) {
	af := naca0012()
	_, camber, thickness, err := af.CamberThickness(11)
	require.NoError(t, err)
	for i, c := range camber {
		require.InDelta(t, 0.0, c, 1e-6, "symmetric airfoil must have zero camber at %d", i)
	}
	require.Greater(t, thickness[5], 0.0)
}
