package panel

import (
	"math"
	"testing"

	"github.com/notargets/aeromdao/airfoil"
	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/wing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatAirfoil(t *testing.T) *airfoil.Airfoil {
	t.Helper()
	pts := []geom.Point2D{
		{1, 0}, {0.5, 0}, {0, 0}, {0.5, 0}, {1, 0},
	}
	af, err := airfoil.New(pts)
	require.NoError(t, err)
	return af
}

func rectangularHalfWing(t *testing.T) *wing.HalfWing {
	t.Helper()
	af := flatAirfoil(t)
	sections := []wing.Section{
		{Airfoil: af, Chord: 1.0, Twist: 0},
		{Airfoil: af, Chord: 1.0, Twist: 0},
	}
	segments := []wing.Segment{{Span: 2.0, Dihedral: 0, Sweep: 0}}
	hw, err := wing.NewHalfWing(sections, segments, false)
	require.NoError(t, err)
	return hw
}

func TestBoundLegPlacement(t *testing.T) {
	p := Panel3D{
		P1: geom.Point3D{0, 0, 0},
		P2: geom.Point3D{1, 0, 0},
		P3: geom.Point3D{1, 1, 0},
		P4: geom.Point3D{0, 1, 0},
	}
	inboard, outboard := BoundLegEndpoints(p)
	assert.InDelta(t, 0.25, inboard[0], 1e-12)
	assert.InDelta(t, 0, inboard[1], 1e-12)
	assert.InDelta(t, 0.25, outboard[0], 1e-12)
	assert.InDelta(t, 1, outboard[1], 1e-12)

	c := CollocationPoint(p)
	assert.InDelta(t, 0.75, c[0], 1e-12)
	assert.InDelta(t, 0.5, c[1], 1e-12)
}

func TestMeshRectangularWing(t *testing.T) {
	hw := rectangularHalfWing(t)
	cfg := SpacingConfig{
		SpanwisePanels:  []int{4},
		ChordwisePanels: 3,
		SpanSpacing:     geom.Uniform,
		ChordSpacing:    geom.Uniform,
	}
	bound, camber, err := Mesh(hw, cfg)
	require.NoError(t, err)
	require.Len(t, bound, 12)
	require.Len(t, camber, 12)

	// flat airfoil => bound and camber meshes coincide
	for i := range bound {
		assert.InDelta(t, bound[i].P1[2], camber[i].P1[2], 1e-9)
	}

	// first panel should start at the root leading edge
	assert.InDelta(t, 0, bound[0].P1[0], 1e-9)
	assert.InDelta(t, 0, bound[0].P1[1], 1e-9)
}

func TestRigidTransformRoundTrip(t *testing.T) {
	hw := rectangularHalfWing(t)
	cfg := SpacingConfig{SpanwisePanels: []int{2}, ChordwisePanels: 2}
	bound, _, err := Mesh(hw, cfg)
	require.NoError(t, err)

	tr := RigidTransform{Position: geom.Point3D{1, 2, 3}, Axis: geom.Point3D{0, 0, 1}, AngleRad: math.Pi / 6}
	moved := ApplyPanels(bound, tr)
	back := ApplyInversePanels(moved, tr)

	for i := range bound {
		for c := 0; c < 3; c++ {
			assert.InDelta(t, bound[i].P1[c], back[i].P1[c], 1e-9)
			assert.InDelta(t, bound[i].P3[c], back[i].P3[c], 1e-9)
		}
	}
}

func TestMirrorMapSelfPairsOnSymmetryPlane(t *testing.T) {
	collocation := []float64{
		1, 0, 0, // on the plane
		2, 1, 0, // paired with below
		2, -1, 0,
	}
	mm := BuildMirrorMap(collocation, 1e-9)
	assert.Equal(t, 0, mm.Mirror(0))
	assert.Equal(t, 2, mm.Mirror(1))
	assert.Equal(t, 1, mm.Mirror(2))
}
