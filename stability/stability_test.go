package stability

import (
	"math"
	"testing"

	"github.com/notargets/aeromdao/airfoil"
	"github.com/notargets/aeromdao/flow"
	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/panel"
	"github.com/notargets/aeromdao/wing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatAirfoil(t *testing.T) *airfoil.Airfoil {
	t.Helper()
	pts := []geom.Point2D{{1, 0}, {0.5, 0}, {0, 0}, {0.5, 0}, {1, 0}}
	af, err := airfoil.New(pts)
	require.NoError(t, err)
	return af
}

func rectangularWing(t *testing.T, span, chord float64) *wing.Wing {
	t.Helper()
	af := flatAirfoil(t)
	sections := []wing.Section{
		{Airfoil: af, Chord: chord, Twist: 0},
		{Airfoil: af, Chord: chord, Twist: 0},
	}
	segments := []wing.Segment{{Span: span / 2, Dihedral: 0, Sweep: 0}}
	half, err := wing.NewHalfWing(sections, segments, false)
	require.NoError(t, err)
	w, err := wing.NewSymmetricWing(half)
	require.NoError(t, err)
	return w
}

func fullAircraft(t *testing.T) (wing.Aircraft, map[string]panel.PanelConfig) {
	t.Helper()
	main := rectangularWing(t, 4.0, 1.0)
	htail := rectangularWing(t, 1.6, 0.4)
	vtail := rectangularWing(t, 0.8, 0.3)

	aircraft := wing.Aircraft{"Wing": main, "HTail": htail, "VTail": vtail}
	cfgs := map[string]panel.PanelConfig{
		"Wing":  {SpanwisePanels: []int{6}, ChordwisePanels: 4, Spacing: geom.Cosine},
		"HTail": {SpanwisePanels: []int{4}, ChordwisePanels: 3, Spacing: geom.Cosine, Position: geom.Point3D{3.0, 0, 0.1}},
		"VTail": {SpanwisePanels: []int{4}, ChordwisePanels: 3, Spacing: geom.Cosine, Position: geom.Point3D{3.2, 0, 0.3}, Axis: geom.Point3D{1, 0, 0}, AngleRad: math.Pi / 2},
	}
	return aircraft, cfgs
}

func TestSolveStabilityCaseBaseReportsAllComponents(t *testing.T) {
	aircraft, cfgs := fullAircraft(t)
	fs := flow.Uniform3D{V: 10, Alpha: 3 * math.Pi / 180}
	ref := flow.Reference{Sref: aircraft["Wing"].ProjectedArea(), Bref: aircraft["Wing"].Span(), Cref: aircraft["Wing"].MAC(), Rho: 1.225}

	res, err := SolveStabilityCase(aircraft, cfgs, fs, ref)
	require.NoError(t, err)
	assert.Len(t, res.Base.Components, 3)
}

func TestSolveStabilityCaseLiftCurveSlopePositive(t *testing.T) {
	aircraft, cfgs := fullAircraft(t)
	fs := flow.Uniform3D{V: 10, Alpha: 3 * math.Pi / 180}
	ref := flow.Reference{Sref: aircraft["Wing"].ProjectedArea(), Bref: aircraft["Wing"].Span(), Cref: aircraft["Wing"].MAC(), Rho: 1.225}

	res, err := SolveStabilityCase(aircraft, cfgs, fs, ref)
	require.NoError(t, err)
	// dCL/dalpha should be positive and of a physically sane magnitude
	// (finite-wing lift-curve slope is well below the 2D value of 2pi).
	dCLdAlpha := res.Derivatives[2][0]
	assert.Greater(t, dCLdAlpha, 0.5)
	assert.Less(t, dCLdAlpha, 2*math.Pi)
}

func TestSolveStabilityCaseSideslipDerivativesFiniteAtSymmetricBase(t *testing.T) {
	aircraft, cfgs := fullAircraft(t)
	fs := flow.Uniform3D{V: 10, Alpha: 2 * math.Pi / 180}
	ref := flow.Reference{Sref: aircraft["Wing"].ProjectedArea(), Bref: aircraft["Wing"].Span(), Cref: aircraft["Wing"].MAC(), Rho: 1.225}

	res, err := SolveStabilityCase(aircraft, cfgs, fs, ref)
	require.NoError(t, err)
	for row := 0; row < 6; row++ {
		for col := 0; col < 5; col++ {
			assert.False(t, math.IsNaN(res.Derivatives[row][col]))
			assert.False(t, math.IsInf(res.Derivatives[row][col], 0))
		}
	}
}
