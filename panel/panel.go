// Package panel discretizes lifting-surface geometry into quadrilateral
// panels, places horseshoe bound legs and collocation points on the
// bound-leg mesh, and derives panel normals from the matching camber
// mesh.
package panel

import (
	"fmt"
	"math"

	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/wing"
)

// Panel3D is an ordered quadruple of 3D points: p1 forward-inboard, p2
// aft-inboard, p3 aft-outboard, p4 forward-outboard. The local normal
// points upward for a standard wing in level flight.
type Panel3D struct {
	P1, P2, P3, P4 geom.Point3D
}

// Centroid is the arithmetic mean of the four corners.
func (p Panel3D) Centroid() geom.Point3D {
	sum := p.P1.Add(p.P2).Add(p.P3).Add(p.P4)
	return sum.Scale(0.25)
}

// Normal returns the outward unit normal computed from the two
// diagonals, consistent for the near-planar
// quadrilaterals produced by the paneller.
func (p Panel3D) Normal() geom.Point3D {
	d1 := p.P3.Sub(p.P1)
	d2 := p.P4.Sub(p.P2)
	return d1.Cross(d2).Unit()
}

// Area is the magnitude of half the cross product of the diagonals,
// exact for a planar quadrilateral and a close approximation for the
// slightly non-planar camber-mesh panels.
func (p Panel3D) Area() float64 {
	d1 := p.P3.Sub(p.P1)
	d2 := p.P4.Sub(p.P2)
	return 0.5 * d1.Cross(d2).Norm()
}

// Transform applies f to every corner, returning a new panel.
func (p Panel3D) Transform(f func(geom.Point3D) geom.Point3D) Panel3D {
	return Panel3D{f(p.P1), f(p.P2), f(p.P3), f(p.P4)}
}

// SpacingConfig configures spanwise and chordwise subdivision of a
// half-wing into panels.
type SpacingConfig struct {
	SpanwisePanels   []int // one entry per inter-section segment
	ChordwisePanels  int
	SpanSpacing      geom.SpacingKind
	ChordSpacing     geom.SpacingKind
	CamberResolution int // airfoil camber-line sample count; 0 selects a default
}

const defaultCamberResolution = 33

// PanelConfig is the solve-entry-point panelling configuration from
// spec.md §6: per-segment spanwise counts, a chordwise count, one
// spacing rule shared by both directions, and a rigid placement
// (position/axis/angle) used to seat a component mesh into the
// aircraft frame before AIC assembly.
type PanelConfig struct {
	SpanwisePanels   []int
	ChordwisePanels  int
	Spacing          geom.SpacingKind
	CamberResolution int
	Position         geom.Point3D
	AngleRad         float64
	Axis             geom.Point3D
}

func (c PanelConfig) spacing() SpacingConfig {
	return SpacingConfig{
		SpanwisePanels:   c.SpanwisePanels,
		ChordwisePanels:  c.ChordwisePanels,
		SpanSpacing:      c.Spacing,
		ChordSpacing:     c.Spacing,
		CamberResolution: c.CamberResolution,
	}
}

func (c PanelConfig) transform() RigidTransform {
	return RigidTransform{Position: c.Position, Axis: c.Axis, AngleRad: c.AngleRad}
}

// MeshPlaced meshes hw and seats the result in the aircraft frame via
// cfg's rigid transform, letting a solve assemble multiple components
// (wing, horizontal tail, vertical tail) into one collocation set.
func MeshPlaced(hw *wing.HalfWing, cfg PanelConfig) (bound, camber []Panel3D, err error) {
	bound, camber, err = Mesh(hw, cfg.spacing())
	if err != nil {
		return nil, nil, err
	}
	t := cfg.transform()
	return ApplyPanels(bound, t), ApplyPanels(camber, t), nil
}

// Line is a straight segment between two endpoints. The mesh code in
// this package does not use it; the horseshoe/vortex primitives define
// their own Line type built from the same two endpoints (see package
// vortex).
type Line struct {
	R1, R2 geom.Point3D
}

// Mesh discretizes a half-wing into a bound-leg mesh (straight chords,
// no camber) and a matching camber mesh (follows each section's camber
// line), both with the same spanwise/chordwise grid, per spec.md §4.D.
// Panels are returned root-to-tip, leading edge to trailing edge
// per row (p1 forward-inboard .. p4 forward-outboard).
func Mesh(hw *wing.HalfWing, cfg SpacingConfig) (bound, camber []Panel3D, err error) {
	if len(cfg.SpanwisePanels) != len(hw.Segments) {
		return nil, nil, fmt.Errorf("panel: need %d spanwise panel counts, have %d",
			len(hw.Segments), len(cfg.SpanwisePanels))
	}
	if cfg.ChordwisePanels < 1 {
		return nil, nil, fmt.Errorf("panel: chordwise panel count must be >= 1, have %d", cfg.ChordwisePanels)
	}
	camberRes := cfg.CamberResolution
	if camberRes < 3 {
		camberRes = defaultCamberResolution
	}

	le := hw.LeadingEdge()
	for k := range hw.Segments {
		nSpan := cfg.SpanwisePanels[k]
		if nSpan < 1 {
			return nil, nil, fmt.Errorf("panel: segment %d needs >=1 spanwise panel", k)
		}
		secA, secB := hw.Sections[k], hw.Sections[k+1]
		leA, leB := le[k], le[k+1]

		spanStations := geom.Spacing(cfg.SpanSpacing, 0, 1, nSpan+1)
		chordStations := geom.Spacing(cfg.ChordSpacing, 0, 1, cfg.ChordwisePanels+1)

		camberA, errA := secA.Airfoil.CamberLine(camberRes)
		camberB, errB := secB.Airfoil.CamberLine(camberRes)
		if errA != nil {
			return nil, nil, fmt.Errorf("panel: camber line for segment %d root: %w", k, errA)
		}
		if errB != nil {
			return nil, nil, fmt.Errorf("panel: camber line for segment %d tip: %w", k, errB)
		}

		for i := 0; i < nSpan; i++ {
			muSpan0, muSpan1 := spanStations[i], spanStations[i+1]
			for j := 0; j < cfg.ChordwisePanels; j++ {
				muChord0, muChord1 := chordStations[j], chordStations[j+1]

				bp := straightPanel(leA, leB, secA.Chord, secB.Chord, secA.Twist, secB.Twist,
					muSpan0, muSpan1, muChord0, muChord1)
				bound = append(bound, bp)

				cp := camberPanel(leA, leB, secA.Chord, secB.Chord, camberA, camberB,
					muSpan0, muSpan1, muChord0, muChord1)
				camber = append(camber, cp)
			}
		}
	}

	if hw.Mirror {
		bound = mirrorY(bound)
		camber = mirrorY(camber)
	}
	return bound, camber, nil
}

// straightPanel builds one quadrilateral of the bound-leg (uncambered,
// straight-chord) mesh by bilinear interpolation between root and tip
// chord lines at the requested span/chord fractions.
func straightPanel(leA, leB geom.Point3D, cA, cB, twistA, twistB, mS0, mS1, mC0, mC1 float64) Panel3D {
	corner := func(muSpan, muChord float64) geom.Point3D {
		le := geom.WeightedPoint(leA, leB, muSpan, muSpan, muSpan)
		c := geom.Interp(cA, cB, muSpan)
		twist := geom.Interp(twistA, twistB, muSpan)
		chordVec := geom.Point3D{muChord * c, 0, muChord * c * sinApprox(twist)}
		return le.Add(chordVec)
	}
	return Panel3D{
		P1: corner(mS0, mC0),
		P2: corner(mS0, mC1),
		P3: corner(mS1, mC1),
		P4: corner(mS1, mC0),
	}
}

// camberPanel builds the matching camber-surface quadrilateral,
// following each section's camber line instead of a straight chord.
func camberPanel(leA, leB geom.Point3D, cA, cB float64, camberA, camberB []geom.Point2D,
	mS0, mS1, mC0, mC1 float64) Panel3D {
	corner := func(muSpan, muChord float64) geom.Point3D {
		le := geom.WeightedPoint(leA, leB, muSpan, muSpan, muSpan)
		c := geom.Interp(cA, cB, muSpan)
		zA := camberAt(camberA, muChord)
		zB := camberAt(camberB, muChord)
		z := geom.Interp(zA, zB, muSpan)
		return le.Add(geom.Point3D{muChord * c, 0, z * c})
	}
	return Panel3D{
		P1: corner(mS0, mC0),
		P2: corner(mS0, mC1),
		P3: corner(mS1, mC1),
		P4: corner(mS1, mC0),
	}
}

// camberAt linearly interpolates a camber-line sample (normalized x in
// [0,1], chord fraction) at the requested chordwise fraction mu.
func camberAt(line []geom.Point2D, mu float64) float64 {
	if len(line) == 0 {
		return 0
	}
	xMin, xMax := line[0][0], line[len(line)-1][0]
	x := xMin + mu*(xMax-xMin)
	for i := 0; i < len(line)-1; i++ {
		if x >= line[i][0] && x <= line[i+1][0] {
			span := line[i+1][0] - line[i][0]
			if span == 0 {
				return line[i][1]
			}
			t := (x - line[i][0]) / span
			return geom.Interp(line[i][1], line[i+1][1], t)
		}
	}
	return line[len(line)-1][1]
}

func sinApprox(theta float64) float64 { return math.Sin(theta) }

func mirrorY(panels []Panel3D) []Panel3D {
	out := make([]Panel3D, len(panels))
	flip := func(p geom.Point3D) geom.Point3D { return geom.Point3D{p[0], -p[1], p[2]} }
	for i, p := range panels {
		// reverse winding so the normal keeps pointing "up" after the
		// y-flip (p1<->p4, p2<->p3).
		out[i] = Panel3D{
			P1: flip(p.P4),
			P2: flip(p.P3),
			P3: flip(p.P2),
			P4: flip(p.P1),
		}
	}
	return out
}
