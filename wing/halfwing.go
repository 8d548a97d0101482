// Package wing composes airfoil sections into half-wing and full-wing
// lifting-surface geometry: leading/trailing-edge curves, projected
// area, span, and mean aerodynamic chord.
package wing

import (
	"fmt"
	"math"

	"github.com/notargets/aeromdao/airfoil"
	"github.com/notargets/aeromdao/geom"
)

// Section describes one spanwise station of a HalfWing.
type Section struct {
	Airfoil *airfoil.Airfoil
	Chord   float64 // must be > 0
	Twist   float64 // radians, positive nose-up as supplied by the caller
}

// Segment describes the geometry between two adjacent sections.
type Segment struct {
	Span    float64 // must be > 0
	Dihedral float64 // radians
	Sweep    float64 // leading-edge sweep, radians
}

// HalfWing is an ordered sequence of N sections and N-1 trapezoidal
// segments between them. Twist is stored negated internally so that a
// positive caller-supplied twist rotates the section leading-edge-up
// about the spanwise axis (see SPEC_FULL.md §9 open-question
// resolution).
type HalfWing struct {
	Sections []Section
	Segments []Segment
	Mirror   bool // true for the left half: panel.Mesh reflects it about y=0
}

// NewHalfWing validates and constructs a half-wing. len(sections) must
// be >= 2 and len(segments) == len(sections)-1.
func NewHalfWing(sections []Section, segments []Segment, mirror bool) (*HalfWing, error) {
	if len(sections) < 2 {
		return nil, fmt.Errorf("wing: half-wing needs at least 2 sections, have %d", len(sections))
	}
	if len(segments) != len(sections)-1 {
		return nil, fmt.Errorf("wing: expected %d segments for %d sections, have %d",
			len(sections)-1, len(sections), len(segments))
	}
	for i, s := range sections {
		if s.Chord <= 0 {
			return nil, fmt.Errorf("wing: section %d has non-positive chord %g", i, s.Chord)
		}
	}
	for i, g := range segments {
		if g.Span <= 0 {
			return nil, fmt.Errorf("wing: segment %d has non-positive span %g", i, g.Span)
		}
	}
	hw := &HalfWing{Mirror: mirror}
	hw.Sections = make([]Section, len(sections))
	copy(hw.Sections, sections)
	for i := range hw.Sections {
		hw.Sections[i].Twist = -sections[i].Twist
	}
	hw.Segments = append(hw.Segments, segments...)
	return hw, nil
}

// LeadingEdge returns the leading-edge point of each of the N sections,
// computed by integrating the per-segment sweep/dihedral (§4.C). Always
// returns the unmirrored (positive-y, right-half) geometry; the left
// half's reflection about y=0 is applied once, downstream, by
// panel.Mesh's mirrorY (which also has to flip winding to keep panel
// normals outward, so it is the single place the reflection belongs).
func (hw *HalfWing) LeadingEdge() []geom.Point3D {
	pts := make([]geom.Point3D, len(hw.Sections))
	var x, y, z float64
	pts[0] = geom.Point3D{0, 0, 0}
	for k, seg := range hw.Segments {
		x += seg.Span * math.Tan(seg.Sweep)
		y += seg.Span
		z += seg.Span * math.Tan(seg.Dihedral)
		pts[k+1] = geom.Point3D{x, y, z}
	}
	return pts
}

// TrailingEdge returns the trailing-edge point of each section: LE_k +
// (c_k, 0, c_k*sin(twist_k)) in local chord-aligned x-z (§4.C).
func (hw *HalfWing) TrailingEdge() []geom.Point3D {
	le := hw.LeadingEdge()
	te := make([]geom.Point3D, len(le))
	for k, p := range le {
		c := hw.Sections[k].Chord
		twist := hw.Sections[k].Twist
		te[k] = p.Add(geom.Point3D{c, 0, c * math.Sin(twist)})
	}
	return te
}

// ProjectedArea is Sum_k s_k*meanChord_k*cos(meanTwist_k). s_k is the
// y-projected segment span used directly by LeadingEdge (dihedral and
// sweep only displace x/z, never y — see the open-question resolution
// in DESIGN.md), so no separate cos(Gamma)*cos(Lambda) reduction is
// applied here.
func (hw *HalfWing) ProjectedArea() float64 {
	var area float64
	for k, seg := range hw.Segments {
		meanChord := 0.5 * (hw.Sections[k].Chord + hw.Sections[k+1].Chord)
		meanTwist := 0.5 * (hw.Sections[k].Twist + hw.Sections[k+1].Twist)
		area += seg.Span * meanChord * math.Cos(meanTwist)
	}
	return area
}

// Span is Sum_k s_k, consistent with LeadingEdge's y_k = y_{k-1} + s_k.
func (hw *HalfWing) Span() float64 {
	var b float64
	for _, seg := range hw.Segments {
		b += seg.Span
	}
	return b
}

// segmentMAC is the mean aerodynamic chord of a trapezoidal segment
// with root chord cr and taper lambda = ct/cr: (2/3)*cr*(1+l+l^2)/(1+l).
func segmentMAC(cr, ct float64) float64 {
	lambda := ct / cr
	return (2.0 / 3.0) * cr * (1 + lambda + lambda*lambda) / (1 + lambda)
}

// segmentArea is the per-segment contribution to ProjectedArea, used
// to weight the per-segment MAC contribution.
func (hw *HalfWing) segmentArea(k int) float64 {
	seg := hw.Segments[k]
	meanChord := 0.5 * (hw.Sections[k].Chord + hw.Sections[k+1].Chord)
	meanTwist := 0.5 * (hw.Sections[k].Twist + hw.Sections[k+1].Twist)
	return seg.Span * meanChord * math.Cos(meanTwist)
}

// MAC is the area-weighted mean aerodynamic chord: Sum MAC_k*A_k / Sum A_k.
func (hw *HalfWing) MAC() float64 {
	var num, den float64
	for k := range hw.Segments {
		a := hw.segmentArea(k)
		mac := segmentMAC(hw.Sections[k].Chord, hw.Sections[k+1].Chord)
		num += mac * a
		den += a
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// MACLocation returns the area-weighted quarter-chord reference point
// of the half-wing's mean aerodynamic chord, used as the default
// moment reference point. Reported in the planform projection (z=0),
// consistent with ProjectedArea/Span ignoring dihedral's out-of-plane
// displacement (see DESIGN.md).
//
// Each segment's own quarter-chord point is located with the standard
// tapered-panel formulas for the spanwise offset of the MAC from the
// segment root, y_mac = (span/6)*(1+2*lambda)/(1+lambda), and the
// corresponding leading-edge sweep offset x_mac = y_mac*tan(sweep);
// segments are then blended by projected area exactly as MAC() blends
// segmentMAC.
func (hw *HalfWing) MACLocation() geom.Point3D {
	le := hw.LeadingEdge()
	var num geom.Point3D
	var den float64
	for k, seg := range hw.Segments {
		a := hw.segmentArea(k)
		cr, ct := hw.Sections[k].Chord, hw.Sections[k+1].Chord
		lambda := ct / cr
		mac := segmentMAC(cr, ct)
		yMac := seg.Span / 6 * (1 + 2*lambda) / (1 + lambda)
		xMac := yMac * math.Tan(seg.Sweep)
		qc := geom.Point3D{le[k][0] + xMac + 0.25*mac, le[k][1] + yMac, 0}
		num = num.Add(qc.Scale(a))
		den += a
	}
	if den == 0 {
		return geom.Point3D{}
	}
	return num.Scale(1 / den)
}
