// Package vortex implements the straight-filament Biot-Savart kernel
// and the horseshoe / vortex-ring primitives built from it.
package vortex

import (
	"math"

	"github.com/notargets/aeromdao/geom"
)

// Epsilon is the Biot-Savart singularity guard: the induced velocity
// is set to zero when the field point is closer than this to the
// filament (distance measured via the min(|a|,|b|,|axb|) test below).
const Epsilon = 1e-8

// Line is a straight vortex filament from R1 to R2 of unit strength.
type Line struct {
	R1, R2 geom.Point3D
}

// Horseshoe has a single bound-leg Line; the two semi-infinite trailing
// legs are implicit and aligned with a freestream-derived direction
// supplied at velocity-evaluation time.
type Horseshoe struct {
	Bound Line
}

// VortexRing closes a loop on a panel with four Lines: left, bound,
// back, right (in that traversal order).
type VortexRing struct {
	Left, Bound, Back, Right Line
}

// BiotSavart returns the velocity induced at field point r by a
// unit-strength finite filament from r1 to r2, scaled by circulation
// gamma. Uses the numerically stable "Moran" form; returns the zero
// vector when the field point lies on the filament's infinite line
// (on the segment, or collinear but outside it) per spec.md §4.E.
func BiotSavart(r1, r2, r geom.Point3D, gamma float64) geom.Point3D {
	a := r.Sub(r1)
	b := r.Sub(r2)
	axb := a.Cross(b)

	na, nb, naxb := a.Norm(), b.Norm(), axb.Norm()
	if na < Epsilon || nb < Epsilon || naxb < Epsilon {
		return geom.Point3D{}
	}

	denom := na*nb + a.Dot(b)
	if math.Abs(denom) < Epsilon {
		return geom.Point3D{}
	}

	factor := (1/na + 1/nb) / denom
	vBound := axb.Scale(factor)
	return vBound.Scale(gamma / (4 * math.Pi))
}

// Velocity returns the Line's own induced velocity at r (no trailing
// legs), strength gamma.
func (l Line) Velocity(r geom.Point3D, gamma float64) geom.Point3D {
	return BiotSavart(l.R1, l.R2, r, gamma)
}

// semiInfiniteVelocity returns the velocity induced at r by a single
// semi-infinite trailing leg on the ray from r0 to infinity in
// direction d (unit vector, pointing downstream), with the vortex
// sense running from infinity into r0 (a leg whose sense runs out of
// r0 to infinity induces the negative of this), per the "v_trail"
// term of spec.md §4.E split into its two leg contributions:
// v = Gamma/(4*pi) * (a x d) / (|a| * (|a| - a.d)).
func semiInfiniteVelocity(r0, d, r geom.Point3D, gamma float64) geom.Point3D {
	a := r.Sub(r0)
	na := a.Norm()
	if na < Epsilon {
		return geom.Point3D{}
	}
	denom := na * (na - a.Dot(d))
	if math.Abs(denom) < Epsilon {
		return geom.Point3D{}
	}
	axd := a.Cross(d)
	return axd.Scale(gamma / (4 * math.Pi) / denom)
}

// Velocity returns the total velocity induced by the horseshoe
// (bound leg + two semi-infinite trailing legs trailing in direction
// d, unit, pointing downstream) at field point r, strength gamma.
func (h Horseshoe) Velocity(r geom.Point3D, d geom.Point3D, gamma float64) geom.Point3D {
	vBound := BiotSavart(h.Bound.R1, h.Bound.R2, r, gamma)
	// the inboard leg runs from infinity *into* R1, the sense
	// semiInfiniteVelocity assumes, so it enters with a plus sign; the
	// outboard leg runs out of R2 to infinity and enters with a minus
	// sign, matching spec.md's v_trail = (a x d)/... - (b x d)/... where
	// a is measured from the inboard leg and b from the outboard leg.
	vTrailInboard := semiInfiniteVelocity(h.Bound.R1, d, r, gamma)
	vTrailOutboard := semiInfiniteVelocity(h.Bound.R2, d, r, gamma).Scale(-1)
	return vBound.Add(vTrailInboard).Add(vTrailOutboard)
}

// Velocity returns the velocity induced by the closed four-segment
// ring at r, strength gamma (no trailing legs).
func (v VortexRing) Velocity(r geom.Point3D, gamma float64) geom.Point3D {
	total := v.Left.Velocity(r, gamma)
	total = total.Add(v.Bound.Velocity(r, gamma))
	total = total.Add(v.Back.Velocity(r, gamma))
	total = total.Add(v.Right.Velocity(r, gamma))
	return total
}
