package panel

import "github.com/notargets/aeromdao/geom"

// BoundLegEndpoints returns the quarter-chord bound-leg endpoints for a
// bound-mesh panel (Pistolesi's theorem): the inboard and outboard
// points are each offset 1/4 of the way from the forward to the aft
// edge, with the spanwise coordinate held fixed (§4.D).
func BoundLegEndpoints(p Panel3D) (inboard, outboard geom.Point3D) {
	inboard = geom.WeightedPoint(p.P1, p.P2, 0.25, 0, 0.25)
	outboard = geom.WeightedPoint(p.P4, p.P3, 0.25, 0, 0.25)
	return
}

// CollocationPoint returns the 3/4-chord midpoint at which the
// no-penetration boundary condition is enforced.
func CollocationPoint(p Panel3D) geom.Point3D {
	inboard := geom.WeightedPoint(p.P1, p.P2, 0.75, 0, 0.75)
	outboard := geom.WeightedPoint(p.P4, p.P3, 0.75, 0, 0.75)
	return inboard.Add(outboard).Scale(0.5)
}

// CamberNormal returns the outward unit normal of the matching
// camber-mesh panel at the same index as a bound-mesh panel, used for
// the boundary-condition normal in place of the (flat) bound panel's
// own normal.
func CamberNormal(camberPanel Panel3D) geom.Point3D {
	return camberPanel.Normal()
}
