package panel

import "github.com/notargets/aeromdao/geom"

// RigidTransform is a translation plus an axis/angle rotation, applied
// rotation-then-translation, used to place component meshes (e.g. a
// horizontal or vertical tail offset from the wing origin).
type RigidTransform struct {
	Position geom.Point3D
	Axis     geom.Point3D
	AngleRad float64
}

// Apply transforms a single point.
func (t RigidTransform) Apply(p geom.Point3D) geom.Point3D {
	rotated := p
	if t.AngleRad != 0 {
		rotated = geom.RotateAxisAngle(p, t.Axis, t.AngleRad)
	}
	return rotated.Add(t.Position)
}

// Inverse returns the transform that undoes t.
func (t RigidTransform) Inverse() RigidTransform {
	// Apply(p) = R p + Position, so the inverse is R^-1 q - R^-1 Position.
	pos := t.Position
	if t.AngleRad != 0 {
		pos = geom.RotateAxisAngle(pos, t.Axis, -t.AngleRad)
	}
	return RigidTransform{
		Position: pos.Scale(-1),
		Axis:     t.Axis,
		AngleRad: -t.AngleRad,
	}
}

// ApplyInverse undoes Apply: rotate back by -angle after removing the
// translation.
func (t RigidTransform) ApplyInverse(p geom.Point3D) geom.Point3D {
	untranslated := p.Sub(t.Position)
	if t.AngleRad == 0 {
		return untranslated
	}
	return geom.RotateAxisAngle(untranslated, t.Axis, -t.AngleRad)
}

// ApplyPanels transforms every corner of every panel.
func ApplyPanels(panels []Panel3D, t RigidTransform) []Panel3D {
	out := make([]Panel3D, len(panels))
	for i, p := range panels {
		out[i] = p.Transform(t.Apply)
	}
	return out
}

// ApplyInversePanels undoes ApplyPanels.
func ApplyInversePanels(panels []Panel3D, t RigidTransform) []Panel3D {
	out := make([]Panel3D, len(panels))
	for i, p := range panels {
		out[i] = p.Transform(t.ApplyInverse)
	}
	return out
}
