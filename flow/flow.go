// Package flow holds the freestream condition types shared by the 3D
// vortex-lattice solver and the 2D panel method.
package flow

import (
	"fmt"
	"math"

	"github.com/notargets/aeromdao/geom"
)

// Uniform3D is the VLM freestream condition: speed magnitude V, angle
// of attack Alpha (rad), sideslip Beta (rad), and body-axis angular
// rate Omega.
type Uniform3D struct {
	V     float64
	Alpha float64
	Beta  float64
	Omega geom.Point3D // (p, q, r) body rates, rad/s
}

// Validate enforces spec.md §7's InvalidFreestream rule.
func (u Uniform3D) Validate() error {
	if u.V <= 0 {
		return fmt.Errorf("flow: freestream speed must be positive, got %g", u.V)
	}
	return nil
}

// Velocity returns the Cartesian freestream velocity:
// (V cos(a) cos(b), -V sin(b), V sin(a) cos(b)).
func (u Uniform3D) Velocity() geom.Point3D {
	ca, sa := math.Cos(u.Alpha), math.Sin(u.Alpha)
	cb, sb := math.Cos(u.Beta), math.Sin(u.Beta)
	return geom.Point3D{u.V * ca * cb, -u.V * sb, u.V * sa * cb}
}

// Direction returns the unit freestream direction (Velocity()/V).
func (u Uniform3D) Direction() geom.Point3D {
	return u.Velocity().Unit()
}

// Uniform2D is the 2D panel-method freestream condition: speed V,
// angle of attack Alpha (rad).
type Uniform2D struct {
	V     float64
	Alpha float64
}

func (u Uniform2D) Validate() error {
	if u.V <= 0 {
		return fmt.Errorf("flow: freestream speed must be positive, got %g", u.V)
	}
	return nil
}

// Velocity returns (V cos(a), V sin(a)).
func (u Uniform2D) Velocity() geom.Point2D {
	return geom.Point2D{u.V * math.Cos(u.Alpha), u.V * math.Sin(u.Alpha)}
}

// Reference holds the non-dimensionalization quantities used by
// force/moment coefficient recovery (§4.G): reference area, span
// (rolling/yawing moment length), mean aerodynamic chord (pitching
// moment length), fluid density, and moment reference point.
type Reference struct {
	Sref float64
	Bref float64
	Cref float64
	Rho  float64
	Rref geom.Point3D
}

// DynamicPressure is q = 0.5*rho*V^2.
func DynamicPressure(rho, v float64) float64 {
	return 0.5 * rho * v * v
}
