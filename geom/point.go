// Package geom provides the fixed-size numeric primitives and spacing
// helpers shared by every geometry and solver package: 2D/3D points,
// weighted interpolation, forward differencing, axis/angle rotation and
// the cosine/sine/uniform spacing rules used throughout the paneller.
package geom

import "math"

// Point3D is a double-precision 3-vector. Kept as a fixed array rather
// than a slice so panel corners and filament endpoints can be passed
// and compared by value without heap allocation.
type Point3D [3]float64

// Point2D is a double-precision 2-vector, used for airfoil coordinates
// and the 2D panel method.
type Point2D [2]float64

func (p Point3D) X() float64 { return p[0] }
func (p Point3D) Y() float64 { return p[1] }
func (p Point3D) Z() float64 { return p[2] }

func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

func (p Point3D) Scale(a float64) Point3D {
	return Point3D{p[0] * a, p[1] * a, p[2] * a}
}

func (p Point3D) Dot(q Point3D) float64 {
	return p[0]*q[0] + p[1]*q[1] + p[2]*q[2]
}

func (p Point3D) Cross(q Point3D) Point3D {
	return Point3D{
		p[1]*q[2] - p[2]*q[1],
		p[2]*q[0] - p[0]*q[2],
		p[0]*q[1] - p[1]*q[0],
	}
}

func (p Point3D) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Unit returns p normalized; the zero vector is returned unchanged.
func (p Point3D) Unit() Point3D {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return p.Scale(1 / n)
}

func (p Point2D) Sub(q Point2D) Point2D { return Point2D{p[0] - q[0], p[1] - q[1]} }
func (p Point2D) Add(q Point2D) Point2D { return Point2D{p[0] + q[0], p[1] + q[1]} }
func (p Point2D) Scale(a float64) Point2D {
	return Point2D{p[0] * a, p[1] * a}
}
func (p Point2D) Dot(q Point2D) float64 { return p[0]*q[0] + p[1]*q[1] }
func (p Point2D) Norm() float64         { return math.Hypot(p[0], p[1]) }

// Unit returns p normalized; the zero vector is returned unchanged.
func (p Point2D) Unit() Point2D {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return p.Scale(1 / n)
}

// WeightedPoint interpolates independently on each axis: w(x1,x2,mu) =
// (1-mu)*x1 + mu*x2. Independent weights per component let the paneller
// shift only the in-plane (x,z) offset toward the bound-leg/collocation
// chord fraction while leaving the span coordinate (y) untouched.
func WeightedPoint(p1, p2 Point3D, muX, muY, muZ float64) Point3D {
	return Point3D{
		Interp(p1[0], p2[0], muX),
		Interp(p1[1], p2[1], muY),
		Interp(p1[2], p2[2], muZ),
	}
}

// Interp is the scalar weighted interpolation w(x1,x2,mu).
func Interp(x1, x2, mu float64) float64 {
	return (1-mu)*x1 + mu*x2
}

// ForwardDiff returns x[1:]-x[:len(x)-1], length N-1 for an input of length N.
func ForwardDiff(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}
	d := make([]float64, len(x)-1)
	for i := range d {
		d[i] = x[i+1] - x[i]
	}
	return d
}

// ForwardSum returns x[1:]+x[:len(x)-1], length N-1.
func ForwardSum(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}
	s := make([]float64, len(x)-1)
	for i := range s {
		s[i] = x[i+1] + x[i]
	}
	return s
}

// ForwardRatio returns x[1:]/x[:len(x)-1], length N-1.
func ForwardRatio(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}
	r := make([]float64, len(x)-1)
	for i := range r {
		r[i] = x[i+1] / x[i]
	}
	return r
}

// Rotate2D rotates a 2D point about the origin by theta radians.
func Rotate2D(p Point2D, theta float64) Point2D {
	c, s := math.Cos(theta), math.Sin(theta)
	return Point2D{
		c*p[0] - s*p[1],
		s*p[0] + c*p[1],
	}
}

// RotateAxisAngle rotates p about the unit axis (Rodrigues' formula) by
// angle radians. axis is normalized internally so callers may pass an
// unnormalized direction.
func RotateAxisAngle(p Point3D, axis Point3D, angle float64) Point3D {
	k := axis.Unit()
	c, s := math.Cos(angle), math.Sin(angle)
	term1 := p.Scale(c)
	term2 := k.Cross(p).Scale(s)
	term3 := k.Scale(k.Dot(p) * (1 - c))
	return term1.Add(term2).Add(term3)
}

// SpacingKind selects the distribution rule for spanwise/chordwise
// subdivision and airfoil resampling.
type SpacingKind int

const (
	Uniform SpacingKind = iota
	Cosine
	Sine
)

// UniformSpacing returns n samples evenly spaced over [a,b].
func UniformSpacing(a, b float64, n int) []float64 {
	x := make([]float64, n)
	if n == 1 {
		x[0] = a
		return x
	}
	step := (b - a) / float64(n-1)
	for i := range x {
		x[i] = a + float64(i)*step
	}
	return x
}

// CosineSpacing clusters samples toward both endpoints of [a,b]:
// x_i = (a+b)/2 + (b-a)/2 * cos(pi*(n-1-i)/(n-1)).
func CosineSpacing(a, b float64, n int) []float64 {
	x := make([]float64, n)
	if n == 1 {
		x[0] = a
		return x
	}
	mid, half := 0.5*(a+b), 0.5*(b-a)
	for i := range x {
		theta := math.Pi * float64(n-1-i) / float64(n-1)
		x[i] = mid + half*math.Cos(theta)
	}
	return x
}

// SineSpacing clusters samples toward a only: x_i = a + (b-a)*(1-cos(theta)),
// theta in [0, pi/2].
func SineSpacing(a, b float64, n int) []float64 {
	x := make([]float64, n)
	if n == 1 {
		x[0] = a
		return x
	}
	for i := range x {
		theta := 0.5 * math.Pi * float64(i) / float64(n-1)
		x[i] = a + (b-a)*(1-math.Cos(theta))
	}
	return x
}

// Spacing dispatches to the spacing rule named by kind.
func Spacing(kind SpacingKind, a, b float64, n int) []float64 {
	switch kind {
	case Cosine:
		return CosineSpacing(a, b, n)
	case Sine:
		return SineSpacing(a, b, n)
	default:
		return UniformSpacing(a, b, n)
	}
}
