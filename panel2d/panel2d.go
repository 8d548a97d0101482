// Package panel2d implements the constant-strength doublet-source
// panel method for 2D airfoils with a Morino Kutta condition, per
// spec.md §4.J.
package panel2d

import (
	"fmt"
	"math"

	"github.com/notargets/aeromdao/airfoil"
	"github.com/notargets/aeromdao/flow"
	"github.com/notargets/aeromdao/geom"
	"gonum.org/v1/gonum/mat"
)

// wakeLength is the wake panel's length as a multiple of chord,
// standing in for "infinity" in the Morino formulation.
const wakeLength = 100.0

// Panel is one straight segment of the closed airfoil polygon, from
// P1 to P2, carrying a constant doublet strength once solved.
type Panel struct {
	P1, P2 geom.Point2D
}

func (p Panel) Midpoint() geom.Point2D {
	return geom.Point2D{0.5 * (p.P1[0] + p.P2[0]), 0.5 * (p.P1[1] + p.P2[1])}
}

func (p Panel) Length() float64 {
	return p.P2.Sub(p.P1).Norm()
}

// Angle is the panel's orientation, measured from the global x-axis.
func (p Panel) Angle() float64 {
	d := p.P2.Sub(p.P1)
	return math.Atan2(d[1], d[0])
}

// Normal is the outward unit normal for a panel traversed
// counter-clockwise around the airfoil surface (rotate the tangent
// -90 degrees, consistent with the Selig TE-upper-LE-lower-TE
// traversal airfoil.Airfoil produces).
func (p Panel) Normal() geom.Point2D {
	theta := p.Angle()
	return geom.Point2D{math.Sin(theta), -math.Cos(theta)}
}

// Panels builds the closed-polygon panel set from an airfoil's point
// loop, one panel per consecutive pair, wrapping the last panel back
// to the first point.
func Panels(af *airfoil.Airfoil) []Panel {
	pts := af.Points
	n := len(pts)
	panels := make([]Panel, n)
	for i := 0; i < n; i++ {
		panels[i] = Panel{P1: pts[i], P2: pts[(i+1)%n]}
	}
	return panels
}

// localCoords transforms a global point into panel's local frame,
// with the panel's P1 at the local origin and P2 on the local x-axis.
func localCoords(p Panel, pt geom.Point2D) (x, z float64) {
	theta := p.Angle()
	c, s := math.Cos(theta), math.Sin(theta)
	dx, dy := pt[0]-p.P1[0], pt[1]-p.P1[1]
	return dx*c + dy*s, -dx*s + dy*c
}

// doubletCoeff is the potential at pt induced by a unit-strength
// constant doublet panel p, per the standard 2D panel-method kernel.
// The doublet axis is p.Normal() (outward, opposite to localCoords'
// z for the counter-clockwise traversal), so the potential just inside
// the panel tends to +0.5, the self-influence Solve puts on the
// diagonal.
func doubletCoeff(p Panel, pt geom.Point2D) float64 {
	x, z := localCoords(p, pt)
	l := p.Length()
	theta1 := math.Atan2(z, x)
	theta2 := math.Atan2(z, x-l)
	return 1 / (2 * math.Pi) * (theta2 - theta1)
}

// sourceCoeff is the potential at pt induced by a unit-strength
// constant source panel p.
func sourceCoeff(p Panel, pt geom.Point2D) float64 {
	x, z := localCoords(p, pt)
	l := p.Length()
	r1sq := x*x + z*z
	r2sq := (x-l)*(x-l) + z*z
	theta1 := math.Atan2(z, x)
	theta2 := math.Atan2(z, x-l)
	term := 0.0
	if r1sq > 0 {
		term += x * math.Log(r1sq)
	}
	if r2sq > 0 {
		term -= (x - l) * math.Log(r2sq)
	}
	term += 2 * z * (theta2 - theta1)
	return term / (4 * math.Pi)
}

// Result is the solved 2D panel state: doublet strengths, the
// trailing-edge wake strength, per-panel tangential velocity and
// pressure coefficient, and the integrated section lift/moment.
type Result struct {
	Panels []Panel
	Mu     []float64
	MuWake float64
	Vtan   []float64
	Cp     []float64
	Cl     float64
	Cm     float64
}

// Solve assembles and solves the Morino block system for fs over af's
// panel discretization, per spec.md §4.J. momentRef is the moment
// reference point (typically the quarter-chord).
func Solve(af *airfoil.Airfoil, fs flow.Uniform2D, momentRef geom.Point2D) (*Result, error) {
	if err := fs.Validate(); err != nil {
		return nil, fmt.Errorf("panel2d: %w", err)
	}
	panels := Panels(af)
	n := len(panels)
	if n < 4 {
		return nil, fmt.Errorf("panel2d: need at least 4 panels, have %d", n)
	}

	U := fs.Velocity()
	collocation := make([]geom.Point2D, n)
	normal := make([]geom.Point2D, n)
	sigma := make([]float64, n)
	for i, p := range panels {
		collocation[i] = p.Midpoint()
		normal[i] = p.Normal()
		sigma[i] = U.Dot(normal[i])
	}

	te := panels[0].P1
	dir := geom.Point2D{math.Cos(fs.Alpha), math.Sin(fs.Alpha)}
	wake := Panel{P1: te, P2: te.Add(dir.Scale(wakeLength))}

	A := mat.NewDense(n+1, n+1, nil)
	b := mat.NewVecDense(n+1, nil)

	for i := 0; i < n; i++ {
		rhsSource := 0.0
		for j := 0; j < n; j++ {
			var d float64
			if i == j {
				d = 0.5
			} else {
				d = doubletCoeff(panels[j], collocation[i])
			}
			A.Set(i, j, d)
			rhsSource += sourceCoeff(panels[j], collocation[i]) * sigma[j]
		}
		A.Set(i, n, doubletCoeff(wake, collocation[i]))
		b.SetVec(i, -rhsSource)
	}

	// Kutta row: mu_0 - mu_1 + mu_{n-2} - mu_{n-1} - mu_wake = 0.
	A.Set(n, 0, 1)
	A.Set(n, 1, -1)
	A.Set(n, n-2, 1)
	A.Set(n, n-1, -1)
	A.Set(n, n, -1)
	b.SetVec(n, 0)

	var lu mat.LU
	lu.Factorize(A)
	sol := mat.NewVecDense(n+1, nil)
	if err := sol.SolveVec(&lu, b); err != nil {
		return nil, fmt.Errorf("panel2d: singular doublet system: %w", err)
	}

	mu := make([]float64, n)
	for i := range mu {
		mu[i] = sol.AtVec(i)
	}
	muWake := sol.AtVec(n)

	vtan := make([]float64, n)
	cp := make([]float64, n)
	for i := 0; i < n; i++ {
		prev, next := (i-1+n)%n, (i+1)%n
		dmu := mu[next] - mu[prev]
		ds := 0.5*panels[prev].Length() + panels[i].Length() + 0.5*panels[next].Length()
		vtan[i] = -dmu / ds
		cp[i] = 1 - (vtan[i]/fs.V)*(vtan[i]/fs.V)
	}

	cl, cm := integrateLoads(panels, cp, fs.Alpha, momentRef)

	return &Result{Panels: panels, Mu: mu, MuWake: muWake, Vtan: vtan, Cp: cp, Cl: cl, Cm: cm}, nil
}

// integrateLoads sums -Cp*panel-normal-force over the surface,
// resolving into lift/drag-axis (wind-axis) c_l and a moment about
// momentRef, per spec.md §4.J's "integrate Cp.tangent and
// Cp.moment-arm to get c_l and c_m."
func integrateLoads(panels []Panel, cp []float64, alpha float64, momentRef geom.Point2D) (cl, cm float64) {
	ca, sa := math.Cos(alpha), math.Sin(alpha)
	var fx, fy, m float64
	for i, p := range panels {
		n := p.Normal()
		l := p.Length()
		mid := p.Midpoint()
		fxi := -cp[i] * n[0] * l
		fyi := -cp[i] * n[1] * l
		fx += fxi
		fy += fyi
		r := mid.Sub(momentRef)
		m += r[0]*fyi - r[1]*fxi
	}
	// rotate (fx,fy) from body axes into wind axes: cl is the
	// component perpendicular to the freestream.
	cl = -fx*sa + fy*ca
	cm = m
	return
}
