package solve

import (
	"fmt"
	"math"

	"github.com/notargets/aeromdao/flow"
	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/panel"
	"github.com/notargets/aeromdao/vortex"
	"gonum.org/v1/gonum/mat"
)

// assembly bundles the per-panel data shared by AIC assembly, the
// solve, and force/moment post-processing, scoped to a single
// SolveCase invocation and released on return.
type assembly struct {
	bound       []panel.Panel3D
	camber      []panel.Panel3D
	horseshoes  []vortex.Horseshoe
	collocation []geom.Point3D
	normals     []geom.Point3D
	boundLegMid []geom.Point3D // mid-bound-leg point r_i used by Kutta-Joukowski
	boundLegVec []geom.Point3D // bound-leg vector ell_i = r2-r1
}

func buildAssembly(bound, camber []panel.Panel3D) (*assembly, error) {
	if len(bound) != len(camber) {
		return nil, &InvalidGeometryError{Reason: fmt.Sprintf(
			"bound mesh has %d panels but camber mesh has %d", len(bound), len(camber))}
	}
	a := &assembly{bound: bound, camber: camber}
	a.horseshoes = make([]vortex.Horseshoe, len(bound))
	a.collocation = make([]geom.Point3D, len(bound))
	a.normals = make([]geom.Point3D, len(bound))
	a.boundLegMid = make([]geom.Point3D, len(bound))
	a.boundLegVec = make([]geom.Point3D, len(bound))

	for i, bp := range bound {
		in, out := panel.BoundLegEndpoints(bp)
		a.horseshoes[i] = vortex.Horseshoe{Bound: vortex.Line{R1: in, R2: out}}
		a.collocation[i] = panel.CollocationPoint(bp)
		a.normals[i] = panel.CamberNormal(camber[i])
		a.boundLegMid[i] = in.Add(out).Scale(0.5)
		a.boundLegVec[i] = out.Sub(in)
	}
	return a, nil
}

// buildAIC assembles the M x M aerodynamic influence coefficient
// matrix and the length-M boundary-condition RHS per spec.md §4.F.
// Horseshoe trailing legs trail along dir, which is minus the unit
// freestream direction (fs.Direction()), matching the spec's literal
// formula. If
// mirror is non-nil, each entry also receives the y-mirrored
// collocation point's contribution with the induced y-velocity
// flipped (symmetric-wing half-span solve).
func buildAIC(a *assembly, fs flow.Uniform3D, mirror *panel.MirrorMap) (*mat.Dense, *mat.VecDense) {
	n := len(a.bound)
	U := fs.Velocity()
	dir := fs.Direction().Scale(-1)
	omega := fs.Omega

	A := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)

	for i := 0; i < n; i++ {
		ci := a.collocation[i]
		ni := a.normals[i]
		for j := 0; j < n; j++ {
			v := a.horseshoes[j].Velocity(ci, dir, 1.0)
			val := v.Dot(ni)
			if mirror != nil {
				mj := mirror.Mirror(j)
				cm := geom.Point3D{a.collocation[i][0], -a.collocation[i][1], a.collocation[i][2]}
				vm := a.horseshoes[mj].Velocity(cm, dir, 1.0)
				vmFlipped := geom.Point3D{vm[0], -vm[1], vm[2]}
				val += vmFlipped.Dot(ni)
			}
			A.Set(i, j, val)
		}
		rot := omega.Cross(ci)
		rhs := -(U.Add(rot)).Dot(ni)
		b.SetVec(i, rhs)
	}
	return A, b
}

// solveCirculation solves A*Gamma = b via dense LU with partial
// pivoting, returning SingularSystemError when the factorization is
// numerically degenerate.
func solveCirculation(A *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	var lu mat.LU
	lu.Factorize(A)

	cond := lu.Cond()
	const condTol = 1e12
	if math.IsInf(cond, 1) || math.IsNaN(cond) || cond > condTol {
		return nil, &SingularSystemError{Pivot: 1 / cond, Cond: cond}
	}

	n, _ := A.Dims()
	gamma := mat.NewVecDense(n, nil)
	if err := gamma.SolveVec(&lu, b); err != nil {
		return nil, &SingularSystemError{Pivot: 0, Cond: cond}
	}
	return gamma, nil
}
