// Package streamline traces particle paths through the velocity field
// induced by a solved horseshoe system plus the freestream, per
// spec.md §4.I.
package streamline

import (
	"fmt"

	"github.com/notargets/aeromdao/flow"
	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/vortex"
)

// Trace integrates one streamline from seed using forward-Euler steps
// of fixed arc length L/N, per spec.md §4.I:
//
//	v = sum_j v_j(r_k, Gamma_j, -Uhat) + U + Omega x r_k
//	r_{k+1} = r_k + (v/|v|) * (L/N)
//
// Tracing runs exactly steps iterations; there is no collision
// detection against the panels that generated hs/gamma.
func Trace(fs flow.Uniform3D, seed geom.Point3D, hs []vortex.Horseshoe, gamma []float64, length float64, steps int) ([]geom.Point3D, error) {
	if len(hs) != len(gamma) {
		return nil, fmt.Errorf("streamline: %d horseshoes but %d circulations", len(hs), len(gamma))
	}
	if steps < 1 {
		return nil, fmt.Errorf("streamline: steps must be >= 1, got %d", steps)
	}

	U := fs.Velocity()
	dir := fs.Direction().Scale(-1)
	omega := fs.Omega
	ds := length / float64(steps)

	pts := make([]geom.Point3D, steps+1)
	pts[0] = seed
	for k := 0; k < steps; k++ {
		r := pts[k]
		var vInd geom.Point3D
		for j, h := range hs {
			vInd = vInd.Add(h.Velocity(r, dir, gamma[j]))
		}
		v := vInd.Add(U).Add(omega.Cross(r))
		n := v.Norm()
		if n == 0 {
			pts[k+1] = r
			continue
		}
		pts[k+1] = r.Add(v.Scale(ds / n))
	}
	return pts, nil
}

// Streamlines traces one streamline per seed point, per spec.md §6.
func Streamlines(fs flow.Uniform3D, seeds []geom.Point3D, hs []vortex.Horseshoe, gamma []float64, length float64, steps int) ([][]geom.Point3D, error) {
	out := make([][]geom.Point3D, len(seeds))
	for i, seed := range seeds {
		line, err := Trace(fs, seed, hs, gamma, length, steps)
		if err != nil {
			return nil, err
		}
		out[i] = line
	}
	return out, nil
}
