// Package stability computes finite-difference stability derivatives
// by re-solving the VLM under small perturbations of the freestream
// angles and body rates, per spec.md §4.H.
package stability

import (
	"github.com/notargets/aeromdao/flow"
	"github.com/notargets/aeromdao/panel"
	"github.com/notargets/aeromdao/solve"
)

// Delta is the perturbation size used for every swept variable, small
// enough to stay in the VLM's linear regime per spec.md §4.H.
const Delta = 1e-3

// StabilityResult is the base-case solve plus its 6x5 derivative
// matrix (rows CD,CY,CL,Cl,Cm,Cn; columns alpha,beta,pbar,qbar,rbar).
type StabilityResult struct {
	Base        solve.SolveResult
	Derivatives [6][5]float64
}

// SolveStabilityCase solves wl at fs, then re-solves it under a
// central-difference perturbation of each of {alpha, beta, pbar,
// qbar, rbar} in turn, differencing the resulting nearfield
// coefficient vectors to fill Derivatives.
func SolveStabilityCase(wl solve.WingLike, cfgs map[string]panel.PanelConfig, fs flow.Uniform3D, ref flow.Reference) (*StabilityResult, error) {
	base, err := solve.SolveCase(wl, cfgs, fs, ref)
	if err != nil {
		return nil, err
	}

	result := &StabilityResult{Base: *base}
	perturbFns := perturbations(fs, ref)
	for col, perturb := range perturbFns {
		plus, err := solve.SolveCase(wl, cfgs, perturb(Delta), ref)
		if err != nil {
			return nil, err
		}
		minus, err := solve.SolveCase(wl, cfgs, perturb(-Delta), ref)
		if err != nil {
			return nil, err
		}
		for row := 0; row < 6; row++ {
			result.Derivatives[row][col] = (plus.NFCoeffs[row] - minus.NFCoeffs[row]) / (2 * Delta)
		}
	}
	return result, nil
}

// perturbations returns, in column order {alpha, beta, pbar, qbar,
// rbar}, a closure producing fs shifted by d in that one variable.
// pbar/qbar/rbar are converted back to the dimensional body rate
// components Omega carries, using ref's span/chord and fs's speed.
func perturbations(fs flow.Uniform3D, ref flow.Reference) [5]func(d float64) flow.Uniform3D {
	return [5]func(float64) flow.Uniform3D{
		func(d float64) flow.Uniform3D { f := fs; f.Alpha += d; return f },
		func(d float64) flow.Uniform3D { f := fs; f.Beta += d; return f },
		func(d float64) flow.Uniform3D { f := fs; f.Omega[0] += d * 2 * fs.V / ref.Bref; return f },
		func(d float64) flow.Uniform3D { f := fs; f.Omega[1] += d * 2 * fs.V / ref.Cref; return f },
		func(d float64) flow.Uniform3D { f := fs; f.Omega[2] += d * 2 * fs.V / ref.Bref; return f },
	}
}
