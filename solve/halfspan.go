package solve

import (
	"github.com/notargets/aeromdao/flow"
	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/panel"
	"github.com/notargets/aeromdao/wing"
)

// SolveHalfSpanCase solves a symmetric wing using only one physical
// half's panels: the other half's influence is folded into the AIC
// via panel.MirrorMap instead of being meshed explicitly, halving the
// system size for a symmetric-flight-condition solve (spec.md §4.F's
// "optional symmetric wing y-mirroring in AIC assembly"). half must be
// the un-mirrored physical half (Mirror=false); the result reports the
// full-aircraft force and moment, doubling the solved half's
// contribution as symmetry requires. Valid only when the flow
// condition is itself symmetric (fs.Beta==0, no roll/yaw rate);
// callers with sideslip or asymmetric rates must use SolveCase.
func SolveHalfSpanCase(half *wing.HalfWing, cfg panel.PanelConfig, fs flow.Uniform3D, ref flow.Reference) (*SolveResult, error) {
	if err := fs.Validate(); err != nil {
		return nil, &InvalidFreestreamError{Reason: err.Error()}
	}
	if ref.Sref <= 0 || ref.Bref <= 0 || ref.Cref <= 0 {
		return nil, &InvalidGeometryError{Reason: "reference area, span and chord must all be positive"}
	}

	bound, camber, err := panel.MeshPlaced(half, cfg)
	if err != nil {
		return nil, err
	}

	asm, err := buildAssembly(bound, camber)
	if err != nil {
		return nil, err
	}

	flat := make([]float64, 3*len(asm.collocation))
	for i, c := range asm.collocation {
		flat[3*i], flat[3*i+1], flat[3*i+2] = c[0], c[1], c[2]
	}
	mirror := panel.BuildMirrorMap(flat, 1e-6)

	A, b := buildAIC(asm, fs, mirror)
	gamma, err := solveCirculation(A, b)
	if err != nil {
		return nil, err
	}

	perPanelForce, halfTotal, halfMoment := nearFieldForces(asm, gamma, fs, ref.Rho, ref.Rref)
	total := halfTotal.Scale(2)
	moment := halfMoment.Scale(2)

	gammaSlice := make([]float64, gamma.Len())
	cfs := make([]geom.Point3D, len(perPanelForce))
	cms := make([]geom.Point3D, len(perPanelForce))
	for i := range perPanelForce {
		gammaSlice[i] = gamma.AtVec(i)
		cfs[i] = perPanelForce[i].Scale(2)
		cms[i] = asm.boundLegMid[i].Sub(ref.Rref).Cross(perPanelForce[i]).Scale(2)
	}

	return &SolveResult{
		NFCoeffs:        nondimensionalize(total, moment, fs, ref),
		FFCoeffs:        farFieldCoeffs(total, fs, ref),
		CFs:             cfs,
		CMs:             cms,
		HorseshoePanels: asm.bound,
		CamberNormals:   asm.normals,
		Horseshoes:      asm.horseshoes,
		Gamma:           gammaSlice,
	}, nil
}
