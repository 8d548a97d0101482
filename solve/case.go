package solve

import (
	"fmt"

	"github.com/notargets/aeromdao/flow"
	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/panel"
	"github.com/notargets/aeromdao/vortex"
	"github.com/notargets/aeromdao/wing"
)

// WingLike is satisfied by *wing.Wing and wing.Aircraft, letting
// SolveCase serve a bare wing and a full multi-component aircraft
// through the same entry point (spec.md §6).
type WingLike interface {
	Components() map[string]*wing.Wing
}

// component holds one named Wing's meshed panels plus the index range
// it occupies in the global AIC system.
type component struct {
	name       string
	bound      []panel.Panel3D
	camber     []panel.Panel3D
	start, end int // [start,end) into the global panel arrays
}

func meshComponents(wl WingLike, cfgs map[string]panel.PanelConfig) ([]component, error) {
	comps := wl.Components()
	out := make([]component, 0, len(comps))
	offset := 0
	for name, w := range comps {
		cfg, ok := cfgs[name]
		if !ok {
			return nil, fmt.Errorf("solve: missing panel config for component %q", name)
		}
		lb, lc, err := panel.MeshPlaced(w.Left, cfg)
		if err != nil {
			return nil, fmt.Errorf("solve: meshing %q left half: %w", name, err)
		}
		rb, rc, err := panel.MeshPlaced(w.Right, cfg)
		if err != nil {
			return nil, fmt.Errorf("solve: meshing %q right half: %w", name, err)
		}
		bound := append(append([]panel.Panel3D{}, lb...), rb...)
		camber := append(append([]panel.Panel3D{}, lc...), rc...)
		n := len(bound)
		out = append(out, component{name: name, bound: bound, camber: camber, start: offset, end: offset + n})
		offset += n
	}
	return out, nil
}

// SolveCase meshes wl's components under cfgs, assembles one global
// AIC system spanning every component, solves for circulation, and
// reduces near-field/far-field force and moment coefficients, per
// spec.md §4.F-G and §6. A bare *wing.Wing produces a SolveResult with
// a nil Components map; a wing.Aircraft produces one keyed by
// component name plus the aggregate receiver.
func SolveCase(wl WingLike, cfgs map[string]panel.PanelConfig, fs flow.Uniform3D, ref flow.Reference) (*SolveResult, error) {
	if err := fs.Validate(); err != nil {
		return nil, &InvalidFreestreamError{Reason: err.Error()}
	}
	if ref.Sref <= 0 || ref.Bref <= 0 || ref.Cref <= 0 {
		return nil, &InvalidGeometryError{Reason: "reference area, span and chord must all be positive"}
	}

	comps, err := meshComponents(wl, cfgs)
	if err != nil {
		return nil, err
	}

	var bound, camber []panel.Panel3D
	for _, c := range comps {
		bound = append(bound, c.bound...)
		camber = append(camber, c.camber...)
	}

	asm, err := buildAssembly(bound, camber)
	if err != nil {
		return nil, err
	}

	A, b := buildAIC(asm, fs, nil)
	gamma, err := solveCirculation(A, b)
	if err != nil {
		return nil, err
	}

	perPanelForce, total, moment := nearFieldForces(asm, gamma, fs, ref.Rho, ref.Rref)

	gammaSlice := make([]float64, gamma.Len())
	cfs := make([]geom.Point3D, len(perPanelForce))
	cms := make([]geom.Point3D, len(perPanelForce))
	for i := range perPanelForce {
		gammaSlice[i] = gamma.AtVec(i)
		cfs[i] = perPanelForce[i]
		cms[i] = asm.boundLegMid[i].Sub(ref.Rref).Cross(perPanelForce[i])
	}

	full := &SolveResult{
		NFCoeffs:        nondimensionalize(total, moment, fs, ref),
		FFCoeffs:        farFieldCoeffs(total, fs, ref),
		CFs:             cfs,
		CMs:             cms,
		HorseshoePanels: asm.bound,
		CamberNormals:   asm.normals,
		Horseshoes:      asm.horseshoes,
		Gamma:           gammaSlice,
	}

	if _, bareWing := wl.(*wing.Wing); bareWing {
		return full, nil
	}

	full.Components = make(map[string]*SolveResult, len(comps))
	for _, c := range comps {
		full.Components[c.name] = sliceResult(full, c.start, c.end, fs, ref)
	}
	return full, nil
}

// sliceResult extracts one component's panel-indexed slices and
// re-sums its own share of force/moment into that component's own
// coefficient vectors, rather than reporting the aircraft aggregate.
func sliceResult(full *SolveResult, start, end int, fs flow.Uniform3D, ref flow.Reference) *SolveResult {
	var total, moment geom.Point3D
	for i := start; i < end; i++ {
		total = total.Add(full.CFs[i])
		moment = moment.Add(full.CMs[i])
	}
	return &SolveResult{
		NFCoeffs:        nondimensionalize(total, moment, fs, ref),
		FFCoeffs:        farFieldCoeffs(total, fs, ref),
		CFs:             append([]geom.Point3D{}, full.CFs[start:end]...),
		CMs:             append([]geom.Point3D{}, full.CMs[start:end]...),
		HorseshoePanels: append([]panel.Panel3D{}, full.HorseshoePanels[start:end]...),
		CamberNormals:   append([]geom.Point3D{}, full.CamberNormals[start:end]...),
		Horseshoes:      append([]vortex.Horseshoe{}, full.Horseshoes[start:end]...),
		Gamma:           append([]float64{}, full.Gamma[start:end]...),
	}
}
