package solve

import (
	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/panel"
	"github.com/notargets/aeromdao/vortex"
)

// PanelSet is one component's bound-leg and camber meshes, the
// post-discretization input to a solve (§3: "panels are derived from
// geometry and are immutable for the duration of a solve").
type PanelSet struct {
	Bound  []panel.Panel3D
	Camber []panel.Panel3D
}

// SolveResult is the structured return value of SolveCase, matching
// spec.md §6.
type SolveResult struct {
	NFCoeffs        [9]float64 // CD,CY,CL,Cl,Cm,Cn,pbar,qbar,rbar
	FFCoeffs        [3]float64 // CDi,CY,CL
	CFs             []geom.Point3D
	CMs             []geom.Point3D
	HorseshoePanels []panel.Panel3D
	CamberNormals   []geom.Point3D
	Horseshoes      []vortex.Horseshoe
	Gamma           []float64

	// Components is non-nil only for a multi-component (aircraft)
	// solve; it is keyed by component name, and the receiver itself
	// holds the aggregate "Aircraft" result.
	Components map[string]*SolveResult
}
