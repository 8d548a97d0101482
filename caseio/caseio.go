// Package caseio parses a YAML case file into the geometry, panelling
// configuration, freestream condition, and reference quantities needed
// to drive solve.SolveCase, mirroring InputParameters2D's flat
// unmarshal-then-Print style.
package caseio

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/aeromdao/airfoil"
	"github.com/notargets/aeromdao/flow"
	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/panel"
	"github.com/notargets/aeromdao/wing"
)

// SectionSpec is one spanwise station of a component's half-wing.
type SectionSpec struct {
	AirfoilPoints [][2]float64 `yaml:"airfoilPoints"`
	Chord         float64      `yaml:"chord"`
	Twist         float64      `yaml:"twist"`
}

// SegmentSpec is the trapezoidal panel between two adjacent sections.
type SegmentSpec struct {
	Span     float64 `yaml:"span"`
	Dihedral float64 `yaml:"dihedral"`
	Sweep    float64 `yaml:"sweep"`
}

// ComponentSpec is one named lifting surface: a symmetric half-wing
// definition plus its own panelling configuration and rigid placement
// in the aircraft frame.
type ComponentSpec struct {
	Sections         []SectionSpec `yaml:"sections"`
	Segments         []SegmentSpec `yaml:"segments"`
	SpanwisePanels   []int         `yaml:"spanwisePanels"`
	ChordwisePanels  int           `yaml:"chordwisePanels"`
	Spacing          string        `yaml:"spacing"` // "uniform", "cosine", or "sine"
	CamberResolution int           `yaml:"camberResolution"`
	Position         [3]float64    `yaml:"position"`
	AngleRad         float64       `yaml:"angleRad"`
	Axis             [3]float64    `yaml:"axis"`
}

// FreestreamSpec is the YAML freestream block, angles in degrees for
// readability and converted to radians on Build.
type FreestreamSpec struct {
	V        float64 `yaml:"v"`
	AlphaDeg float64 `yaml:"alphaDeg"`
	BetaDeg  float64 `yaml:"betaDeg"`
	P        float64 `yaml:"p"`
	Q        float64 `yaml:"q"`
	R        float64 `yaml:"r"`
}

// ReferenceSpec is the YAML non-dimensionalization block.
type ReferenceSpec struct {
	Sref float64    `yaml:"sref"`
	Bref float64    `yaml:"bref"`
	Cref float64    `yaml:"cref"`
	Rho  float64    `yaml:"rho"`
	Rref [3]float64 `yaml:"rref"`
}

// Case is the top-level YAML document: a named set of components plus
// the freestream condition and reference quantities for one solve.
type Case struct {
	Title      string                   `yaml:"title"`
	Components map[string]ComponentSpec `yaml:"components"`
	Freestream FreestreamSpec           `yaml:"freestream"`
	Reference  ReferenceSpec            `yaml:"reference"`
}

// Parse unmarshals a YAML document into c.
func (c *Case) Parse(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// Print dumps c's fields in the teacher's formatted-field-dump style,
// components sorted by name for deterministic output.
func (c *Case) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", c.Title)
	fmt.Printf("%8.5f\t\t= V\n", c.Freestream.V)
	fmt.Printf("%8.5f\t\t= Alpha (deg)\n", c.Freestream.AlphaDeg)
	fmt.Printf("%8.5f\t\t= Beta (deg)\n", c.Freestream.BetaDeg)
	fmt.Printf("%8.5f\t\t= Sref\n", c.Reference.Sref)
	fmt.Printf("%8.5f\t\t= Bref\n", c.Reference.Bref)
	fmt.Printf("%8.5f\t\t= Cref\n", c.Reference.Cref)
	names := make([]string, 0, len(c.Components))
	for name := range c.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		comp := c.Components[name]
		fmt.Printf("Components[%s] = %d sections, %d segments\n", name, len(comp.Sections), len(comp.Segments))
	}
}

func spacingKind(s string) geom.SpacingKind {
	switch strings.ToLower(s) {
	case "cosine":
		return geom.Cosine
	case "sine":
		return geom.Sine
	default:
		return geom.Uniform
	}
}

func point3D(a [3]float64) geom.Point3D { return geom.Point3D{a[0], a[1], a[2]} }

func buildHalfWing(cs ComponentSpec) (*wing.HalfWing, error) {
	sections := make([]wing.Section, len(cs.Sections))
	for i, s := range cs.Sections {
		pts := make([]geom.Point2D, len(s.AirfoilPoints))
		for j, p := range s.AirfoilPoints {
			pts[j] = geom.Point2D{p[0], p[1]}
		}
		af, err := airfoil.New(pts)
		if err != nil {
			return nil, fmt.Errorf("caseio: section %d: %w", i, err)
		}
		sections[i] = wing.Section{Airfoil: af, Chord: s.Chord, Twist: s.Twist}
	}
	segments := make([]wing.Segment, len(cs.Segments))
	for i, g := range cs.Segments {
		segments[i] = wing.Segment{Span: g.Span, Dihedral: g.Dihedral, Sweep: g.Sweep}
	}
	return wing.NewHalfWing(sections, segments, false)
}

// Build converts the parsed case into the concrete types SolveCase
// consumes: a symmetric wing.Aircraft, one panel.PanelConfig per
// component, the freestream condition, and the reference quantities.
func (c *Case) Build() (wing.Aircraft, map[string]panel.PanelConfig, flow.Uniform3D, flow.Reference, error) {
	aircraft := make(wing.Aircraft, len(c.Components))
	cfgs := make(map[string]panel.PanelConfig, len(c.Components))
	for name, cs := range c.Components {
		half, err := buildHalfWing(cs)
		if err != nil {
			return nil, nil, flow.Uniform3D{}, flow.Reference{}, err
		}
		w, err := wing.NewSymmetricWing(half)
		if err != nil {
			return nil, nil, flow.Uniform3D{}, flow.Reference{}, fmt.Errorf("caseio: component %q: %w", name, err)
		}
		aircraft[name] = w
		cfgs[name] = panel.PanelConfig{
			SpanwisePanels:   cs.SpanwisePanels,
			ChordwisePanels:  cs.ChordwisePanels,
			Spacing:          spacingKind(cs.Spacing),
			CamberResolution: cs.CamberResolution,
			Position:         point3D(cs.Position),
			AngleRad:         cs.AngleRad,
			Axis:             point3D(cs.Axis),
		}
	}

	fs := flow.Uniform3D{
		V:     c.Freestream.V,
		Alpha: c.Freestream.AlphaDeg * math.Pi / 180,
		Beta:  c.Freestream.BetaDeg * math.Pi / 180,
		Omega: geom.Point3D{c.Freestream.P, c.Freestream.Q, c.Freestream.R},
	}
	ref := flow.Reference{
		Sref: c.Reference.Sref,
		Bref: c.Reference.Bref,
		Cref: c.Reference.Cref,
		Rho:  c.Reference.Rho,
		Rref: point3D(c.Reference.Rref),
	}
	return aircraft, cfgs, fs, ref, nil
}
